package version

import "sort"

// Version is one committed value for a key.
// CommitTs is the tid of the transaction that committed it.
// a Version is immutable after it entered a chain
type Version struct {
	CommitTs uint64
	Value    []byte
}

// Chain is the ordered version list of a single key
// versions are appended in strictly increasing CommitTs order,
// never mutated in place; vacuum replaces the whole chain
//
// Chain does no locking itself, the engine lock guards all access
type Chain struct {
	versions []*Version
}

func NewChain() *Chain {
	return &Chain{}
}

// append a version committed at ts to the end of chain
// engine conflict check guarantees ts is greater than every existing CommitTs
func (c *Chain) Append(ts uint64, value []byte) {
	if last := c.Latest(); last != nil && last.CommitTs >= ts {
		panic("version chain commit timestamp out of order")
	}
	c.versions = append(c.versions, &Version{CommitTs: ts, Value: value})
}

// return newest version of chain, nil if chain is empty
func (c *Chain) Latest() *Version {
	if len(c.versions) == 0 {
		return nil
	}
	return c.versions[len(c.versions)-1]
}

// Visible returns the newest version with CommitTs <= ts
// return nil if no version is visible at ts
func (c *Chain) Visible(ts uint64) *Version {
	for i := len(c.versions) - 1; i >= 0; i-- {
		if c.versions[i].CommitTs <= ts {
			return c.versions[i]
		}
	}
	return nil
}

// Prune keeps every version with CommitTs >= watermark and the single
// newest version below watermark, so a snapshot reading at the watermark
// still sees its pre-watermark value
// return a rebuilt chain, or the receiver when nothing can be dropped
func (c *Chain) Prune(watermark uint64) *Chain {
	cut := sort.Search(len(c.versions), func(i int) bool {
		return c.versions[i].CommitTs >= watermark
	})

	// keep one version below the watermark
	if cut > 0 {
		cut -= 1
	}

	if cut == 0 {
		return c
	}

	kept := make([]*Version, len(c.versions)-cut)
	copy(kept, c.versions[cut:])

	return &Chain{versions: kept}
}

func (c *Chain) Len() int {
	return len(c.versions)
}

// Versions returns the underlying version list, oldest first
func (c *Chain) Versions() []*Version {
	return c.versions
}
