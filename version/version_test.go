package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChain_AppendLatest(t *testing.T) {
	chain := NewChain()
	assert.Nil(t, chain.Latest())
	assert.Equal(t, 0, chain.Len())

	chain.Append(1, []byte("v1"))
	chain.Append(3, []byte("v3"))
	chain.Append(7, []byte("v7"))

	assert.Equal(t, 3, chain.Len())
	assert.Equal(t, uint64(7), chain.Latest().CommitTs)
	assert.Equal(t, []byte("v7"), chain.Latest().Value)
}

func TestChain_Append_OutOfOrder(t *testing.T) {
	chain := NewChain()
	chain.Append(5, []byte("v5"))

	assert.Panics(t, func() {
		chain.Append(5, []byte("again"))
	})
	assert.Panics(t, func() {
		chain.Append(3, []byte("older"))
	})
}

func TestChain_Visible(t *testing.T) {
	chain := NewChain()
	chain.Append(2, []byte("v2"))
	chain.Append(5, []byte("v5"))
	chain.Append(9, []byte("v9"))

	// below the oldest version nothing is visible
	assert.Nil(t, chain.Visible(1))

	assert.Equal(t, []byte("v2"), chain.Visible(2).Value)
	assert.Equal(t, []byte("v2"), chain.Visible(4).Value)
	assert.Equal(t, []byte("v5"), chain.Visible(5).Value)
	assert.Equal(t, []byte("v5"), chain.Visible(8).Value)
	assert.Equal(t, []byte("v9"), chain.Visible(9).Value)
	assert.Equal(t, []byte("v9"), chain.Visible(100).Value)
}

func TestChain_Prune(t *testing.T) {
	chain := NewChain()
	chain.Append(2, []byte("v2"))
	chain.Append(5, []byte("v5"))
	chain.Append(9, []byte("v9"))

	// everything visible at watermark 2 must survive
	same := chain.Prune(2)
	assert.Same(t, chain, same)

	// watermark 6 keeps v5 (newest below) and v9
	pruned := chain.Prune(6)
	assert.NotSame(t, chain, pruned)
	assert.Equal(t, 2, pruned.Len())
	assert.Equal(t, uint64(5), pruned.Versions()[0].CommitTs)
	assert.Equal(t, uint64(9), pruned.Versions()[1].CommitTs)

	// a snapshot at the watermark reads the same value before and after
	assert.Equal(t, chain.Visible(6).Value, pruned.Visible(6).Value)

	// watermark above everything keeps only the newest version
	top := chain.Prune(100)
	assert.Equal(t, 1, top.Len())
	assert.Equal(t, uint64(9), top.Latest().CommitTs)
}

func TestChain_Prune_SingleVersion(t *testing.T) {
	chain := NewChain()
	chain.Append(4, []byte("v4"))

	assert.Same(t, chain, chain.Prune(4))
	// the newest version below the watermark is always kept
	pruned := chain.Prune(100)
	assert.Equal(t, 1, pruned.Len())
}
