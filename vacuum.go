package mvccgo

import (
	"math"

	"github.com/sirupsen/logrus"
)

// watermark is the oldest snapshot any active transaction may still read
// at, or the highest commit timestamp when nothing is active
// caller must hold the exclusive lock
func (db *DB) watermark() uint64 {
	if len(db.active) == 0 {
		return db.maxCommitTs
	}

	var wm uint64 = math.MaxUint64
	for tid := range db.active {
		if tid < wm {
			wm = tid
		}
	}

	return wm
}

// Vacuum prunes every version chain down to the versions some live or
// future snapshot can still see: everything at or above the watermark
// plus the single newest version below it
//
// chains are swapped whole, a concurrent Get never observes a chain in a
// partially pruned state. Vacuum is idempotent and caller-driven, the
// engine never schedules it on its own
func (db *DB) Vacuum() {
	db.mu.Lock()
	defer db.mu.Unlock()

	wm := db.watermark()

	var prunedKeys, droppedVersions int

	iter := db.index.Iterator(false)
	defer iter.Close()

	for iter.Rewind(); iter.Valid(); iter.Next() {
		chain := iter.Value()
		pruned := chain.Prune(wm)
		if pruned == chain {
			continue
		}

		droppedVersions += chain.Len() - pruned.Len()
		prunedKeys += 1
		db.index.Put(iter.Key(), pruned)
	}

	logrus.Infof("[Vacuum] watermark %v, dropped %v versions across %v keys", wm, droppedVersions, prunedKeys)
}
