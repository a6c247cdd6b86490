package mvccgo

import (
	"errors"
	"sync"

	"mvcc-go/index"
	"mvcc-go/version"

	"github.com/sirupsen/logrus"
)

// DB is a transactional multi-version KV engine with snapshot isolation
// it supports Begin, Put, Get, Commit, Rollback and Vacuum for upper application
//
// readers never block writers: Get scans the committed version chains at
// the snapshot timestamp of its transaction, all mutation goes through
// the exclusive lock
type DB struct {
	options *Options // config info
	mu      *sync.RWMutex

	// version chains in memory, key -> chain
	index index.Indexer

	// tid counter, a tid is transaction identity, snapshot timestamp
	// and commit timestamp at once
	nextTid uint64

	active      map[uint64]*Txn // active transaction set
	maxCommitTs uint64          // vacuum watermark fallback when nothing is active
}

func OpenDB(options Options) (*DB, error) {
	if err := checkOptions(options); err != nil {
		return nil, err
	}

	db := &DB{
		options: &options,
		mu:      new(sync.RWMutex),
		index:   index.NewIndexer(options.Index),
		active:  make(map[uint64]*Txn),
	}

	logrus.Infof("mvcc engine open, index type %v", options.Index)

	return db, nil
}

func checkOptions(options Options) error {
	switch options.Index {
	case index.BTREE, index.RBTREE, index.ARTREE, index.HASH:
		return nil
	}
	return errors.New("unknown index type")
}

// Begin allocates the next tid and registers it as active
// with an empty pending-write buffer, it never fails
//
// the tid doubles as the snapshot boundary of the transaction and the
// commit timestamp of everything it writes, so a transaction that begins
// early but commits late still stamps its versions with the early tid
func (db *DB) Begin() uint64 {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.nextTid += 1
	tid := db.nextTid
	db.active[tid] = newTxn(tid)

	return tid
}

// Put stages value for key into the pending buffer of transaction tid
//
// conflict check is eager: if some transaction that began after tid
// already committed a version for key, the caller's view is stale and
// the write fails with ErrWriteConflict right away, not at commit
func (db *DB) Put(tid uint64, key []byte, value []byte) error {
	if len(key) == 0 {
		return ErrKeyIsEmpty
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	txn, ok := db.active[tid]
	if !ok {
		return ErrInvalidTransaction
	}

	if chain := db.index.Get(key); chain != nil {
		if latest := chain.Latest(); latest != nil && latest.CommitTs > tid {
			return ErrWriteConflict
		}
	}

	txn.stage(key, value)
	return nil
}

// Get reads key at the snapshot of transaction tid
//
// visibility order: the transaction's own pending write first, then the
// newest committed version with commit timestamp <= tid
// a key with no visible version returns (nil, nil), absence is not an error
func (db *DB) Get(tid uint64, key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if len(key) == 0 {
		return nil, ErrKeyIsEmpty
	}

	txn, ok := db.active[tid]
	if !ok {
		return nil, ErrInvalidTransaction
	}

	if value, ok := txn.read(key); ok {
		return value, nil
	}

	chain := db.index.Get(key)
	if chain == nil {
		return nil, nil
	}

	visible := chain.Visible(tid)
	if visible == nil {
		return nil, nil
	}

	return visible.Value, nil
}

// Commit folds the pending buffer of tid into the version chains, every
// written key gets a version stamped with tid
//
// return false if tid is unknown or already finished, so a racing double
// commit is observable without an error
func (db *DB) Commit(tid uint64) bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	txn, ok := db.active[tid]
	if !ok {
		return false
	}

	for key, value := range txn.pendingWrites {
		chain := db.index.Get([]byte(key))
		if chain == nil {
			chain = version.NewChain()
			db.index.Put([]byte(key), chain)
		}
		// the Put conflict check guarantees this append keeps the
		// chain sorted by commit timestamp
		chain.Append(tid, value)
	}

	if tid > db.maxCommitTs {
		db.maxCommitTs = tid
	}

	delete(db.active, tid)
	return true
}

// Rollback discards the pending buffer of tid without touching any chain
// rollback of an unknown or finished tid is a no-op
func (db *DB) Rollback(tid uint64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.active, tid)
}

// ListKeys returns every key which has at least one committed version
func (db *DB) ListKeys() [][]byte {
	db.mu.RLock()
	defer db.mu.RUnlock()

	iter := db.index.Iterator(false)
	defer iter.Close()

	keys := make([][]byte, db.index.Size())

	idx := 0
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys[idx] = iter.Key()
		idx += 1
	}

	return keys
}

// Fold visits every key with its latest committed value
func (db *DB) Fold(fn func(key, val []byte) bool) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	iter := db.index.Iterator(false)
	defer iter.Close()

	for iter.Rewind(); iter.Valid(); iter.Next() {
		latest := iter.Value().Latest()
		if latest == nil {
			continue
		}
		if !fn(iter.Key(), latest.Value) {
			break
		}
	}

	return nil
}

// Stat snapshots engine counters
type Stat struct {
	KeyNum       int
	VersionNum   int
	ActiveTxnNum int
	LastTid      uint64
	LastCommitTs uint64
}

func (db *DB) Stat() *Stat {
	db.mu.RLock()
	defer db.mu.RUnlock()

	stat := &Stat{
		KeyNum:       db.index.Size(),
		ActiveTxnNum: len(db.active),
		LastTid:      db.nextTid,
		LastCommitTs: db.maxCommitTs,
	}

	iter := db.index.Iterator(false)
	defer iter.Close()
	for iter.Rewind(); iter.Valid(); iter.Next() {
		stat.VersionNum += iter.Value().Len()
	}

	return stat
}
