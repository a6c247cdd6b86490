package redis

import (
	mvccgo "mvcc-go"
)

// TxnStore wraps the mvcc engine for the RESP server
// tids handed to clients are the engine's own transaction ids
type TxnStore struct {
	engine *mvccgo.DB // storage engine
}

func NewTxnStore(opts mvccgo.Options) (*TxnStore, error) {
	engine, err := mvccgo.OpenDB(opts)
	if err != nil {
		return nil, err
	}
	return &TxnStore{engine: engine}, nil
}

func (ts *TxnStore) Begin() uint64 {
	return ts.engine.Begin()
}

func (ts *TxnStore) Put(tid uint64, key, value []byte) error {
	return ts.engine.Put(tid, key, value)
}

func (ts *TxnStore) Get(tid uint64, key []byte) ([]byte, error) {
	return ts.engine.Get(tid, key)
}

func (ts *TxnStore) Commit(tid uint64) bool {
	return ts.engine.Commit(tid)
}

func (ts *TxnStore) Rollback(tid uint64) {
	ts.engine.Rollback(tid)
}

func (ts *TxnStore) Vacuum() {
	ts.engine.Vacuum()
}

func (ts *TxnStore) Keys() [][]byte {
	return ts.engine.ListKeys()
}

func (ts *TxnStore) Stat() *mvccgo.Stat {
	return ts.engine.Stat()
}

// Set is an auto-commit write, one transaction per call
func (ts *TxnStore) Set(key, value []byte) error {
	tid := ts.engine.Begin()
	if err := ts.engine.Put(tid, key, value); err != nil {
		ts.engine.Rollback(tid)
		return err
	}
	ts.engine.Commit(tid)
	return nil
}

// GetLatest reads key at a fresh snapshot, one transaction per call
func (ts *TxnStore) GetLatest(key []byte) ([]byte, error) {
	tid := ts.engine.Begin()
	defer ts.engine.Rollback(tid)
	return ts.engine.Get(tid, key)
}
