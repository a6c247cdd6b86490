package mvccgo

// Txn is the bookkeeping of one active transaction.
// its tid is snapshot timestamp and, on commit, commit timestamp as well:
// all three run on the single counter allocated at Begin
type Txn struct {
	id            uint64
	pendingWrites map[string][]byte
}

func newTxn(id uint64) *Txn {
	return &Txn{
		id:            id,
		pendingWrites: make(map[string][]byte),
	}
}

// stage a write into the pending buffer, last write for a key wins
// no version is created until commit
func (txn *Txn) stage(key, value []byte) {
	txn.pendingWrites[string(key)] = value
}

// read back an uncommitted write of this transaction
func (txn *Txn) read(key []byte) ([]byte, bool) {
	value, ok := txn.pendingWrites[string(key)]
	return value, ok
}
