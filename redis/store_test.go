package redis

import (
	"testing"

	mvccgo "mvcc-go"

	"github.com/stretchr/testify/assert"
)

func TestTxnStore_TransactionalSurface(t *testing.T) {
	store, err := NewTxnStore(mvccgo.DefaultOptions)
	assert.Nil(t, err)

	t1 := store.Begin()
	assert.Nil(t, store.Put(t1, []byte("x"), []byte("1")))
	assert.True(t, store.Commit(t1))
	assert.False(t, store.Commit(t1))

	t2 := store.Begin()
	val, err := store.Get(t2, []byte("x"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), val)
	store.Rollback(t2)

	assert.Equal(t, 1, store.Stat().KeyNum)
	assert.Equal(t, 1, len(store.Keys()))
}

func TestTxnStore_AutoCommit(t *testing.T) {
	store, err := NewTxnStore(mvccgo.DefaultOptions)
	assert.Nil(t, err)

	assert.Nil(t, store.Set([]byte("k"), []byte("v1")))
	assert.Nil(t, store.Set([]byte("k"), []byte("v2")))

	val, err := store.GetLatest([]byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v2"), val)

	missing, err := store.GetLatest([]byte("nope"))
	assert.Nil(t, err)
	assert.Nil(t, missing)

	// auto-commit transactions leave nothing active
	assert.Equal(t, 0, store.Stat().ActiveTxnNum)

	store.Vacuum()
	val, err = store.GetLatest([]byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v2"), val)
}
