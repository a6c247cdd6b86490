package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRBTree_PutGetDelete(t *testing.T) {
	rbt := NewRBTree()

	assert.Nil(t, rbt.Put([]byte("a"), chainWith(1, "a1")))
	assert.Nil(t, rbt.Put([]byte("b"), chainWith(2, "b1")))

	old := rbt.Put([]byte("a"), chainWith(3, "a2"))
	assert.NotNil(t, old)
	assert.Equal(t, uint64(1), old.Latest().CommitTs)

	chain := rbt.Get([]byte("a"))
	assert.NotNil(t, chain)
	assert.Equal(t, []byte("a2"), chain.Latest().Value)

	assert.Equal(t, 2, rbt.Size())

	removed := rbt.Delete([]byte("b"))
	assert.NotNil(t, removed)
	assert.Nil(t, rbt.Get([]byte("b")))
	assert.Equal(t, 1, rbt.Size())
}

func TestRBTree_Iter(t *testing.T) {
	rbt := NewRBTree()

	rbt.Put([]byte("ccc"), chainWith(3, "v3"))
	rbt.Put([]byte("aaa"), chainWith(1, "v1"))
	rbt.Put([]byte("bbb"), chainWith(2, "v2"))

	iter := rbt.Iterator(false)
	var keys []string
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, keys)
	iter.Close()
}
