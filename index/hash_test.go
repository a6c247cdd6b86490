package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashIndex_PutGetDelete(t *testing.T) {
	h := NewHashIndex()

	assert.Nil(t, h.Put([]byte("a"), chainWith(1, "a1")))
	old := h.Put([]byte("a"), chainWith(2, "a2"))
	assert.NotNil(t, old)
	assert.Equal(t, uint64(1), old.Latest().CommitTs)

	assert.NotNil(t, h.Get([]byte("a")))
	assert.Nil(t, h.Get([]byte("b")))

	assert.NotNil(t, h.Delete([]byte("a")))
	assert.Nil(t, h.Delete([]byte("a")))
	assert.Equal(t, 0, h.Size())
}

func TestHashIndex_Iter_Sorted(t *testing.T) {
	h := NewHashIndex()

	h.Put([]byte("ccc"), chainWith(3, "v3"))
	h.Put([]byte("aaa"), chainWith(1, "v1"))
	h.Put([]byte("bbb"), chainWith(2, "v2"))

	iter := h.Iterator(false)
	var keys []string
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, keys)
	iter.Close()
}

func TestNewIndexer(t *testing.T) {
	assert.NotNil(t, NewIndexer(BTREE))
	assert.NotNil(t, NewIndexer(RBTREE))
	assert.NotNil(t, NewIndexer(ARTREE))
	assert.NotNil(t, NewIndexer(HASH))
	assert.Panics(t, func() { NewIndexer(42) })
}
