package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestART_PutGetDelete(t *testing.T) {
	art := NewARTIndex()

	assert.Nil(t, art.Put([]byte("key-1"), chainWith(1, "v1")))
	assert.Nil(t, art.Put([]byte("key-2"), chainWith(2, "v2")))
	assert.Equal(t, 2, art.Size())

	old := art.Put([]byte("key-1"), chainWith(5, "v5"))
	assert.NotNil(t, old)
	assert.Equal(t, uint64(1), old.Latest().CommitTs)
	assert.Equal(t, 2, art.Size())

	chain := art.Get([]byte("key-1"))
	assert.NotNil(t, chain)
	assert.Equal(t, []byte("v5"), chain.Latest().Value)

	assert.Nil(t, art.Get([]byte("key-3")))

	removed := art.Delete([]byte("key-2"))
	assert.NotNil(t, removed)
	assert.Nil(t, art.Get([]byte("key-2")))
	assert.Nil(t, art.Delete([]byte("key-2")))
	assert.Equal(t, 1, art.Size())
}

func TestART_Iter(t *testing.T) {
	art := NewARTIndex()

	art.Put([]byte("banana"), chainWith(2, "v2"))
	art.Put([]byte("apple"), chainWith(1, "v1"))
	art.Put([]byte("cherry"), chainWith(3, "v3"))

	iter := art.Iterator(false)
	var keys []string
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
		assert.NotNil(t, iter.Value())
	}
	assert.Equal(t, []string{"apple", "banana", "cherry"}, keys)
	iter.Close()

	riter := art.Iterator(true)
	riter.Rewind()
	assert.True(t, riter.Valid())
	assert.Equal(t, []byte("cherry"), riter.Key())

	riter.Seek([]byte("banana"))
	assert.True(t, riter.Valid())
	assert.Equal(t, []byte("banana"), riter.Key())
	riter.Close()
}
