package index

import (
	"mvcc-go/version"
)

type IndexType = int8
type IndexKeyType = []byte
type IndexValueType = *version.Chain

const (
	BTREE IndexType = iota + 1
	RBTREE
	ARTREE
	HASH
)

// in-memory map from key to its version chain
type Indexer interface {
	// put <key, chain>, return nil if key doesn't exist, else old chain
	Put(key []byte, value IndexValueType) IndexValueType

	// get chain of key, return nil if key doesn't exist
	Get(key []byte) IndexValueType

	// delete item with key, return old chain if delete success, nil if key doesn't exist
	Delete(key []byte) IndexValueType

	// create a iterator for index
	Iterator(reverse bool) Iterator

	// return item count of index
	Size() int
}

type Iterator interface {
	// reset iterator to begin of container
	Rewind()

	// find the first item which greate equal than key
	Seek(key []byte)

	// set iter to next item
	Next()

	// return true if iterator is valid, false else
	Valid() bool

	// return key of iterator
	Key() []byte

	// return chain of iterator
	Value() IndexValueType

	// close iterator
	Close()
}

func NewIndexer(typ IndexType) Indexer {
	switch typ {
	case BTREE:
		return newBTree(-1)
	case RBTREE:
		return NewRBTree()
	case ARTREE:
		return NewARTIndex()
	case HASH:
		return NewHashIndex()
	default:
		panic("unsupported index type")
	}
}
