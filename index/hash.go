package index

import (
	"bytes"
	"sort"
	"sync"
)

type HashIndex struct {
	mu   *sync.RWMutex
	hash map[string]IndexValueType
}

func NewHashIndex() *HashIndex {
	return &HashIndex{
		mu:   new(sync.RWMutex),
		hash: make(map[string]IndexValueType),
	}
}

func (h *HashIndex) Put(key []byte, value IndexValueType) IndexValueType {
	h.mu.Lock()
	defer h.mu.Unlock()

	oldval := h.hash[string(key)]
	h.hash[string(key)] = value

	return oldval
}

// get chain with key, return nil if key doesn't exist
func (h *HashIndex) Get(key []byte) IndexValueType {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.hash[string(key)]
}

// delete item with key, return old chain if delete success, nil if key doesn't exist
func (h *HashIndex) Delete(key []byte) IndexValueType {
	h.mu.Lock()
	defer h.mu.Unlock()

	if oldval, ok := h.hash[string(key)]; ok {
		delete(h.hash, string(key))
		return oldval
	}

	return nil
}

// iterator sorts the keys so iteration order matches the tree indexes
func (h *HashIndex) Iterator(reverse bool) Iterator {
	h.mu.RLock()
	defer h.mu.RUnlock()

	keys := make([][]byte, 0, len(h.hash))
	for key := range h.hash {
		keys = append(keys, []byte(key))
	}

	sort.Slice(keys, func(i, j int) bool {
		if reverse {
			return bytes.Compare(keys[i], keys[j]) > 0
		}
		return bytes.Compare(keys[i], keys[j]) < 0
	})

	values := make([]IndexValueType, len(keys))
	for i, key := range keys {
		values[i] = h.hash[string(key)]
	}

	return &artIterator{currIndex: 0, keys: keys, values: values, reverse: reverse}
}

// return item count of index
func (h *HashIndex) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.hash)
}
