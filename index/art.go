package index

import (
	"bytes"
	"sort"
	"sync"

	goart "github.com/plar/go-adaptive-radix-tree"
)

type AdaptiveRadixTree struct {
	mu   *sync.RWMutex
	tree goart.Tree
}

func NewARTIndex() *AdaptiveRadixTree {
	return &AdaptiveRadixTree{
		mu:   new(sync.RWMutex),
		tree: goart.New(),
	}
}

func (art *AdaptiveRadixTree) Put(key []byte, value IndexValueType) IndexValueType {
	art.mu.Lock()
	defer art.mu.Unlock()

	oldval, updated := art.tree.Insert(goart.Key(key), value)
	if !updated || oldval == nil {
		return nil
	}
	return oldval.(IndexValueType)
}

func (art *AdaptiveRadixTree) Get(key []byte) IndexValueType {
	art.mu.RLock()
	defer art.mu.RUnlock()

	value, found := art.tree.Search(goart.Key(key))
	if !found {
		return nil
	}
	return value.(IndexValueType)
}

func (art *AdaptiveRadixTree) Delete(key []byte) IndexValueType {
	art.mu.Lock()
	defer art.mu.Unlock()

	oldval, deleted := art.tree.Delete(goart.Key(key))
	if !deleted || oldval == nil {
		return nil
	}
	return oldval.(IndexValueType)
}

func (art *AdaptiveRadixTree) Iterator(reverse bool) Iterator {
	art.mu.RLock()
	defer art.mu.RUnlock()

	return newArtIter(art.tree, reverse)
}

func (art *AdaptiveRadixTree) Size() int {
	art.mu.RLock()
	defer art.mu.RUnlock()
	return art.tree.Size()
}

// ART iter, same snapshot style as the btree iter
type artIterator struct {
	currIndex int
	reverse   bool
	keys      [][]byte
	values    []IndexValueType
}

func newArtIter(tree goart.Tree, reverse bool) *artIterator {
	keys := make([][]byte, 0, tree.Size())
	values := make([]IndexValueType, 0, tree.Size())

	saveValues := func(node goart.Node) bool {
		keys = append(keys, []byte(node.Key()))
		values = append(values, node.Value().(IndexValueType))
		return true
	}

	// ForEach walks in ascending key order
	tree.ForEach(saveValues)

	if reverse {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
			values[i], values[j] = values[j], values[i]
		}
	}

	return &artIterator{currIndex: 0, keys: keys, values: values, reverse: reverse}
}

func (iter *artIterator) Rewind() {
	iter.currIndex = 0
}

func (iter *artIterator) Seek(key []byte) {
	if iter.reverse {
		iter.currIndex = sort.Search(len(iter.keys), func(i int) bool {
			return bytes.Compare(iter.keys[i], key) <= 0
		})
	} else {
		iter.currIndex = sort.Search(len(iter.keys), func(i int) bool {
			return bytes.Compare(iter.keys[i], key) >= 0
		})
	}
}

func (iter *artIterator) Next() {
	iter.currIndex += 1
}

func (iter *artIterator) Valid() bool {
	return iter.currIndex < len(iter.keys)
}

func (iter *artIterator) Key() []byte {
	return iter.keys[iter.currIndex]
}

func (iter *artIterator) Value() IndexValueType {
	return iter.values[iter.currIndex]
}

func (iter *artIterator) Close() {
	iter.keys = nil
	iter.values = nil
}
