package mvccgo

import (
	"mvcc-go/index"
)

type Options struct {
	Index index.IndexType
}

var DefaultOptions = Options{
	Index: index.BTREE,
}
