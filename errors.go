package mvccgo

import "errors"

var (
	ErrKeyIsEmpty         = errors.New("the key is empty")
	ErrInvalidTransaction = errors.New("transaction is not active")
	ErrWriteConflict      = errors.New("write conflict, key has a newer committed version")
)
