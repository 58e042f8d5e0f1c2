package htable

import "errors"

// ErrKeyNotFound is the panic cause of MustGet and MustSet on a missing key
var ErrKeyNotFound = errors.New("no entry found for key")
