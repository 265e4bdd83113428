package domain

import "errors"

// ErrBlobNotFound is returned by a BlobStore when the named blob has never
// been written. The Persistence Gateway treats it as "no prior data" and
// starts with an empty collection. It is the only sentinel the engine needs:
// validation and lookup failures are silent no-ops by contract, and
// persistence failures are logged, not propagated.
var ErrBlobNotFound = errors.New("blob not found")
