package rounds

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrNotFound   = errors.New("round not found")
	ErrLoadRounds = errors.New("load rounds failed")
)
