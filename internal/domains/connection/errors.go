package connection

import "errors"

var (
	ErrSelfConnection = errors.New("cannot connect to yourself")
)
