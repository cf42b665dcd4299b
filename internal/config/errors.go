package config

import "errors"

// ErrInvalid wraps validation failures returned by Load.
var ErrInvalid = errors.New("config: invalid configuration")
