package cache

import "errors"

var ErrUnknownBackend = errors.New("unknown cache backend")
