package storage

import "errors"

var ErrNotFound = errors.New("key not found")
