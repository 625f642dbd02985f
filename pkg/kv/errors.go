package kv

import "errors"

var (
	// ErrKeyNotFound indicates no value is stored under the requested key.
	ErrKeyNotFound = errors.New("kv.key_not_found")

	// ErrInvalidKey indicates an empty or otherwise unusable key.
	ErrInvalidKey = errors.New("kv.invalid_key")

	// ErrFailedToConnect indicates the backing store could not be reached.
	ErrFailedToConnect = errors.New("kv.failed_to_connect")
)
