package store

import "fmt"

// ReadError reports a collection that exists but could not be decoded. Typed
// readers log it and fall back to an empty collection.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("store: read %s: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
