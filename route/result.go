package route

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is wrapped by every InvalidKeyError.
var ErrInvalidKey = errors.New("invalid key")

// InvalidKey reports the element whose key the policy refused.
type InvalidKey[E any, K comparable] struct {
	Element E
	Key     K
}

// InvalidKeyError is the error form of InvalidKey.
type InvalidKeyError[E any, K comparable] struct {
	InvalidKey[E, K]
}

func (e *InvalidKeyError[E, K]) Error() string {
	return fmt.Sprintf("%v %#v for element %#v", ErrInvalidKey, e.Key, e.Element)
}

func (e *InvalidKeyError[E, K]) Unwrap() error {
	return ErrInvalidKey
}

// Result is the outcome of a pass: either the finalized buckets or the
// InvalidKey that aborted it, never both.
type Result[E any, K comparable, V any] struct {
	buckets map[K]V
	invalid *InvalidKey[E, K]
}

// Buckets returns the finalized buckets and true if the pass succeeded.
func (r Result[E, K, V]) Buckets() (map[K]V, bool) {
	if r.invalid != nil {
		return nil, false
	}
	return r.buckets, true
}

// Invalid returns the report of an aborted pass.
func (r Result[E, K, V]) Invalid() (InvalidKey[E, K], bool) {
	if r.invalid == nil {
		return InvalidKey[E, K]{}, false
	}
	return *r.invalid, true
}

// Err returns nil on success, or an *InvalidKeyError.
func (r Result[E, K, V]) Err() error {
	if r.invalid == nil {
		return nil
	}
	return &InvalidKeyError[E, K]{InvalidKey: *r.invalid}
}
