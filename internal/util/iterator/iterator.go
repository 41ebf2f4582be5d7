// Copyright 2025 MongoKit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package iterator describes a generic Iterator interface.
package iterator

import "errors"

// ErrIteratorDone is returned when the iterator is read to the end.
var ErrIteratorDone = errors.New("iterator is read to the end")

// Interface is an iterator interface.
type Interface[K, V any] interface {
	// Next returns the next key/value pair, where the key is a slice index,
	// map key, document number, etc.
	// Returned error could be (possibly wrapped) ErrIteratorDone or some fatal error.
	Next() (K, V, error)

	// Close indicates that the iterator will no longer be used.
	// After Close is called, Next must return ErrIteratorDone.
	// Close must be concurrency-safe and callable multiple times.
	Close()
}

// ForSlice returns an iterator over a slice.
func ForSlice[V any](s []V) Interface[int, V] {
	return &sliceIterator[V]{s: s}
}

// sliceIterator implements [Interface] for slices.
type sliceIterator[V any] struct {
	s []V
	n int
}

func (it *sliceIterator[V]) Next() (int, V, error) {
	var zero V

	if it.n >= len(it.s) {
		return 0, zero, ErrIteratorDone
	}

	i := it.n
	it.n++

	return i, it.s[i], nil
}

func (it *sliceIterator[V]) Close() {
	it.n = len(it.s)
}
