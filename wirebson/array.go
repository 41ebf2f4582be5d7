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

package wirebson

import (
	"bytes"
	"encoding/binary"
	"log/slog"
	"strconv"

	"github.com/mongokit/mongokit/internal/util/lazyerrors"
)

// Array represents a BSON array in the (partially) decoded form.
type Array struct {
	elements []any
}

// NewArray creates a new Array from the given values.
func NewArray(values ...any) (*Array, error) {
	res := MakeArray(len(values))

	for _, v := range values {
		if err := res.Add(v); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	return res, nil
}

// MakeArray creates a new empty Array with the given capacity.
func MakeArray(cap int) *Array {
	return &Array{
		elements: make([]any, 0, cap),
	}
}

// Len returns the number of elements.
func (arr *Array) Len() int {
	return len(arr.elements)
}

// Get returns the element with the given index.
// It panics if the index is out of bounds.
func (arr *Array) Get(i int) any {
	return arr.elements[i]
}

// Add adds a new element to the Array.
func (arr *Array) Add(value any) error {
	if !validValue(value) {
		return lazyerrors.Errorf("[%d]: invalid BSON value type %T", len(arr.elements), value)
	}

	arr.elements = append(arr.elements, value)

	return nil
}

// Encode encodes the array into wire bytes.
//
// Arrays are encoded as documents with stringified 0-based indices for keys.
func (arr *Array) Encode() (RawArray, error) {
	size := sizeAny(arr)
	buf := bytes.NewBuffer(make([]byte, 0, size))

	if err := binary.Write(buf, binary.LittleEndian, uint32(size)); err != nil {
		return nil, lazyerrors.Error(err)
	}

	for i, v := range arr.elements {
		if err := encodeField(buf, strconv.Itoa(i), v); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	if err := buf.WriteByte(0); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return buf.Bytes(), nil
}

// LogValue implements [slog.LogValuer].
func (arr *Array) LogValue() slog.Value {
	return slogValue(arr)
}

// String returns an Extended-JSON-like representation; see [StringValue].
func (arr *Array) String() string {
	return StringValue(arr)
}

// check interfaces
var (
	_ slog.LogValuer = (*Array)(nil)
)
