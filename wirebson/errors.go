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
	"errors"
	"fmt"

	"github.com/cristalhq/bson/bsonproto"
)

var (
	// ErrDecodeShortInput is returned wrapped by decoding functions
	// if the input bytes slice is too short.
	ErrDecodeShortInput = bsonproto.ErrDecodeShortInput

	// ErrDecodeInvalidInput is returned wrapped by decoding functions
	// if the input bytes slice is invalid.
	ErrDecodeInvalidInput = bsonproto.ErrDecodeInvalidInput

	// ErrFieldNotFound is returned wrapped by typed accessors
	// if the document has no field with the given name.
	// It is distinct from reading a present field that contains null.
	ErrFieldNotFound = errors.New("field not found")
)

// TypeMismatchError is returned by typed accessors when the dynamic BSON type
// of the field does not match the requested one.
// No coercion is performed; reading an int field as long fails.
type TypeMismatchError struct {
	Field    string // field name or array index
	Expected string // requested BSON type name
	Actual   string // actual BSON type name
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%q: expected BSON type %s, got %s", e.Field, e.Expected, e.Actual)
}

// newTypeMismatchError creates a [*TypeMismatchError] for the given field and value.
func newTypeMismatchError(field, expected string, actual any) error {
	return &TypeMismatchError{
		Field:    field,
		Expected: expected,
		Actual:   TypeName(actual),
	}
}
