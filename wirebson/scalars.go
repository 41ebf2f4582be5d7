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
	"github.com/mongokit/mongokit/internal/util/lazyerrors"
)

// Symbol represents deprecated BSON scalar type symbol.
//
// It is encoded like a string and kept only for wire compatibility.
type Symbol string

// JavaScript represents deprecated BSON scalar type JavaScript code.
type JavaScript string

// CodeWithScope represents deprecated BSON scalar type JavaScript code with scope.
//
// The scope document is kept in the encoded form; see [NewCodeWithScope].
type CodeWithScope struct {
	Code  string
	Scope RawDocument
}

// NewCodeWithScope creates a [CodeWithScope] value, encoding the given scope document.
func NewCodeWithScope(code string, scope *Document) (CodeWithScope, error) {
	var res CodeWithScope

	raw, err := scope.Encode()
	if err != nil {
		return res, lazyerrors.Error(err)
	}

	res.Code = code
	res.Scope = raw

	return res, nil
}

// DBPointer represents deprecated BSON scalar type DBPointer.
type DBPointer struct {
	NS string
	ID ObjectID
}

// UndefinedType represents deprecated BSON scalar type undefined.
type UndefinedType struct{}

// Undefined represents deprecated BSON scalar value undefined.
var Undefined = UndefinedType{}

// MinKeyType represents BSON scalar type MinKey.
type MinKeyType struct{}

// MinKey represents BSON scalar value MinKey that compares lower than all other values.
var MinKey = MinKeyType{}

// MaxKeyType represents BSON scalar type MaxKey.
type MaxKeyType struct{}

// MaxKey represents BSON scalar value MaxKey that compares higher than all other values.
var MaxKey = MaxKeyType{}
