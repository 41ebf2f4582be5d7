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
	"time"

	"github.com/mongokit/mongokit/internal/util/lazyerrors"
)

// lookupTyped returns the value of the named field asserted to T.
//
// A missing field wraps [ErrFieldNotFound];
// a present field of another type returns [*TypeMismatchError].
// No numeric coercion is performed.
func lookupTyped[T any](doc *Document, name, expected string) (T, error) {
	var zero T

	v, ok := doc.Lookup(name)
	if !ok {
		return zero, lazyerrors.Errorf("%q: %w", name, ErrFieldNotFound)
	}

	res, ok := v.(T)
	if !ok {
		return zero, newTypeMismatchError(name, expected, v)
	}

	return res, nil
}

// GetFloat64 returns the value of the named double field.
func (doc *Document) GetFloat64(name string) (float64, error) {
	return lookupTyped[float64](doc, name, "double")
}

// GetString returns the value of the named string field.
func (doc *Document) GetString(name string) (string, error) {
	return lookupTyped[string](doc, name, "string")
}

// GetDocument returns the value of the named embedded document field.
//
// A shallow-decoded [RawDocument] value is decoded on access.
func (doc *Document) GetDocument(name string) (*Document, error) {
	v, ok := doc.Lookup(name)
	if !ok {
		return nil, lazyerrors.Errorf("%q: %w", name, ErrFieldNotFound)
	}

	switch v := v.(type) {
	case *Document:
		return v, nil
	case RawDocument:
		res, err := v.Decode()
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		return res, nil
	default:
		return nil, newTypeMismatchError(name, "object", v)
	}
}

// GetArray returns the value of the named array field.
//
// A shallow-decoded [RawArray] value is decoded on access.
func (doc *Document) GetArray(name string) (*Array, error) {
	v, ok := doc.Lookup(name)
	if !ok {
		return nil, lazyerrors.Errorf("%q: %w", name, ErrFieldNotFound)
	}

	switch v := v.(type) {
	case *Array:
		return v, nil
	case RawArray:
		res, err := v.Decode()
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		return res, nil
	default:
		return nil, newTypeMismatchError(name, "array", v)
	}
}

// GetBinary returns the value of the named binary field.
func (doc *Document) GetBinary(name string) (Binary, error) {
	return lookupTyped[Binary](doc, name, "binData")
}

// GetObjectID returns the value of the named ObjectID field.
func (doc *Document) GetObjectID(name string) (ObjectID, error) {
	return lookupTyped[ObjectID](doc, name, "objectId")
}

// GetBool returns the value of the named boolean field.
func (doc *Document) GetBool(name string) (bool, error) {
	return lookupTyped[bool](doc, name, "bool")
}

// GetTime returns the value of the named UTC datetime field.
func (doc *Document) GetTime(name string) (time.Time, error) {
	return lookupTyped[time.Time](doc, name, "date")
}

// GetNull checks that the named field is present and contains null.
func (doc *Document) GetNull(name string) error {
	_, err := lookupTyped[NullType](doc, name, "null")
	return err
}

// GetRegex returns the value of the named regular expression field.
func (doc *Document) GetRegex(name string) (Regex, error) {
	return lookupTyped[Regex](doc, name, "regex")
}

// GetInt32 returns the value of the named int field.
//
// Reading a long or double field with GetInt32 fails with [*TypeMismatchError].
func (doc *Document) GetInt32(name string) (int32, error) {
	return lookupTyped[int32](doc, name, "int")
}

// GetTimestamp returns the value of the named timestamp field.
func (doc *Document) GetTimestamp(name string) (Timestamp, error) {
	return lookupTyped[Timestamp](doc, name, "timestamp")
}

// GetInt64 returns the value of the named long field.
func (doc *Document) GetInt64(name string) (int64, error) {
	return lookupTyped[int64](doc, name, "long")
}

// GetDecimal128 returns the value of the named decimal field.
func (doc *Document) GetDecimal128(name string) (Decimal128, error) {
	return lookupTyped[Decimal128](doc, name, "decimal")
}

// GetSymbol returns the value of the named symbol field.
func (doc *Document) GetSymbol(name string) (Symbol, error) {
	return lookupTyped[Symbol](doc, name, "symbol")
}

// GetJavaScript returns the value of the named JavaScript code field.
func (doc *Document) GetJavaScript(name string) (JavaScript, error) {
	return lookupTyped[JavaScript](doc, name, "javascript")
}

// GetCodeWithScope returns the value of the named code-with-scope field.
func (doc *Document) GetCodeWithScope(name string) (CodeWithScope, error) {
	return lookupTyped[CodeWithScope](doc, name, "javascriptWithScope")
}

// GetDBPointer returns the value of the named DBPointer field.
func (doc *Document) GetDBPointer(name string) (DBPointer, error) {
	return lookupTyped[DBPointer](doc, name, "dbPointer")
}

// GetUndefined checks that the named field is present and contains undefined.
func (doc *Document) GetUndefined(name string) error {
	_, err := lookupTyped[UndefinedType](doc, name, "undefined")
	return err
}

// GetMinKey checks that the named field is present and contains MinKey.
func (doc *Document) GetMinKey(name string) error {
	_, err := lookupTyped[MinKeyType](doc, name, "minKey")
	return err
}

// GetMaxKey checks that the named field is present and contains MaxKey.
func (doc *Document) GetMaxKey(name string) error {
	_, err := lookupTyped[MaxKeyType](doc, name, "maxKey")
	return err
}
