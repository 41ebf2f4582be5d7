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

// Package wirebson implements encoding and decoding of BSON as defined by
// https://bsonspec.org/spec.html and
// https://www.mongodb.com/docs/manual/reference/bson-types/.
//
// # Types
//
// The following BSON types are supported:
//
//	BSON                          Go
//
//	Document                      *wirebson.Document or wirebson.RawDocument
//	Array                         *wirebson.Array    or wirebson.RawArray
//
//	Double                        float64
//	String                        string
//	Binary data                   wirebson.Binary
//	ObjectId                      wirebson.ObjectID
//	Boolean                       bool
//	Date                          time.Time
//	Null                          wirebson.NullType
//	Regular Expression            wirebson.Regex
//	32-bit integer                int32
//	Timestamp                     wirebson.Timestamp
//	64-bit integer                int64
//	Decimal128                    wirebson.Decimal128
//	Min key                       wirebson.MinKeyType
//	Max key                       wirebson.MaxKeyType
//
//	Symbol (deprecated)           wirebson.Symbol
//	JavaScript code (deprecated)  wirebson.JavaScript
//	Code with scope (deprecated)  wirebson.CodeWithScope
//	DBPointer (deprecated)        wirebson.DBPointer
//	Undefined (deprecated)        wirebson.UndefinedType
//
// Composite types (Document and Array) are passed by pointers.
// Raw composite types and scalars are passed by values.
package wirebson

import (
	"time"

	"github.com/cristalhq/bson/bsonproto"
)

type (
	// Binary represents BSON scalar type binary.
	Binary = bsonproto.Binary

	// BinarySubtype represents BSON Binary's subtype.
	BinarySubtype = bsonproto.BinarySubtype

	// NullType represents BSON scalar type null.
	NullType = bsonproto.NullType

	// ObjectID represents BSON scalar type ObjectID.
	ObjectID = bsonproto.ObjectID

	// Regex represents BSON scalar type regular expression.
	Regex = bsonproto.Regex

	// Timestamp represents BSON scalar type timestamp.
	Timestamp = bsonproto.Timestamp
)

// Binary subtypes.
const (
	BinaryGeneric    = bsonproto.BinaryGeneric
	BinaryFunction   = bsonproto.BinaryFunction
	BinaryGenericOld = bsonproto.BinaryGenericOld
	BinaryUUIDOld    = bsonproto.BinaryUUIDOld
	BinaryUUID       = bsonproto.BinaryUUID
	BinaryMD5        = bsonproto.BinaryMD5
	BinaryEncrypted  = bsonproto.BinaryEncrypted
	BinaryUser       = bsonproto.BinaryUser
)

// Null represents BSON scalar value null.
var Null = bsonproto.Null

// ScalarType represents a BSON scalar type handled by bsonproto.
type ScalarType = bsonproto.ScalarType

// CompositeType represents a BSON composite type (including raw types).
type CompositeType interface {
	*Document | *Array | RawDocument | RawArray
}

// validValue checks if v is a valid BSON value (including raw types).
func validValue(v any) bool {
	switch v.(type) {
	case *Document:
	case RawDocument:
	case *Array:
	case RawArray:

	default:
		return validScalarValue(v)
	}

	return true
}

// validScalarValue checks if v is a valid BSON scalar value.
func validScalarValue(v any) bool {
	switch v.(type) {
	case float64:
	case string:
	case Binary:
	case ObjectID:
	case bool:
	case time.Time:
	case NullType:
	case Regex:
	case int32:
	case Timestamp:
	case int64:
	case Decimal128:
	case Symbol:
	case JavaScript:
	case CodeWithScope:
	case DBPointer:
	case UndefinedType:
	case MinKeyType:
	case MaxKeyType:

	default:
		return false
	}

	return true
}

// protoScalar checks if v is a scalar value that bsonproto can encode directly.
func protoScalar(v any) bool {
	switch v.(type) {
	case float64, string, Binary, ObjectID, bool, time.Time, NullType, Regex, int32, Timestamp, int64:
		return true
	default:
		return false
	}
}

// TypeName returns the MongoDB name of the BSON type of v,
// such as "int", "long", or "object".
//
// It panics for invalid values.
func TypeName(v any) string {
	switch v.(type) {
	case *Document, RawDocument:
		return "object"
	case *Array, RawArray:
		return "array"
	case float64:
		return "double"
	case string:
		return "string"
	case Binary:
		return "binData"
	case ObjectID:
		return "objectId"
	case bool:
		return "bool"
	case time.Time:
		return "date"
	case NullType:
		return "null"
	case Regex:
		return "regex"
	case int32:
		return "int"
	case Timestamp:
		return "timestamp"
	case int64:
		return "long"
	case Decimal128:
		return "decimal"
	case Symbol:
		return "symbol"
	case JavaScript:
		return "javascript"
	case CodeWithScope:
		return "javascriptWithScope"
	case DBPointer:
		return "dbPointer"
	case UndefinedType:
		return "undefined"
	case MinKeyType:
		return "minKey"
	case MaxKeyType:
		return "maxKey"
	default:
		panic("invalid BSON value")
	}
}
