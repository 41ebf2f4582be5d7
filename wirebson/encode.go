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
	"fmt"
	"time"

	"github.com/cristalhq/bson/bsonproto"

	"github.com/mongokit/mongokit/internal/util/lazyerrors"
)

// encodeField encodes a document field or an array element.
//
// It panics if v is not a valid value.
func encodeField(buf *bytes.Buffer, name string, v any) error {
	switch v := v.(type) {
	case *Document:
		if err := encodeFieldHeader(buf, tagDocument, name); err != nil {
			return lazyerrors.Error(err)
		}

		b, err := v.Encode()
		if err != nil {
			return lazyerrors.Error(err)
		}

		if _, err := buf.Write(b); err != nil {
			return lazyerrors.Error(err)
		}

	case RawDocument:
		if err := encodeFieldHeader(buf, tagDocument, name); err != nil {
			return lazyerrors.Error(err)
		}

		if _, err := buf.Write(v); err != nil {
			return lazyerrors.Error(err)
		}

	case *Array:
		if err := encodeFieldHeader(buf, tagArray, name); err != nil {
			return lazyerrors.Error(err)
		}

		b, err := v.Encode()
		if err != nil {
			return lazyerrors.Error(err)
		}

		if _, err := buf.Write(b); err != nil {
			return lazyerrors.Error(err)
		}

	case RawArray:
		if err := encodeFieldHeader(buf, tagArray, name); err != nil {
			return lazyerrors.Error(err)
		}

		if _, err := buf.Write(v); err != nil {
			return lazyerrors.Error(err)
		}

	default:
		return encodeScalarField(buf, name, v)
	}

	return nil
}

// encodeFieldHeader encodes the type tag and the field name.
func encodeFieldHeader(buf *bytes.Buffer, t tag, name string) error {
	if err := buf.WriteByte(byte(t)); err != nil {
		return lazyerrors.Error(err)
	}

	b := make([]byte, bsonproto.SizeCString(name))
	bsonproto.EncodeCString(b, name)

	if _, err := buf.Write(b); err != nil {
		return lazyerrors.Error(err)
	}

	return nil
}

// encodeScalarField encodes a scalar document field.
//
// It panics if v is not a scalar value.
func encodeScalarField(buf *bytes.Buffer, name string, v any) error {
	switch v := v.(type) {
	case Symbol:
		if err := encodeFieldHeader(buf, tagSymbol, name); err != nil {
			return lazyerrors.Error(err)
		}

		return encodeString(buf, string(v))

	case JavaScript:
		if err := encodeFieldHeader(buf, tagJavaScript, name); err != nil {
			return lazyerrors.Error(err)
		}

		return encodeString(buf, string(v))

	case CodeWithScope:
		if err := encodeFieldHeader(buf, tagJavaScriptScope, name); err != nil {
			return lazyerrors.Error(err)
		}

		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(4+bsonproto.SizeString(v.Code)+len(v.Scope)))

		if _, err := buf.Write(b[:]); err != nil {
			return lazyerrors.Error(err)
		}

		if err := encodeString(buf, v.Code); err != nil {
			return lazyerrors.Error(err)
		}

		if _, err := buf.Write(v.Scope); err != nil {
			return lazyerrors.Error(err)
		}

		return nil

	case DBPointer:
		if err := encodeFieldHeader(buf, tagDBPointer, name); err != nil {
			return lazyerrors.Error(err)
		}

		if err := encodeString(buf, v.NS); err != nil {
			return lazyerrors.Error(err)
		}

		if _, err := buf.Write(v.ID[:]); err != nil {
			return lazyerrors.Error(err)
		}

		return nil

	case Decimal128:
		if err := encodeFieldHeader(buf, tagDecimal128, name); err != nil {
			return lazyerrors.Error(err)
		}

		var b [sizeDecimal128]byte
		encodeDecimal128(b[:], v)

		if _, err := buf.Write(b[:]); err != nil {
			return lazyerrors.Error(err)
		}

		return nil

	case UndefinedType:
		return encodeFieldHeader(buf, tagUndefined, name)

	case MinKeyType:
		return encodeFieldHeader(buf, tagMinKey, name)

	case MaxKeyType:
		return encodeFieldHeader(buf, tagMaxKey, name)
	}

	var t tag

	switch v.(type) {
	case float64:
		t = tagFloat64
	case string:
		t = tagString
	case Binary:
		t = tagBinary
	case ObjectID:
		t = tagObjectID
	case bool:
		t = tagBool
	case time.Time:
		t = tagTime
	case NullType:
		t = tagNull
	case Regex:
		t = tagRegex
	case int32:
		t = tagInt32
	case Timestamp:
		t = tagTimestamp
	case int64:
		t = tagInt64
	default:
		panic(fmt.Sprintf("invalid BSON type %T", v))
	}

	if err := encodeFieldHeader(buf, t, name); err != nil {
		return lazyerrors.Error(err)
	}

	b := make([]byte, bsonproto.SizeAny(v))
	bsonproto.EncodeAny(b, v)

	if _, err := buf.Write(b); err != nil {
		return lazyerrors.Error(err)
	}

	return nil
}

// encodeString encodes a length-prefixed NUL-terminated string payload.
func encodeString(buf *bytes.Buffer, s string) error {
	b := make([]byte, bsonproto.SizeString(s))
	bsonproto.EncodeString(b, s)

	if _, err := buf.Write(b); err != nil {
		return lazyerrors.Error(err)
	}

	return nil
}
