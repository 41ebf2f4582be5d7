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
	"encoding/binary"
	"log/slog"

	"github.com/cristalhq/bson/bsonproto"

	"github.com/mongokit/mongokit/internal/util/lazyerrors"
)

// RawDocument represents a single BSON document a.k.a object in the binary encoded form.
//
// It generally references a part of a larger slice, not a copy.
type RawDocument []byte

// FindRawDocument returns the first BSON document in the byte slice.
// It should start at the first byte.
//
// The returned document might not be valid. It is the caller's responsibility to check it.
//
// Use RawDocument(b) conversion instead if b contains exactly one document and no extra bytes.
func FindRawDocument(b []byte) RawDocument {
	bl := len(b)
	if bl < 5 {
		return nil
	}

	dl := int(binary.LittleEndian.Uint32(b))
	if bl < dl {
		return nil
	}

	if b[dl-1] != 0 {
		return nil
	}

	return b[:dl]
}

// LogValue implements [slog.LogValuer].
func (raw RawDocument) LogValue() slog.Value {
	return slogValue(raw)
}

// Decode decodes a single BSON document that takes the whole byte slice.
//
// Only top-level fields are decoded;
// nested documents and arrays are converted to RawDocument and RawArray respectively,
// using raw's subslices without copying.
func (raw RawDocument) Decode() (*Document, error) {
	res, err := raw.decode(decodeShallow)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// DecodeDeep decodes a single valid BSON document that takes the whole byte slice.
//
// All nested documents and arrays are decoded recursively.
func (raw RawDocument) DecodeDeep() (*Document, error) {
	res, err := raw.decode(decodeDeep)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return res, nil
}

// Check recursively checks that the whole byte slice contains a single valid BSON document.
func (raw RawDocument) Check() error {
	if _, err := raw.decode(decodeCheckOnly); err != nil {
		return lazyerrors.Error(err)
	}

	return nil
}

// decode decodes a single BSON document that takes the whole byte slice.
func (raw RawDocument) decode(mode decodeMode) (*Document, error) {
	bl := len(raw)
	if bl < 5 {
		return nil, lazyerrors.Errorf("len(b) = %d: %w", bl, ErrDecodeShortInput)
	}

	if dl := int(binary.LittleEndian.Uint32(raw)); bl != dl {
		return nil, lazyerrors.Errorf("len(b) = %d, document length = %d: %w", bl, dl, ErrDecodeInvalidInput)
	}

	if last := raw[bl-1]; last != 0 {
		return nil, lazyerrors.Errorf("last = %d: %w", last, ErrDecodeInvalidInput)
	}

	var res *Document
	if mode != decodeCheckOnly {
		res = MakeDocument(1)
	}

	offset := 4
	for offset != len(raw)-1 {
		if err := decodeCheckOffset(raw, offset, 1); err != nil {
			return nil, lazyerrors.Error(err)
		}

		t := tag(raw[offset])
		offset++

		if err := decodeCheckOffset(raw, offset, 1); err != nil {
			return nil, lazyerrors.Error(err)
		}

		name, err := bsonproto.DecodeCString(raw[offset:])
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		offset += len(name) + 1

		var v any

		switch t {
		case tagFloat64:
			v, err = bsonproto.DecodeFloat64(raw[offset:])
			offset += bsonproto.SizeFloat64

		case tagString:
			var s string
			s, err = bsonproto.DecodeString(raw[offset:])
			offset += bsonproto.SizeString(s)
			v = s

		case tagDocument:
			var doc RawDocument
			doc, err = decodeNested(raw, offset)
			offset += len(doc)

			if err == nil {
				switch mode {
				case decodeShallow:
					v = doc
				case decodeDeep:
					v, err = doc.decode(decodeDeep)
				case decodeCheckOnly:
					_, err = doc.decode(decodeCheckOnly)
				}
			}

		case tagArray:
			var sub RawDocument
			sub, err = decodeNested(raw, offset)
			offset += len(sub)

			if err == nil {
				arr := RawArray(sub)

				switch mode {
				case decodeShallow:
					v = arr
				case decodeDeep:
					v, err = arr.decode(decodeDeep)
				case decodeCheckOnly:
					_, err = arr.decode(decodeCheckOnly)
				}
			}

		case tagBinary:
			var s Binary
			s, err = bsonproto.DecodeBinary(raw[offset:])
			offset += bsonproto.SizeBinary(s)
			v = s

		case tagUndefined:
			v = Undefined

		case tagObjectID:
			v, err = bsonproto.DecodeObjectID(raw[offset:])
			offset += bsonproto.SizeObjectID

		case tagBool:
			v, err = bsonproto.DecodeBool(raw[offset:])
			offset += bsonproto.SizeBool

		case tagTime:
			v, err = bsonproto.DecodeTime(raw[offset:])
			offset += bsonproto.SizeTime

		case tagNull:
			v = Null

		case tagRegex:
			var s Regex
			s, err = bsonproto.DecodeRegex(raw[offset:])
			offset += bsonproto.SizeRegex(s)
			v = s

		case tagDBPointer:
			var p DBPointer
			p.NS, err = bsonproto.DecodeString(raw[offset:])
			offset += bsonproto.SizeString(p.NS)

			if err == nil {
				p.ID, err = bsonproto.DecodeObjectID(raw[offset:])
				offset += bsonproto.SizeObjectID
			}

			v = p

		case tagJavaScript:
			var s string
			s, err = bsonproto.DecodeString(raw[offset:])
			offset += bsonproto.SizeString(s)
			v = JavaScript(s)

		case tagSymbol:
			var s string
			s, err = bsonproto.DecodeString(raw[offset:])
			offset += bsonproto.SizeString(s)
			v = Symbol(s)

		case tagJavaScriptScope:
			var c CodeWithScope
			c, err = decodeCodeWithScope(raw, offset, mode)
			offset += 4 + bsonproto.SizeString(c.Code) + len(c.Scope)
			v = c

		case tagInt32:
			v, err = bsonproto.DecodeInt32(raw[offset:])
			offset += bsonproto.SizeInt32

		case tagTimestamp:
			v, err = bsonproto.DecodeTimestamp(raw[offset:])
			offset += bsonproto.SizeTimestamp

		case tagInt64:
			v, err = bsonproto.DecodeInt64(raw[offset:])
			offset += bsonproto.SizeInt64

		case tagDecimal128:
			v, err = decodeDecimal128(raw[offset:])
			offset += sizeDecimal128

		case tagMinKey:
			v = MinKey

		case tagMaxKey:
			v = MaxKey

		default:
			return nil, lazyerrors.Errorf("unexpected tag %s at offset %d: %w", t, offset-1, ErrDecodeInvalidInput)
		}

		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		if offset > len(raw)-1 {
			return nil, lazyerrors.Errorf("offset = %d, len(b) = %d: %w", offset, len(raw), ErrDecodeShortInput)
		}

		if mode != decodeCheckOnly {
			res.add(name, v)
		}
	}

	return res, nil
}

// decodeNested returns the subslice of a nested document or array starting at offset.
func decodeNested(raw []byte, offset int) (RawDocument, error) {
	if err := decodeCheckOffset(raw, offset, 4); err != nil {
		return nil, lazyerrors.Error(err)
	}

	l := int(binary.LittleEndian.Uint32(raw[offset:]))
	if l < 5 {
		return nil, lazyerrors.Errorf("nested length = %d: %w", l, ErrDecodeInvalidInput)
	}

	if err := decodeCheckOffset(raw, offset, l); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return RawDocument(raw[offset : offset+l]), nil
}

// decodeCodeWithScope decodes the code-with-scope payload starting at offset.
func decodeCodeWithScope(raw []byte, offset int, mode decodeMode) (CodeWithScope, error) {
	var res CodeWithScope

	if err := decodeCheckOffset(raw, offset, 4); err != nil {
		return res, lazyerrors.Error(err)
	}

	l := int(binary.LittleEndian.Uint32(raw[offset:]))
	if l < 4+5+5 {
		return res, lazyerrors.Errorf("code with scope length = %d: %w", l, ErrDecodeInvalidInput)
	}

	if err := decodeCheckOffset(raw, offset, l); err != nil {
		return res, lazyerrors.Error(err)
	}

	code, err := bsonproto.DecodeString(raw[offset+4:])
	if err != nil {
		return res, lazyerrors.Error(err)
	}

	scope, err := decodeNested(raw, offset+4+bsonproto.SizeString(code))
	if err != nil {
		return res, lazyerrors.Error(err)
	}

	if 4+bsonproto.SizeString(code)+len(scope) != l {
		return res, lazyerrors.Errorf("code with scope length mismatch: %w", ErrDecodeInvalidInput)
	}

	if mode == decodeCheckOnly || mode == decodeDeep {
		if _, err = scope.decode(decodeCheckOnly); err != nil {
			return res, lazyerrors.Error(err)
		}
	}

	res.Code = code
	res.Scope = scope

	return res, nil
}

// decodeCheckOffset checks that b has enough bytes to decode size bytes starting from offset.
func decodeCheckOffset(b []byte, offset, size int) error {
	if len(b[offset:]) < size+1 {
		return lazyerrors.Errorf("offset = %d, size = %d: %w", offset, size, ErrDecodeShortInput)
	}

	return nil
}
