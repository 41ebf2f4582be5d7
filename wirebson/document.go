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

	"github.com/mongokit/mongokit/internal/util/lazyerrors"
)

// field represents a single Document field in the (partially) decoded form.
type field struct {
	value any
	name  string
}

// Document represents a BSON document a.k.a object in the (partially) decoded form.
//
// Fields are ordered; field names are not checked for duplicates
// (writing the same name twice in one session is a caller error).
type Document struct {
	fields []field
}

// NewDocument creates a new Document from the given pairs of field names and values.
func NewDocument(pairs ...any) (*Document, error) {
	l := len(pairs)
	if l%2 != 0 {
		return nil, lazyerrors.Errorf("invalid number of arguments: %d", l)
	}

	res := MakeDocument(l / 2)

	for i := 0; i < l; i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return nil, lazyerrors.Errorf("invalid field name type: %T", pairs[i])
		}

		if err := res.Add(name, pairs[i+1]); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	return res, nil
}

// MakeDocument creates a new empty Document with the given capacity.
func MakeDocument(cap int) *Document {
	return &Document{
		fields: make([]field, 0, cap),
	}
}

// Len returns the number of fields.
func (doc *Document) Len() int {
	return len(doc.fields)
}

// FieldNames returns field names in order.
// Names might be duplicated.
func (doc *Document) FieldNames() []string {
	res := make([]string, len(doc.fields))
	for i, f := range doc.fields {
		res[i] = f.name
	}

	return res
}

// GetByIndex returns the name and the value of the field with the given index.
// It panics if the index is out of bounds.
func (doc *Document) GetByIndex(i int) (string, any) {
	f := doc.fields[i]
	return f.name, f.value
}

// Get returns a value of the field with the given name.
//
// It returns nil if the field is not found.
// If the document contains duplicate field names, it returns the first one.
// Use [Document.Lookup] to distinguish a missing field from a field set to null.
func (doc *Document) Get(name string) any {
	v, _ := doc.Lookup(name)
	return v
}

// Lookup returns a value of the field with the given name,
// and a flag signaling whether the field is present at all.
//
// A present null field returns (Null, true); a missing field returns (nil, false).
func (doc *Document) Lookup(name string) (any, bool) {
	for _, f := range doc.fields {
		if f.name == name {
			return f.value, true
		}
	}

	return nil, false
}

// Add adds a new field to the Document.
func (doc *Document) Add(name string, value any) error {
	if !validValue(value) {
		return lazyerrors.Errorf("%q: invalid BSON value type %T", name, value)
	}

	doc.add(name, value)

	return nil
}

// add adds a new field without validation.
func (doc *Document) add(name string, value any) {
	doc.fields = append(doc.fields, field{
		name:  name,
		value: value,
	})
}

// Encode encodes the document into wire bytes.
func (doc *Document) Encode() (RawDocument, error) {
	size := sizeAny(doc)
	buf := bytes.NewBuffer(make([]byte, 0, size))

	if err := binary.Write(buf, binary.LittleEndian, uint32(size)); err != nil {
		return nil, lazyerrors.Error(err)
	}

	for _, f := range doc.fields {
		if err := encodeField(buf, f.name, f.value); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	if err := buf.WriteByte(0); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return buf.Bytes(), nil
}

// LogValue implements [slog.LogValuer].
func (doc *Document) LogValue() slog.Value {
	return slogValue(doc)
}

// String returns an Extended-JSON-like representation; see [StringValue].
func (doc *Document) String() string {
	return StringValue(doc)
}

// check interfaces
var (
	_ slog.LogValuer = (*Document)(nil)
)
