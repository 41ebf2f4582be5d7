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

import "time"

// FieldWriter is the writer capability over named document fields:
// one method per BSON type.
//
// Numeric writes are type-preserving: WriteInt32 always produces a BSON int,
// WriteInt64 a BSON long, WriteDouble a BSON double.
// There is no automatic widening.
type FieldWriter interface {
	WriteDouble(name string, v float64) error
	WriteString(name string, v string) error
	WriteDocument(name string, v *Document) error
	WriteArray(name string, v *Array) error
	WriteBinary(name string, v Binary) error
	WriteObjectID(name string, v ObjectID) error
	WriteBool(name string, v bool) error
	WriteTime(name string, v time.Time) error
	WriteNull(name string) error
	WriteRegex(name string, pattern, options string) error
	WriteInt32(name string, v int32) error
	WriteTimestamp(name string, v Timestamp) error
	WriteInt64(name string, v int64) error
	WriteDecimal128(name string, v Decimal128) error
	WriteSymbol(name string, v Symbol) error
	WriteJavaScript(name string, v JavaScript) error
	WriteCodeWithScope(name string, v CodeWithScope) error
	WriteDBPointer(name string, v DBPointer) error
	WriteUndefined(name string) error
	WriteMinKey(name string) error
	WriteMaxKey(name string) error
}

// WriteDouble implements [FieldWriter].
func (doc *Document) WriteDouble(name string, v float64) error { return doc.Add(name, v) }

// WriteString implements [FieldWriter].
func (doc *Document) WriteString(name string, v string) error { return doc.Add(name, v) }

// WriteDocument implements [FieldWriter].
func (doc *Document) WriteDocument(name string, v *Document) error { return doc.Add(name, v) }

// WriteArray implements [FieldWriter].
func (doc *Document) WriteArray(name string, v *Array) error { return doc.Add(name, v) }

// WriteBinary implements [FieldWriter].
func (doc *Document) WriteBinary(name string, v Binary) error { return doc.Add(name, v) }

// WriteObjectID implements [FieldWriter].
func (doc *Document) WriteObjectID(name string, v ObjectID) error { return doc.Add(name, v) }

// WriteBool implements [FieldWriter].
func (doc *Document) WriteBool(name string, v bool) error { return doc.Add(name, v) }

// WriteTime implements [FieldWriter].
func (doc *Document) WriteTime(name string, v time.Time) error { return doc.Add(name, v) }

// WriteNull implements [FieldWriter].
func (doc *Document) WriteNull(name string) error { return doc.Add(name, Null) }

// WriteRegex implements [FieldWriter].
// Option flags are canonicalized; see [NewRegex].
func (doc *Document) WriteRegex(name string, pattern, options string) error {
	return doc.Add(name, NewRegex(pattern, options))
}

// WriteInt32 implements [FieldWriter].
func (doc *Document) WriteInt32(name string, v int32) error { return doc.Add(name, v) }

// WriteTimestamp implements [FieldWriter].
func (doc *Document) WriteTimestamp(name string, v Timestamp) error { return doc.Add(name, v) }

// WriteInt64 implements [FieldWriter].
func (doc *Document) WriteInt64(name string, v int64) error { return doc.Add(name, v) }

// WriteDecimal128 implements [FieldWriter].
func (doc *Document) WriteDecimal128(name string, v Decimal128) error { return doc.Add(name, v) }

// WriteSymbol implements [FieldWriter].
func (doc *Document) WriteSymbol(name string, v Symbol) error { return doc.Add(name, v) }

// WriteJavaScript implements [FieldWriter].
func (doc *Document) WriteJavaScript(name string, v JavaScript) error { return doc.Add(name, v) }

// WriteCodeWithScope implements [FieldWriter].
func (doc *Document) WriteCodeWithScope(name string, v CodeWithScope) error { return doc.Add(name, v) }

// WriteDBPointer implements [FieldWriter].
func (doc *Document) WriteDBPointer(name string, v DBPointer) error { return doc.Add(name, v) }

// WriteUndefined implements [FieldWriter].
func (doc *Document) WriteUndefined(name string) error { return doc.Add(name, Undefined) }

// WriteMinKey implements [FieldWriter].
func (doc *Document) WriteMinKey(name string) error { return doc.Add(name, MinKey) }

// WriteMaxKey implements [FieldWriter].
func (doc *Document) WriteMaxKey(name string) error { return doc.Add(name, MaxKey) }

// ValueWriter is the writer capability over positional array elements:
// one method per BSON type, taking a bare value.
type ValueWriter interface {
	AppendDouble(v float64) error
	AppendString(v string) error
	AppendDocument(v *Document) error
	AppendArray(v *Array) error
	AppendBinary(v Binary) error
	AppendObjectID(v ObjectID) error
	AppendBool(v bool) error
	AppendTime(v time.Time) error
	AppendNull() error
	AppendRegex(pattern, options string) error
	AppendInt32(v int32) error
	AppendTimestamp(v Timestamp) error
	AppendInt64(v int64) error
	AppendDecimal128(v Decimal128) error
	AppendSymbol(v Symbol) error
	AppendJavaScript(v JavaScript) error
	AppendCodeWithScope(v CodeWithScope) error
	AppendDBPointer(v DBPointer) error
	AppendUndefined() error
	AppendMinKey() error
	AppendMaxKey() error
}

// AppendDouble implements [ValueWriter].
func (arr *Array) AppendDouble(v float64) error { return arr.Add(v) }

// AppendString implements [ValueWriter].
func (arr *Array) AppendString(v string) error { return arr.Add(v) }

// AppendDocument implements [ValueWriter].
func (arr *Array) AppendDocument(v *Document) error { return arr.Add(v) }

// AppendArray implements [ValueWriter].
func (arr *Array) AppendArray(v *Array) error { return arr.Add(v) }

// AppendBinary implements [ValueWriter].
func (arr *Array) AppendBinary(v Binary) error { return arr.Add(v) }

// AppendObjectID implements [ValueWriter].
func (arr *Array) AppendObjectID(v ObjectID) error { return arr.Add(v) }

// AppendBool implements [ValueWriter].
func (arr *Array) AppendBool(v bool) error { return arr.Add(v) }

// AppendTime implements [ValueWriter].
func (arr *Array) AppendTime(v time.Time) error { return arr.Add(v) }

// AppendNull implements [ValueWriter].
func (arr *Array) AppendNull() error { return arr.Add(Null) }

// AppendRegex implements [ValueWriter].
// Option flags are canonicalized; see [NewRegex].
func (arr *Array) AppendRegex(pattern, options string) error {
	return arr.Add(NewRegex(pattern, options))
}

// AppendInt32 implements [ValueWriter].
func (arr *Array) AppendInt32(v int32) error { return arr.Add(v) }

// AppendTimestamp implements [ValueWriter].
func (arr *Array) AppendTimestamp(v Timestamp) error { return arr.Add(v) }

// AppendInt64 implements [ValueWriter].
func (arr *Array) AppendInt64(v int64) error { return arr.Add(v) }

// AppendDecimal128 implements [ValueWriter].
func (arr *Array) AppendDecimal128(v Decimal128) error { return arr.Add(v) }

// AppendSymbol implements [ValueWriter].
func (arr *Array) AppendSymbol(v Symbol) error { return arr.Add(v) }

// AppendJavaScript implements [ValueWriter].
func (arr *Array) AppendJavaScript(v JavaScript) error { return arr.Add(v) }

// AppendCodeWithScope implements [ValueWriter].
func (arr *Array) AppendCodeWithScope(v CodeWithScope) error { return arr.Add(v) }

// AppendDBPointer implements [ValueWriter].
func (arr *Array) AppendDBPointer(v DBPointer) error { return arr.Add(v) }

// AppendUndefined implements [ValueWriter].
func (arr *Array) AppendUndefined() error { return arr.Add(Undefined) }

// AppendMinKey implements [ValueWriter].
func (arr *Array) AppendMinKey() error { return arr.Add(MinKey) }

// AppendMaxKey implements [ValueWriter].
func (arr *Array) AppendMaxKey() error { return arr.Add(MaxKey) }

// check interfaces
var (
	_ FieldWriter = (*Document)(nil)
	_ ValueWriter = (*Array)(nil)
)
