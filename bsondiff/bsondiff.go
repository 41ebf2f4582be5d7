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

// Package bsondiff compares BSON values structurally and renders
// a human-readable divergence report.
//
// Equality is exact: values of different BSON types are never equal,
// so int32(2) differs from int64(2). The report annotates such numeric
// type changes explicitly.
package bsondiff

import (
	"fmt"
	"strings"
	"time"

	"github.com/mongokit/mongokit/docpath"
	"github.com/mongokit/mongokit/wirebson"
)

// Equal reports whether two BSON values are structurally equal.
//
// Documents are equal when they have the same fields with equal values
// in the same order; arrays when they have equal elements in order.
// Numeric values of different BSON types are not equal.
// Raw documents and arrays are decoded before comparison,
// so a *Document and a RawDocument with the same fields are equal.
func Equal(a, b any) bool {
	return equal(normalize(a), normalize(b))
}

// Diff compares two BSON values and returns a report of their differences.
//
// It returns the empty string if and only if [Equal] reports true.
//
// Scalar changes produce a two-line report:
//
//	✗ $.age: 18
//	     19
//
// Fields present on one side only render `(field not present)` on the other.
// Unchanged sibling fields of a changed field are listed with a ✓ prefix
// to give positional context.
func Diff(a, b any) string {
	var sb strings.Builder
	diffValue(&sb, docpath.NewPath(), normalize(a), normalize(b), false)
	return sb.String()
}

// normalize decodes raw documents and arrays so that the walk below
// only sees decoded forms. Undecodable raw values are kept as is
// and compared byte-wise.
func normalize(v any) any {
	switch v := v.(type) {
	case wirebson.RawDocument:
		doc, err := v.DecodeDeep()
		if err != nil {
			return v
		}

		return doc

	case wirebson.RawArray:
		arr, err := v.DecodeDeep()
		if err != nil {
			return v
		}

		return arr

	default:
		return v
	}
}

func equal(a, b any) bool {
	switch a := a.(type) {
	case *wirebson.Document:
		b, ok := b.(*wirebson.Document)
		if !ok || a.Len() != b.Len() {
			return false
		}

		for i := 0; i < a.Len(); i++ {
			aName, aValue := a.GetByIndex(i)
			bName, bValue := b.GetByIndex(i)

			if aName != bName || !equal(normalize(aValue), normalize(bValue)) {
				return false
			}
		}

		return true

	case *wirebson.Array:
		b, ok := b.(*wirebson.Array)
		if !ok || a.Len() != b.Len() {
			return false
		}

		for i := 0; i < a.Len(); i++ {
			if !equal(normalize(a.Get(i)), normalize(b.Get(i))) {
				return false
			}
		}

		return true

	case wirebson.RawDocument:
		b, ok := b.(wirebson.RawDocument)
		return ok && string(a) == string(b)

	case wirebson.RawArray:
		b, ok := b.(wirebson.RawArray)
		return ok && string(a) == string(b)

	case wirebson.Binary:
		b, ok := b.(wirebson.Binary)
		return ok && a.Subtype == b.Subtype && string(a.B) == string(b.B)

	case wirebson.CodeWithScope:
		b, ok := b.(wirebson.CodeWithScope)
		return ok && a.Code == b.Code && string(a.Scope) == string(b.Scope)

	case time.Time:
		b, ok := b.(time.Time)
		return ok && a.Equal(b)

	default:
		// scalars of comparable types
		return a == b
	}
}

// diffValue appends the report for a single value pair at the given path.
//
// withContext makes unchanged values render with a ✓ prefix;
// it is set when a sibling under the same parent has changed.
func diffValue(sb *strings.Builder, path docpath.Path, a, b any, withContext bool) {
	aDoc, aIsDoc := a.(*wirebson.Document)
	bDoc, bIsDoc := b.(*wirebson.Document)

	if aIsDoc && bIsDoc {
		diffDocuments(sb, path, aDoc, bDoc)
		return
	}

	aArr, aIsArr := a.(*wirebson.Array)
	bArr, bIsArr := b.(*wirebson.Array)

	if aIsArr && bIsArr {
		diffArrays(sb, path, aArr, bArr)
		return
	}

	if equal(a, b) {
		if withContext {
			fmt.Fprintf(sb, "✓ %s: %s\n", path, repr(a, b))
		}

		return
	}

	fmt.Fprintf(sb, "✗ %s: %s\n     %s\n", path, repr(a, b), repr(b, a))
}

// diffDocuments recurses per key, preserving a's field order
// and appending b-only fields after.
func diffDocuments(sb *strings.Builder, path docpath.Path, a, b *wirebson.Document) {
	changed := documentsDiffer(a, b)

	for _, name := range a.FieldNames() {
		p := path.Push(docpath.Key(name))
		av := normalize(a.Get(name))

		bv, ok := b.Lookup(name)
		if !ok {
			fmt.Fprintf(sb, "✗ %s: %s\n     (field not present)\n", p, repr(av, nil))
			continue
		}

		diffValue(sb, p, av, normalize(bv), changed)
	}

	for _, name := range b.FieldNames() {
		if _, ok := a.Lookup(name); ok {
			continue
		}

		p := path.Push(docpath.Key(name))
		fmt.Fprintf(sb, "✗ %s: (field not present)\n     %s\n", p, repr(normalize(b.Get(name)), nil))
	}
}

// diffArrays recurses per index using the same logic as document keys,
// reporting out-of-range indices as not present.
func diffArrays(sb *strings.Builder, path docpath.Path, a, b *wirebson.Array) {
	changed := !equal(a, b)

	for i := 0; i < a.Len(); i++ {
		p := path.Push(docpath.Index(int32(i)))
		av := normalize(a.Get(i))

		if i >= b.Len() {
			fmt.Fprintf(sb, "✗ %s: %s\n     (field not present)\n", p, repr(av, nil))
			continue
		}

		diffValue(sb, p, av, normalize(b.Get(i)), changed)
	}

	for i := a.Len(); i < b.Len(); i++ {
		p := path.Push(docpath.Index(int32(i)))
		fmt.Fprintf(sb, "✗ %s: (field not present)\n     %s\n", p, repr(normalize(b.Get(i)), nil))
	}
}

// documentsDiffer is equal's negation over documents,
// used to decide whether unchanged siblings need the ✓ context.
func documentsDiffer(a, b *wirebson.Document) bool {
	return !equal(a, b)
}

// repr renders a value for the report.
// When the other side is a numeric value of a different BSON type,
// the rendering is prefixed with the type name to make the change visible.
func repr(v, other any) string {
	s := wirebson.StringValue(v)

	if other == nil {
		return s
	}

	if numericTypeChanged(v, other) {
		return wirebson.TypeName(v) + " value " + s
	}

	return s
}

// numericTypeChanged reports whether v and other are both numeric
// but of different BSON types.
func numericTypeChanged(v, other any) bool {
	if !isNumeric(v) || !isNumeric(other) {
		return false
	}

	return wirebson.TypeName(v) != wirebson.TypeName(other)
}

func isNumeric(v any) bool {
	switch v.(type) {
	case float64, int32, int64, wirebson.Decimal128:
		return true
	default:
		return false
	}
}
