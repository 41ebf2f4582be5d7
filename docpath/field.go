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

package docpath

import "log/slog"

// Field is a typed address of a value inside a document of type Root.
//
// Root and Value are phantom type parameters: they carry no runtime data
// and exist so that field composition is checked at compile time.
// The untyped [Path] underneath has no such checks and remains available
// as an escape hatch for dynamic field construction.
//
// Fields are immutable; composition returns new values.
type Field[Root, Value any] struct {
	path Path
}

// RootField returns the field addressing the document itself.
func RootField[T any]() Field[T, T] {
	return Field[T, T]{}
}

// FieldAt creates a typed field over an arbitrary path without any
// compile-time relation between Root, Value, and the path.
// Callers are responsible for the path actually pointing at a Value.
func FieldAt[Root, Value any](p Path) Field[Root, Value] {
	return Field[Root, Value]{path: p}
}

// Child appends a field name segment and narrows the pointed-to type to Child.
//
// It is a free function because Go methods cannot introduce type parameters.
func Child[Root, Value, ChildValue any](f Field[Root, Value], name string) Field[Root, ChildValue] {
	return Field[Root, ChildValue]{path: f.path.Push(Key(name))}
}

// At appends an array index segment to a field pointing at a sequence of Elem.
func At[Root, Elem any](f Field[Root, []Elem], i int32) Field[Root, Elem] {
	return Field[Root, Elem]{path: f.path.Push(Index(i))}
}

// AnyElement appends a wildcard segment to a field pointing at a sequence of Elem.
func AnyElement[Root, Elem any](f Field[Root, []Elem]) Field[Root, Elem] {
	return Field[Root, Elem]{path: f.path.Push(Wildcard())}
}

// Path returns the untyped path underneath.
func (f Field[Root, Value]) Path() Path {
	return f.path
}

// Equal reports whether two fields of the same type address the same value.
func (f Field[Root, Value]) Equal(other Field[Root, Value]) bool {
	return f.path.Equal(other.path)
}

// String returns the plain dotted form without the `$` root,
// as used in wire documents: `children.0.name`.
func (f Field[Root, Value]) String() string {
	return f.path.Dotted()
}

// LogValue implements [slog.LogValuer].
func (f Field[Root, Value]) LogValue() slog.Value {
	return slog.StringValue(f.String())
}
