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

package query

import (
	"log/slog"

	"github.com/mongokit/mongokit/internal/util/lazyerrors"
	"github.com/mongokit/mongokit/wirebson"
)

// Filter is the root of a filter expression tree.
//
// An empty filter renders to `{}`; a filter with one predicate renders to
// that predicate alone; two or more predicates are wrapped into an
// implicit `$and`.
type Filter struct {
	children []Node
	frozen   bool
}

// NewFilter creates an empty filter.
func NewFilter() *Filter {
	return new(Filter)
}

// Accept implements [CompoundNode].
func (f *Filter) Accept(child Node) error {
	if f.frozen {
		return lazyerrors.Errorf("filter: %w", ErrFrozen)
	}

	f.children = acceptInto(f.children, child)

	return nil
}

// Simplify implements [Node].
func (f *Filter) Simplify() Node {
	switch len(f.children) {
	case 0:
		return nil
	case 1:
		return f.children[0]
	default:
		return &logical{op: "$and", children: f.children, unwrapSingle: true, frozen: f.frozen}
	}
}

// WriteTo implements [Node].
//
// It writes the simplified form, so the implicit $and of a multi-predicate
// filter appears here exactly as in the encoded document.
func (f *Filter) WriteTo(doc *wirebson.Document) error {
	n := f.Simplify()
	if n == nil {
		return nil
	}

	if err := n.WriteTo(doc); err != nil {
		return lazyerrors.Error(err)
	}

	return nil
}

func (f *Filter) freeze() { f.frozen = true }

// Document renders the filter into a wire document.
//
// The filter is frozen by the first call; later Accept calls fail.
// Rendering may be repeated and is safe for concurrent use once frozen.
func (f *Filter) Document() (*wirebson.Document, error) {
	f.frozen = true

	doc, err := render(f)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return doc, nil
}

// Encode renders the filter into wire bytes.
func (f *Filter) Encode() (wirebson.RawDocument, error) {
	doc, err := f.Document()
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	raw, err := doc.Encode()
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return raw, nil
}

// LogValue implements [slog.LogValuer].
func (f *Filter) LogValue() slog.Value {
	doc, err := writeChild(f)
	if err != nil {
		return slog.StringValue("<" + err.Error() + ">")
	}

	return doc.LogValue()
}

// logical is an array-valued logical operator: $and, $or, $nor.
type logical struct {
	op           string
	children     []Node
	unwrapSingle bool
	frozen       bool
}

// And combines predicates with $and.
// A single-predicate $and unwraps to the bare predicate;
// an empty one vanishes from the parent.
func And(children ...Node) CompoundNode {
	n := &logical{op: "$and", unwrapSingle: true}
	for _, child := range children {
		n.children = acceptInto(n.children, child)
	}

	return n
}

// Or combines predicates with $or, with the same unwrapping as [And].
func Or(children ...Node) CompoundNode {
	n := &logical{op: "$or", unwrapSingle: true}
	for _, child := range children {
		n.children = acceptInto(n.children, child)
	}

	return n
}

// Nor combines predicates with $nor.
//
// Unlike $and and $or, a single-predicate $nor stays wrapped:
// unwrapping would negate the predicate's meaning.
// An empty $nor still vanishes.
func Nor(children ...Node) CompoundNode {
	n := &logical{op: "$nor"}
	for _, child := range children {
		n.children = acceptInto(n.children, child)
	}

	return n
}

// Accept implements [CompoundNode].
func (n *logical) Accept(child Node) error {
	if n.frozen {
		return lazyerrors.Errorf("%s: %w", n.op, ErrFrozen)
	}

	n.children = acceptInto(n.children, child)

	return nil
}

// Simplify implements [Node].
func (n *logical) Simplify() Node {
	switch {
	case len(n.children) == 0:
		return nil
	case len(n.children) == 1 && n.unwrapSingle:
		return n.children[0]
	default:
		return n
	}
}

// WriteTo implements [Node].
func (n *logical) WriteTo(doc *wirebson.Document) error {
	arr := wirebson.MakeArray(len(n.children))

	for _, child := range n.children {
		sub, err := writeChild(child)
		if err != nil {
			return lazyerrors.Error(err)
		}

		if err = arr.Add(sub); err != nil {
			return lazyerrors.Error(err)
		}
	}

	return doc.Add(n.op, arr)
}

func (n *logical) freeze() { n.frozen = true }

// predicate is a single field predicate: {field: {op1: v1, op2: v2, ...}}.
//
// An invalid value (such as an untyped Go int) is recorded in err
// and surfaces when the tree is rendered.
type predicate struct {
	err    error
	ops    *wirebson.Document
	field  string
	frozen bool
}

// newPredicate creates a field predicate with a single operator.
func newPredicate(field, op string, value any) *predicate {
	ops := wirebson.MakeDocument(1)
	err := ops.Add(op, value)

	return &predicate{field: field, ops: ops, err: err}
}

// Simplify implements [Node].
func (n *predicate) Simplify() Node {
	// a recorded construction error must surface on render,
	// so the node is kept even with no operators
	if n.err == nil && n.ops.Len() == 0 {
		return nil
	}

	return n
}

// WriteTo implements [Node].
func (n *predicate) WriteTo(doc *wirebson.Document) error {
	if n.err != nil {
		return lazyerrors.Error(n.err)
	}

	return doc.Add(n.field, n.ops)
}

func (n *predicate) freeze() { n.frozen = true }

// Eq matches values equal to the given one: {field: {"$eq": value}}.
func Eq(field string, value any) Node { return newPredicate(field, "$eq", value) }

// Ne matches values not equal to the given one.
func Ne(field string, value any) Node { return newPredicate(field, "$ne", value) }

// Gt matches values greater than the given one.
func Gt(field string, value any) Node { return newPredicate(field, "$gt", value) }

// Gte matches values greater than or equal to the given one.
func Gte(field string, value any) Node { return newPredicate(field, "$gte", value) }

// Lt matches values less than the given one.
func Lt(field string, value any) Node { return newPredicate(field, "$lt", value) }

// Lte matches values less than or equal to the given one.
func Lte(field string, value any) Node { return newPredicate(field, "$lte", value) }

// In matches values equal to any of the given ones.
func In(field string, values ...any) Node { return newArrayPredicate(field, "$in", values) }

// Nin matches values equal to none of the given ones.
func Nin(field string, values ...any) Node { return newArrayPredicate(field, "$nin", values) }

// Exists matches documents that do (or do not) contain the field.
func Exists(field string, exists bool) Node { return newPredicate(field, "$exists", exists) }

// Type matches values of the BSON type with the given name,
// such as "int" or "object"; see [wirebson.TypeName].
func Type(field, typeName string) Node { return newPredicate(field, "$type", typeName) }

// Size matches arrays with exactly the given number of elements.
func Size(field string, size int32) Node { return newPredicate(field, "$size", size) }

// All matches arrays containing all the given values.
func All(field string, values ...any) Node { return newArrayPredicate(field, "$all", values) }

// BitsAllSet matches numeric values with all mask bits set.
// The mask is int32, int64, or a binary value.
func BitsAllSet(field string, mask any) Node { return newPredicate(field, "$bitsAllSet", mask) }

// BitsAllClear matches numeric values with all mask bits clear.
func BitsAllClear(field string, mask any) Node { return newPredicate(field, "$bitsAllClear", mask) }

// BitsAnySet matches numeric values with any mask bit set.
func BitsAnySet(field string, mask any) Node { return newPredicate(field, "$bitsAnySet", mask) }

// BitsAnyClear matches numeric values with any mask bit clear.
func BitsAnyClear(field string, mask any) Node { return newPredicate(field, "$bitsAnyClear", mask) }

// newArrayPredicate creates a field predicate whose operator value is an
// array of the given values. An invalid element is recorded like
// [newPredicate] records an invalid value and surfaces on render.
func newArrayPredicate(field, op string, values []any) *predicate {
	arr := wirebson.MakeArray(len(values))
	for _, v := range values {
		if err := arr.Add(v); err != nil {
			return &predicate{field: field, ops: wirebson.MakeDocument(0), err: lazyerrors.Error(err)}
		}
	}

	return newPredicate(field, op, arr)
}

// not wraps the predicates of a single field with $not:
// {field: {"$not": {...}}}.
type not struct {
	field    string
	children []Node
	frozen   bool
}

// Not negates field predicates: Not("age", Gt(...), Lt(...)) renders
// {"age": {"$not": {"$gt": ..., "$lt": ...}}}.
// With no predicates the node vanishes from the parent.
func Not(field string, children ...Node) CompoundNode {
	n := &not{field: field}
	for _, child := range children {
		n.children = acceptInto(n.children, child)
	}

	return n
}

// Accept implements [CompoundNode].
func (n *not) Accept(child Node) error {
	if n.frozen {
		return lazyerrors.Errorf("$not: %w", ErrFrozen)
	}

	n.children = acceptInto(n.children, child)

	return nil
}

// Simplify implements [Node].
func (n *not) Simplify() Node {
	if len(n.children) == 0 {
		return nil
	}

	return n
}

// WriteTo implements [Node].
func (n *not) WriteTo(doc *wirebson.Document) error {
	inner := wirebson.MakeDocument(len(n.children))

	for _, child := range n.children {
		ops, err := opsOf(child)
		if err != nil {
			return lazyerrors.Error(err)
		}

		for i := 0; i < ops.Len(); i++ {
			name, value := ops.GetByIndex(i)
			if err = inner.Add(name, value); err != nil {
				return lazyerrors.Error(err)
			}
		}
	}

	sub := wirebson.MakeDocument(1)
	if err := sub.Add("$not", inner); err != nil {
		return lazyerrors.Error(err)
	}

	return doc.Add(n.field, sub)
}

func (n *not) freeze() { n.frozen = true }

// opsOf extracts the operator document of a field predicate.
func opsOf(child Node) (*wirebson.Document, error) {
	p, ok := child.(*predicate)
	if !ok {
		return nil, lazyerrors.Errorf("$not accepts field predicates only, got %T", child)
	}

	if p.err != nil {
		return nil, lazyerrors.Error(p.err)
	}

	return p.ops, nil
}

// elemMatch matches array elements against a nested filter:
// {field: {"$elemMatch": {...}}}.
type elemMatch struct {
	field    string
	children []Node
	frozen   bool
}

// ElemMatch matches arrays with at least one element satisfying all
// the given predicates. Predicates on the same element field merge into
// a single operator document, so the rendered form never contains
// duplicate keys.
func ElemMatch(field string, children ...Node) CompoundNode {
	n := &elemMatch{field: field}
	for _, child := range children {
		n.children = acceptInto(n.children, child)
	}

	return n
}

// Accept implements [CompoundNode].
func (n *elemMatch) Accept(child Node) error {
	if n.frozen {
		return lazyerrors.Errorf("$elemMatch: %w", ErrFrozen)
	}

	n.children = acceptInto(n.children, child)

	return nil
}

// Simplify implements [Node].
func (n *elemMatch) Simplify() Node {
	return n
}

// WriteTo implements [Node].
func (n *elemMatch) WriteTo(doc *wirebson.Document) error {
	// group predicate operators per element field first,
	// keeping the order of the first occurrence
	merged := make(map[string]*wirebson.Document, len(n.children))

	for _, child := range n.children {
		p, ok := child.(*predicate)
		if !ok {
			continue
		}

		if p.err != nil {
			return lazyerrors.Error(p.err)
		}

		ops := merged[p.field]
		if ops == nil {
			ops = wirebson.MakeDocument(p.ops.Len())
			merged[p.field] = ops
		}

		for i := 0; i < p.ops.Len(); i++ {
			name, value := p.ops.GetByIndex(i)
			if err := ops.Add(name, value); err != nil {
				return lazyerrors.Error(err)
			}
		}
	}

	inner := wirebson.MakeDocument(len(n.children))
	written := make(map[string]bool, len(merged))

	for _, child := range n.children {
		p, ok := child.(*predicate)
		if !ok {
			if err := child.WriteTo(inner); err != nil {
				return lazyerrors.Error(err)
			}

			continue
		}

		if written[p.field] {
			continue
		}
		written[p.field] = true

		if err := inner.Add(p.field, merged[p.field]); err != nil {
			return lazyerrors.Error(err)
		}
	}

	sub := wirebson.MakeDocument(1)
	if err := sub.Add("$elemMatch", inner); err != nil {
		return lazyerrors.Error(err)
	}

	return doc.Add(n.field, sub)
}

func (n *elemMatch) freeze() { n.frozen = true }

// check interfaces
var (
	_ CompoundNode   = (*Filter)(nil)
	_ CompoundNode   = (*logical)(nil)
	_ CompoundNode   = (*not)(nil)
	_ CompoundNode   = (*elemMatch)(nil)
	_ Node           = (*predicate)(nil)
	_ slog.LogValuer = (*Filter)(nil)
)
