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
	"github.com/mongokit/mongokit/internal/util/lazyerrors"
	"github.com/mongokit/mongokit/wirebson"
)

// Update is the root of an update expression tree.
//
// Accepted operator nodes targeting the same operator merge into a single
// document, so Set("a", ...) and Set("b", ...) render as one
// {"$set": {"a": ..., "b": ...}}. Operators keep the order of their
// first occurrence.
type Update struct {
	children []Node
	frozen   bool
}

// NewUpdate creates an empty update.
func NewUpdate() *Update {
	return new(Update)
}

// Accept implements [CompoundNode].
func (u *Update) Accept(child Node) error {
	if u.frozen {
		return lazyerrors.Errorf("update: %w", ErrFrozen)
	}

	before := len(u.children)
	u.children = acceptInto(u.children, child)

	if len(u.children) == before {
		return nil
	}

	added, ok := u.children[len(u.children)-1].(*updateOp)
	if !ok {
		return nil
	}

	// merge into an earlier node for the same operator
	for _, existing := range u.children[:len(u.children)-1] {
		e, ok := existing.(*updateOp)
		if !ok || e.op != added.op {
			continue
		}

		if err := e.merge(added); err != nil {
			return lazyerrors.Error(err)
		}

		u.children = u.children[:len(u.children)-1]
		break
	}

	return nil
}

// Simplify implements [Node].
func (u *Update) Simplify() Node {
	if len(u.children) == 0 {
		return nil
	}

	return u
}

// WriteTo implements [Node].
func (u *Update) WriteTo(doc *wirebson.Document) error {
	for _, child := range u.children {
		if err := child.WriteTo(doc); err != nil {
			return lazyerrors.Error(err)
		}
	}

	return nil
}

func (u *Update) freeze() { u.frozen = true }

// Document renders the update into a wire document.
// The update is frozen by the first call.
func (u *Update) Document() (*wirebson.Document, error) {
	u.frozen = true

	doc, err := render(u)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return doc, nil
}

// Encode renders the update into wire bytes.
func (u *Update) Encode() (wirebson.RawDocument, error) {
	doc, err := u.Document()
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	raw, err := doc.Encode()
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return raw, nil
}

// updateOp is a single update operator with its field assignments:
// {"$set": {"a": 1, "b": 2}}.
type updateOp struct {
	err    error
	fields *wirebson.Document
	op     string
	frozen bool
}

func newUpdateOp(op, field string, value any) *updateOp {
	fields := wirebson.MakeDocument(1)
	err := fields.Add(field, value)

	return &updateOp{op: op, fields: fields, err: err}
}

// merge appends other's field assignments.
// Merging happens during Update construction, before this node's freeze
// is observable by the caller.
func (n *updateOp) merge(other *updateOp) error {
	if other.err != nil {
		return lazyerrors.Error(other.err)
	}

	for i := 0; i < other.fields.Len(); i++ {
		name, value := other.fields.GetByIndex(i)
		if err := n.fields.Add(name, value); err != nil {
			return lazyerrors.Error(err)
		}
	}

	return nil
}

// Simplify implements [Node].
func (n *updateOp) Simplify() Node {
	if n.err == nil && n.fields.Len() == 0 {
		return nil
	}

	return n
}

// WriteTo implements [Node].
func (n *updateOp) WriteTo(doc *wirebson.Document) error {
	if n.err != nil {
		return lazyerrors.Error(n.err)
	}

	return doc.Add(n.op, n.fields)
}

func (n *updateOp) freeze() { n.frozen = true }

// Set assigns the value to the field: {"$set": {field: value}}.
func Set(field string, value any) Node { return newUpdateOp("$set", field, value) }

// SetOnInsert assigns the value only when an upsert inserts a document.
func SetOnInsert(field string, value any) Node { return newUpdateOp("$setOnInsert", field, value) }

// Unset removes the field: {"$unset": {field: ""}}.
func Unset(field string) Node { return newUpdateOp("$unset", field, "") }

// Inc increments the field by the given amount.
// The amount is int32, int64, float64, or Decimal128.
func Inc(field string, amount any) Node { return newUpdateOp("$inc", field, amount) }

// Mul multiplies the field by the given amount.
func Mul(field string, amount any) Node { return newUpdateOp("$mul", field, amount) }

// Min assigns the value if it is less than the field's current value.
func Min(field string, value any) Node { return newUpdateOp("$min", field, value) }

// Max assigns the value if it is greater than the field's current value.
func Max(field string, value any) Node { return newUpdateOp("$max", field, value) }

// Rename changes the field's name.
func Rename(field, newName string) Node { return newUpdateOp("$rename", field, newName) }

// CurrentDate assigns the current date to the field:
// {"$currentDate": {field: true}}.
func CurrentDate(field string) Node { return newUpdateOp("$currentDate", field, true) }

// CurrentDateTyped assigns the current instant to the field as the BSON type
// with the given name, "date" or "timestamp":
// {"$currentDate": {field: {"$type": "timestamp"}}}.
func CurrentDateTyped(field, typeName string) Node {
	typ := wirebson.MakeDocument(1)
	err := typ.Add("$type", typeName)

	fields := wirebson.MakeDocument(1)
	if err == nil {
		err = fields.Add(field, typ)
	}

	return &updateOp{op: "$currentDate", fields: fields, err: err}
}

// check interfaces
var (
	_ CompoundNode = (*Update)(nil)
	_ Node         = (*updateOp)(nil)
)
