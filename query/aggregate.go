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
	"github.com/mongokit/mongokit/docpath"
	"github.com/mongokit/mongokit/internal/util/lazyerrors"
	"github.com/mongokit/mongokit/wirebson"
)

// Expr is an aggregation value expression.
//
// Value returns the BSON value the expression renders to inside an
// aggregation document: a scalar, a "$path" field reference string,
// or an operator document such as {"$add": [...]}.
type Expr interface {
	Value() (any, error)
}

// constant renders a BSON value as itself.
type constant struct {
	v any
}

// Constant is a plain value expression.
// Numeric types are preserved exactly; untyped Go ints are rejected on render.
func Constant(v any) Expr {
	return constant{v: v}
}

// Value implements [Expr].
func (e constant) Value() (any, error) {
	if err := checkValue(e.v); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return e.v, nil
}

// literal renders {"$literal": value}, shielding the value from
// operator interpretation.
type literal struct {
	v any
}

// Literal is a value expression that is never interpreted as an operator
// or a field reference, even if it looks like one.
func Literal(v any) Expr {
	return literal{v: v}
}

// Value implements [Expr].
func (e literal) Value() (any, error) {
	if err := checkValue(e.v); err != nil {
		return nil, lazyerrors.Error(err)
	}

	doc := wirebson.MakeDocument(1)
	if err := doc.Add("$literal", e.v); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return doc, nil
}

// fieldRef renders a "$path" field reference string.
type fieldRef struct {
	path docpath.Path
}

// FieldRef references the value of a document field by path,
// rendered as a "$dotted.path" string.
func FieldRef(path docpath.Path) Expr {
	return fieldRef{path: path}
}

// FieldRefName references the value of a document field by its dotted name.
func FieldRefName(name string) Expr {
	return fieldRef{path: docpath.NewPath(docpath.Key(name))}
}

// Value implements [Expr].
func (e fieldRef) Value() (any, error) {
	return "$" + e.path.Dotted(), nil
}

// arrayOp renders {"$op": [operand, ...]}.
type arrayOp struct {
	op       string
	operands []Expr
}

// Add sums numbers, or adds numbers to a date.
func Add(operands ...Expr) Expr {
	return arrayOp{op: "$add", operands: operands}
}

// Multiply multiplies numbers.
func Multiply(operands ...Expr) Expr {
	return arrayOp{op: "$multiply", operands: operands}
}

// Value implements [Expr].
func (e arrayOp) Value() (any, error) {
	arr := wirebson.MakeArray(len(e.operands))

	for _, operand := range e.operands {
		v, err := operand.Value()
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		if err = arr.Add(v); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	doc := wirebson.MakeDocument(1)
	if err := doc.Add(e.op, arr); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return doc, nil
}

// unaryOp renders {"$op": operand}.
type unaryOp struct {
	op      string
	operand Expr
}

// Abs is the absolute value of a number.
func Abs(operand Expr) Expr {
	return unaryOp{op: "$abs", operand: operand}
}

// Value implements [Expr].
func (e unaryOp) Value() (any, error) {
	v, err := e.operand.Value()
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	doc := wirebson.MakeDocument(1)
	if err = doc.Add(e.op, v); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return doc, nil
}

// cond renders {"$cond": {"if": ..., "then": ..., "else": ...}}.
type cond struct {
	ifExpr   Expr
	thenExpr Expr
	elseExpr Expr
}

// Cond evaluates thenExpr or elseExpr depending on a boolean condition.
func Cond(ifExpr, thenExpr, elseExpr Expr) Expr {
	return cond{ifExpr: ifExpr, thenExpr: thenExpr, elseExpr: elseExpr}
}

// Value implements [Expr].
func (e cond) Value() (any, error) {
	inner := wirebson.MakeDocument(3)

	for _, p := range []struct {
		name string
		expr Expr
	}{
		{"if", e.ifExpr},
		{"then", e.thenExpr},
		{"else", e.elseExpr},
	} {
		v, err := p.expr.Value()
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		if err = inner.Add(p.name, v); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	doc := wirebson.MakeDocument(1)
	if err := doc.Add("$cond", inner); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return doc, nil
}

// Branch is a single case of a [Switch] expression.
type Branch struct {
	Case Expr
	Then Expr
}

// switchExpr renders {"$switch": {"branches": [...], "default": ...}}.
type switchExpr struct {
	deflt    Expr
	branches []Branch
}

// Switch evaluates the first branch whose Case is true,
// falling back to the default expression. A nil default omits the
// "default" key, making an unmatched input a runtime server error.
func Switch(deflt Expr, branches ...Branch) Expr {
	return switchExpr{deflt: deflt, branches: branches}
}

// Value implements [Expr].
func (e switchExpr) Value() (any, error) {
	arr := wirebson.MakeArray(len(e.branches))

	for _, b := range e.branches {
		caseV, err := b.Case.Value()
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		thenV, err := b.Then.Value()
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		branch := wirebson.MakeDocument(2)
		if err = branch.Add("case", caseV); err != nil {
			return nil, lazyerrors.Error(err)
		}
		if err = branch.Add("then", thenV); err != nil {
			return nil, lazyerrors.Error(err)
		}

		if err = arr.Add(branch); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	inner := wirebson.MakeDocument(2)
	if err := inner.Add("branches", arr); err != nil {
		return nil, lazyerrors.Error(err)
	}

	if e.deflt != nil {
		v, err := e.deflt.Value()
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		if err = inner.Add("default", v); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	doc := wirebson.MakeDocument(1)
	if err := doc.Add("$switch", inner); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return doc, nil
}

// checkValue validates a BSON value by adding it to a scratch document.
func checkValue(v any) error {
	scratch := wirebson.MakeDocument(1)
	if err := scratch.Add("v", v); err != nil {
		return lazyerrors.Error(err)
	}

	return nil
}
