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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongokit/mongokit/wirebson"
)

// renderFilter builds a filter from the given nodes and renders it.
func renderFilter(t *testing.T, children ...Node) *wirebson.Document {
	t.Helper()

	f := NewFilter()
	for _, child := range children {
		require.NoError(t, f.Accept(child))
	}

	doc, err := f.Document()
	require.NoError(t, err)

	return doc
}

func TestFilterEmpty(t *testing.T) {
	t.Parallel()

	doc := renderFilter(t)
	assert.Equal(t, `{}`, doc.String())
}

func TestFilterSinglePredicate(t *testing.T) {
	t.Parallel()

	doc := renderFilter(t, Eq("age", int64(18)))
	assert.Equal(t, `{"age": {"$eq": 18}}`, doc.String())
}

func TestFilterImplicitAnd(t *testing.T) {
	t.Parallel()

	doc := renderFilter(t,
		Gt("age", int32(18)),
		Eq("isAlive", true),
	)

	expected := `{"$and": [{"age": {"$gt": 18}}, {"isAlive": {"$eq": true}}]}`
	assert.Equal(t, expected, doc.String())
}

func TestAndUnwrapsSingleChild(t *testing.T) {
	t.Parallel()

	// and { age eq 18 } serializes to the bare predicate
	doc := renderFilter(t, And(Eq("age", int64(18))))
	assert.Equal(t, `{"age": {"$eq": 18}}`, doc.String())

	doc = renderFilter(t, Or(Eq("age", int64(18))))
	assert.Equal(t, `{"age": {"$eq": 18}}`, doc.String())
}

func TestEmptyLogicalCollapse(t *testing.T) {
	t.Parallel()

	// empty logical operators vanish entirely
	assert.Equal(t, `{}`, renderFilter(t, And()).String())
	assert.Equal(t, `{}`, renderFilter(t, Or()).String())
	assert.Equal(t, `{}`, renderFilter(t, Nor()).String())
}

func TestNorStaysWrapped(t *testing.T) {
	t.Parallel()

	// $nor must not unwrap a single child: that would flip its meaning
	doc := renderFilter(t, Nor(Eq("age", int64(18))))
	assert.Equal(t, `{"$nor": [{"age": {"$eq": 18}}]}`, doc.String())
}

func TestAndOfMany(t *testing.T) {
	t.Parallel()

	doc := renderFilter(t, And(
		Gte("age", int32(18)),
		Lt("age", int32(65)),
	))

	expected := `{"$and": [{"age": {"$gte": 18}}, {"age": {"$lt": 65}}]}`
	assert.Equal(t, expected, doc.String())
}

func TestSimplifyIdempotent(t *testing.T) {
	t.Parallel()

	nodes := []Node{
		Eq("a", int32(1)),
		And(Eq("a", int32(1)), Eq("b", int32(2))),
		Or(Eq("a", int32(1))),
		Nor(Eq("a", int32(1))),
		Not("a", Eq("a", int32(1))),
		ElemMatch("a", Gt("b", int32(1))),
	}

	for _, n := range nodes {
		once := n.Simplify()
		require.NotNil(t, once)
		assert.Same(t, once, once.Simplify())
	}
}

func TestNotCollapse(t *testing.T) {
	t.Parallel()

	// $not with nothing inside contributes nothing
	assert.Equal(t, `{}`, renderFilter(t, Not("age")).String())

	doc := renderFilter(t, Not("age", Gt("age", int32(65))))
	assert.Equal(t, `{"age": {"$not": {"$gt": 65}}}`, doc.String())
}

func TestElemMatch(t *testing.T) {
	t.Parallel()

	// predicates on the same element field merge into one operator document
	doc := renderFilter(t, ElemMatch("results",
		Gte("score", int32(80)),
		Lt("score", int32(85)),
	))

	expected := `{"results": {"$elemMatch": {"score": {"$gte": 80, "$lt": 85}}}}`
	assert.Equal(t, expected, doc.String())

	doc = renderFilter(t, ElemMatch("results",
		Eq("product", "xyz"),
		Gte("score", int32(8)),
	))

	expected = `{"results": {"$elemMatch": {"product": {"$eq": "xyz"}, "score": {"$gte": 8}}}}`
	assert.Equal(t, expected, doc.String())
}

func TestOperators(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		node     Node
		expected string
	}{
		{"Ne", Ne("a", "v"), `{"a": {"$ne": "v"}}`},
		{"Gt", Gt("a", int32(1)), `{"a": {"$gt": 1}}`},
		{"Gte", Gte("a", int32(1)), `{"a": {"$gte": 1}}`},
		{"Lt", Lt("a", int32(1)), `{"a": {"$lt": 1}}`},
		{"Lte", Lte("a", int32(1)), `{"a": {"$lte": 1}}`},
		{"In", In("a", int32(1), int32(2)), `{"a": {"$in": [1, 2]}}`},
		{"Nin", Nin("a", "x", "y"), `{"a": {"$nin": ["x", "y"]}}`},
		{"Exists", Exists("a", true), `{"a": {"$exists": true}}`},
		{"Type", Type("a", "long"), `{"a": {"$type": "long"}}`},
		{"Size", Size("a", 3), `{"a": {"$size": 3}}`},
		{"All", All("a", int32(1), int32(2)), `{"a": {"$all": [1, 2]}}`},
		{"BitsAllSet", BitsAllSet("a", int32(5)), `{"a": {"$bitsAllSet": 5}}`},
		{"BitsAllClear", BitsAllClear("a", int64(2)), `{"a": {"$bitsAllClear": 2}}`},
		{"BitsAnySet", BitsAnySet("a", int32(1)), `{"a": {"$bitsAnySet": 1}}`},
		{"BitsAnyClear", BitsAnyClear("a", int32(1)), `{"a": {"$bitsAnyClear": 1}}`},
	} {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, renderFilter(t, tc.node).String())
		})
	}
}

func TestFilterFrozen(t *testing.T) {
	t.Parallel()

	f := NewFilter()
	require.NoError(t, f.Accept(Eq("a", int32(1))))

	_, err := f.Document()
	require.NoError(t, err)

	// rendering froze the filter; further mutation is a caller bug
	err = f.Accept(Eq("b", int32(2)))
	require.ErrorIs(t, err, ErrFrozen)
}

func TestLogicalFrozen(t *testing.T) {
	t.Parallel()

	and := And(Eq("a", int32(1)), Eq("b", int32(2)))

	f := NewFilter()
	require.NoError(t, f.Accept(and))

	// the filter simplified and froze the $and on acceptance
	err := and.Accept(Eq("c", int32(3)))
	require.ErrorIs(t, err, ErrFrozen)
}

func TestFrozenTreeSharedRendering(t *testing.T) {
	t.Parallel()

	// the same frozen predicate may be a child of several parents
	shared := Eq("a", int32(1)).Simplify()
	shared.freeze()

	f1 := NewFilter()
	require.NoError(t, f1.Accept(shared))
	f2 := NewFilter()
	require.NoError(t, f2.Accept(shared))

	d1, err := f1.Document()
	require.NoError(t, err)
	d2, err := f2.Document()
	require.NoError(t, err)

	assert.Equal(t, d1.String(), d2.String())
}

func TestInvalidValueSurfaces(t *testing.T) {
	t.Parallel()

	f := NewFilter()
	require.NoError(t, f.Accept(Eq("a", 42))) // untyped int is not a BSON value

	_, err := f.Document()
	require.Error(t, err)
}

func TestInvalidArrayElementSurfaces(t *testing.T) {
	t.Parallel()

	f := NewFilter()
	require.NoError(t, f.Accept(In("age", int64(18), 21))) // untyped int is not a BSON value

	_, err := f.Document()
	require.Error(t, err)

	f = NewFilter()
	require.NoError(t, f.Accept(All("tags", uint8(1))))

	_, err = f.Document()
	require.Error(t, err)
}

func TestFilterLogValue(t *testing.T) {
	t.Parallel()

	f := NewFilter()
	require.NoError(t, f.Accept(Gt("age", int32(18))))
	require.NoError(t, f.Accept(Eq("isAlive", true)))

	// the logged form matches the wire form, implicit $and included
	logged := f.LogValue().Resolve().String()
	assert.Contains(t, logged, "$and")

	doc, err := f.Document()
	require.NoError(t, err)
	assert.Equal(t, doc.LogValue().Resolve().String(), logged)
}

func TestFilterEncode(t *testing.T) {
	t.Parallel()

	f := NewFilter()
	require.NoError(t, f.Accept(Eq("age", int32(18))))

	raw, err := f.Encode()
	require.NoError(t, err)
	require.NoError(t, raw.Check())

	doc, err := raw.DecodeDeep()
	require.NoError(t, err)
	assert.Equal(t, `{"age": {"$eq": 18}}`, doc.String())
}
