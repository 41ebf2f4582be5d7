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

	"github.com/mongokit/mongokit/docpath"
	"github.com/mongokit/mongokit/wirebson"
)

// exprString renders an expression value for comparison.
func exprString(t *testing.T, e Expr) string {
	t.Helper()

	v, err := e.Value()
	require.NoError(t, err)

	return wirebson.StringValue(v)
}

func TestExpressions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		expr     Expr
		expected string
	}{
		{
			name:     "Constant",
			expr:     Constant(int32(42)),
			expected: `42`,
		},
		{
			name:     "Literal",
			expr:     Literal("$notAFieldRef"),
			expected: `{"$literal": "$notAFieldRef"}`,
		},
		{
			name:     "FieldRefName",
			expr:     FieldRefName("qty"),
			expected: `"$qty"`,
		},
		{
			name: "FieldRefPath",
			expr: FieldRef(docpath.NewPath(
				docpath.Key("item"), docpath.Key("price"),
			)),
			expected: `"$item.price"`,
		},
		{
			name:     "Add",
			expr:     Add(FieldRefName("price"), Constant(int32(1))),
			expected: `{"$add": ["$price", 1]}`,
		},
		{
			name:     "Multiply",
			expr:     Multiply(FieldRefName("price"), FieldRefName("qty")),
			expected: `{"$multiply": ["$price", "$qty"]}`,
		},
		{
			name:     "Abs",
			expr:     Abs(FieldRefName("delta")),
			expected: `{"$abs": "$delta"}`,
		},
		{
			name: "AbsOfAdd",
			expr: Abs(Add(FieldRefName("a"), Constant(int64(-7)))),
			expected: `{"$abs": {"$add": ["$a", -7]}}`,
		},
		{
			name: "Cond",
			expr: Cond(FieldRefName("isAlive"), Constant(int32(1)), Constant(int32(0))),
			expected: `{"$cond": {"if": "$isAlive", "then": 1, "else": 0}}`,
		},
		{
			name: "Switch",
			expr: Switch(
				Constant("unknown"),
				Branch{Case: FieldRefName("a"), Then: Constant("first")},
				Branch{Case: FieldRefName("b"), Then: Constant("second")},
			),
			expected: `{"$switch": {"branches": [` +
				`{"case": "$a", "then": "first"}, ` +
				`{"case": "$b", "then": "second"}` +
				`], "default": "unknown"}}`,
		},
		{
			name: "SwitchNoDefault",
			expr: Switch(
				nil,
				Branch{Case: FieldRefName("a"), Then: Constant(int32(1))},
			),
			expected: `{"$switch": {"branches": [{"case": "$a", "then": 1}]}}`,
		},
	} {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, exprString(t, tc.expr))
		})
	}
}

func TestExpressionInvalidValue(t *testing.T) {
	t.Parallel()

	_, err := Constant(42).Value() // untyped int
	require.Error(t, err)

	_, err = Literal(uint64(1)).Value()
	require.Error(t, err)

	_, err = Add(Constant(42)).Value()
	require.Error(t, err)
}

func TestExpressionTypePreserving(t *testing.T) {
	t.Parallel()

	v, err := Constant(int32(2)).Value()
	require.NoError(t, err)
	assert.IsType(t, int32(0), v)

	v, err = Constant(int64(2)).Value()
	require.NoError(t, err)
	assert.IsType(t, int64(0), v)

	v, err = Constant(float64(2)).Value()
	require.NoError(t, err)
	assert.IsType(t, float64(0), v)
}
