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

package bsondiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongokit/mongokit/bsondiff"
	"github.com/mongokit/mongokit/internal/util/must"
	"github.com/mongokit/mongokit/wirebson"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		a, b  any
		equal bool
	}{
		{
			name:  "Scalars",
			a:     int32(2),
			b:     int32(2),
			equal: true,
		},
		{
			name: "NumericTypesDiffer",
			// numerically equal, structurally different
			a:     int32(2),
			b:     int64(2),
			equal: false,
		},
		{
			name:  "Documents",
			a:     must.NotFail(wirebson.NewDocument("a", int32(1), "b", "x")),
			b:     must.NotFail(wirebson.NewDocument("a", int32(1), "b", "x")),
			equal: true,
		},
		{
			name: "FieldOrderMatters",
			a:    must.NotFail(wirebson.NewDocument("a", int32(1), "b", int32(2))),
			b:    must.NotFail(wirebson.NewDocument("b", int32(2), "a", int32(1))),
		},
		{
			name:  "Arrays",
			a:     must.NotFail(wirebson.NewArray(int32(1), "x")),
			b:     must.NotFail(wirebson.NewArray(int32(1), "x")),
			equal: true,
		},
		{
			name: "ArrayLength",
			a:    must.NotFail(wirebson.NewArray(int32(1))),
			b:    must.NotFail(wirebson.NewArray(int32(1), int32(2))),
		},
		{
			name: "RawAgainstDecoded",
			a: must.NotFail(must.NotFail(wirebson.NewDocument(
				"a", int32(1),
			)).Encode()),
			b:     must.NotFail(wirebson.NewDocument("a", int32(1))),
			equal: true,
		},
		{
			name:  "Binary",
			a:     wirebson.Binary{B: []byte{0x42}, Subtype: wirebson.BinaryUser},
			b:     wirebson.Binary{B: []byte{0x42}, Subtype: wirebson.BinaryUser},
			equal: true,
		},
		{
			name: "BinarySubtype",
			a:    wirebson.Binary{B: []byte{0x42}, Subtype: wirebson.BinaryUser},
			b:    wirebson.Binary{B: []byte{0x42}, Subtype: wirebson.BinaryGeneric},
		},
	} {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.equal, bsondiff.Equal(tc.a, tc.b))

			// diff is empty exactly when the values are equal
			diff := bsondiff.Diff(tc.a, tc.b)
			if tc.equal {
				assert.Empty(t, diff)
			} else {
				assert.NotEmpty(t, diff)
			}
		})
	}
}

func TestDiffScalar(t *testing.T) {
	t.Parallel()

	a := must.NotFail(wirebson.NewDocument("age", int32(18)))
	b := must.NotFail(wirebson.NewDocument("age", int32(19)))

	expected := "✗ $.age: 18\n     19\n"
	assert.Equal(t, expected, bsondiff.Diff(a, b))
}

func TestDiffNumericTypeChange(t *testing.T) {
	t.Parallel()

	a := must.NotFail(wirebson.NewDocument("age", int32(2)))
	b := must.NotFail(wirebson.NewDocument("age", int64(2)))

	expected := "✗ $.age: int value 2\n     long value 2\n"
	assert.Equal(t, expected, bsondiff.Diff(a, b))
}

func TestDiffMissingField(t *testing.T) {
	t.Parallel()

	a := must.NotFail(wirebson.NewDocument("a", int32(1), "b", int32(2)))
	b := must.NotFail(wirebson.NewDocument("a", int32(1)))

	diff := bsondiff.Diff(a, b)
	assert.Contains(t, diff, "✗ $.b: 2\n     (field not present)\n")

	diff = bsondiff.Diff(b, a)
	assert.Contains(t, diff, "✗ $.b: (field not present)\n     2\n")
}

func TestDiffNestedContext(t *testing.T) {
	t.Parallel()

	a := must.NotFail(wirebson.NewDocument(
		"person", must.NotFail(wirebson.NewDocument(
			"name", "Paul",
			"age", int32(18),
		)),
	))
	b := must.NotFail(wirebson.NewDocument(
		"person", must.NotFail(wirebson.NewDocument(
			"name", "Paul",
			"age", int32(19),
		)),
	))

	diff := bsondiff.Diff(a, b)

	// the unchanged sibling gives positional context under the changed parent
	assert.Contains(t, diff, `✓ $.person.name: "Paul"`)
	assert.Contains(t, diff, "✗ $.person.age: 18\n     19\n")
}

func TestDiffArrays(t *testing.T) {
	t.Parallel()

	a := must.NotFail(wirebson.NewDocument(
		"tags", must.NotFail(wirebson.NewArray("x", "y")),
	))
	b := must.NotFail(wirebson.NewDocument(
		"tags", must.NotFail(wirebson.NewArray("x", "z", "w")),
	))

	diff := bsondiff.Diff(a, b)

	assert.Contains(t, diff, "✗ $.tags[1]: \"y\"\n     \"z\"\n")
	assert.Contains(t, diff, "✗ $.tags[2]: (field not present)\n     \"w\"\n")
}

func TestDiffConsistency(t *testing.T) {
	t.Parallel()

	values := []any{
		int32(1),
		int64(1),
		"x",
		must.NotFail(wirebson.NewDocument("a", int32(1))),
		must.NotFail(wirebson.NewArray(int32(1))),
		wirebson.Null,
		true,
	}

	for i, a := range values {
		for j, b := range values {
			eq := bsondiff.Equal(a, b)
			diff := bsondiff.Diff(a, b)

			require.Equal(t, i == j, eq, "values %d and %d", i, j)
			require.Equal(t, eq, diff == "", "diff and equality disagree for %d and %d", i, j)
		}
	}
}
