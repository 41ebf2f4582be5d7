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

package docpath_test

import (
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongokit/mongokit/docpath"
)

func TestParse(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		text     string
		expected docpath.Path
	}{
		{
			text:     "$",
			expected: docpath.NewPath(),
		},
		{
			text:     "$.name",
			expected: docpath.NewPath(docpath.Key("name")),
		},
		{
			text:     "$.store.book",
			expected: docpath.NewPath(docpath.Key("store"), docpath.Key("book")),
		},
		{
			text:     "$['name with spaces']",
			expected: docpath.NewPath(docpath.Key("name with spaces")),
		},
		{
			text:     `$["double.quoted"]`,
			expected: docpath.NewPath(docpath.Key("double.quoted")),
		},
		{
			text:     `$['it\'s']`,
			expected: docpath.NewPath(docpath.Key("it's")),
		},
		{
			text:     "$[3]",
			expected: docpath.NewPath(docpath.Index(3)),
		},
		{
			text:     "$.*",
			expected: docpath.NewPath(docpath.Wildcard()),
		},
		{
			text:     "$[*]",
			expected: docpath.NewPath(docpath.Wildcard()),
		},
		{
			text:     "$[1:7:2]",
			expected: docpath.NewPath(docpath.Slice(pointer.ToInt32(1), pointer.ToInt32(7), pointer.ToInt32(2))),
		},
		{
			text:     "$[:]",
			expected: docpath.NewPath(docpath.Slice(nil, nil, nil)),
		},
		{
			text:     "$[::]",
			expected: docpath.NewPath(docpath.Slice(nil, nil, nil)),
		},
		{
			text:     "$[::-1]",
			expected: docpath.NewPath(docpath.Slice(nil, nil, pointer.ToInt32(-1))),
		},
		{
			text: "$.a[0].b[*]",
			expected: docpath.NewPath(
				docpath.Key("a"), docpath.Index(0), docpath.Key("b"), docpath.Wildcard(),
			),
		},
	} {
		tc := tc

		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()

			p, err := docpath.Parse(tc.text)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(p), "expected %s, got %s", tc.expected, p)

			// round-trip: the canonical rendering re-parses to an equal path
			again, err := docpath.Parse(p.String())
			require.NoError(t, err)
			assert.True(t, p.Equal(again), "%s did not round-trip", p)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"",
		"name",
		".name",
		"$[",
		"$[]",
		"$['unterminated",
		"$.na me",
		"$[1",
		"$[1:2",
		"$[x]",
		"$[-1]",
	} {
		text := text

		t.Run(text, func(t *testing.T) {
			t.Parallel()

			_, err := docpath.Parse(text)
			require.Error(t, err)

			var pe *docpath.ParseError
			require.ErrorAs(t, err, &pe)
		})
	}
}

func TestIndexNegative(t *testing.T) {
	t.Parallel()

	// indices are 0-based; negative bounds are legal in slices only
	assert.Panics(t, func() { docpath.Index(-1) })
}

func TestSliceNormalization(t *testing.T) {
	t.Parallel()

	// [1:7:2] and [1:6:2] both denote the progression {1, 3, 5}
	a := docpath.Slice(pointer.ToInt32(1), pointer.ToInt32(7), pointer.ToInt32(2))
	b := docpath.Slice(pointer.ToInt32(1), pointer.ToInt32(6), pointer.ToInt32(2))
	assert.Equal(t, a, b)

	parsed, err := docpath.Parse("$[1:7:2]")
	require.NoError(t, err)
	assert.True(t, docpath.NewPath(a).Equal(parsed))

	// different progressions stay different
	c := docpath.Slice(pointer.ToInt32(1), pointer.ToInt32(8), pointer.ToInt32(2))
	assert.NotEqual(t, a, c)

	// unbounded slices keep their sentinels and compare equal to each other
	assert.Equal(t, docpath.Slice(nil, nil, nil), docpath.Slice(pointer.ToInt32(0), nil, pointer.ToInt32(1)))
}

func TestString(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		path     docpath.Path
		expected string
	}{
		{docpath.NewPath(), "$"},
		{docpath.NewPath(docpath.Key("a"), docpath.Key("b")), "$.a.b"},
		{docpath.NewPath(docpath.Key("with space")), "$['with space']"},
		{docpath.NewPath(docpath.Key("it's")), `$['it\'s']`},
		{docpath.NewPath(docpath.Index(42)), "$[42]"},
		{docpath.NewPath(docpath.Wildcard()), "$[*]"},
		{
			docpath.NewPath(docpath.Slice(pointer.ToInt32(1), pointer.ToInt32(7), pointer.ToInt32(2))),
			"$[1:7:2]",
		},
		{docpath.NewPath(docpath.Slice(nil, nil, nil)), "$[:]"},
	} {
		tc := tc

		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.path.String())
		})
	}
}

func TestPush(t *testing.T) {
	t.Parallel()

	base := docpath.NewPath(docpath.Key("a"))
	child := base.Push(docpath.Key("b"))

	// Push is pure: the base path is unchanged
	assert.Equal(t, "$.a", base.String())
	assert.Equal(t, "$.a.b", child.String())
}

type person struct {
	Name     string
	Children []person
}

func TestField(t *testing.T) {
	t.Parallel()

	root := docpath.RootField[person]()
	children := docpath.Child[person, person, []person](root, "children")
	first := docpath.At(children, 0)
	name := docpath.Child[person, person, string](first, "name")

	assert.Equal(t, "children.0.name", name.String())
	assert.Equal(t, "$.children[0].name", name.Path().String())

	anyName := docpath.Child[person, person, string](docpath.AnyElement(children), "name")
	assert.Equal(t, "children.[*].name", anyName.String())
}
