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

package wirebson_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongokit/mongokit/internal/util/must"
	"github.com/mongokit/mongokit/internal/util/testutil"
	"github.com/mongokit/mongokit/wirebson"
)

func TestArray(t *testing.T) {
	t.Parallel()

	arr := must.NotFail(wirebson.NewArray("foo", int32(42)))

	raw, err := arr.Encode()
	require.NoError(t, err)

	expected := wirebson.RawArray{
		0x17, 0x00, 0x00, 0x00, // array length
		0x02, 0x30, 0x00, // "0": string
		0x04, 0x00, 0x00, 0x00,
		0x66, 0x6f, 0x6f, 0x00,
		0x10, 0x31, 0x00, // "1": int32
		0x2a, 0x00, 0x00, 0x00,
		0x00, // end of array
	}
	assert.Equal(t, expected, raw, "actual:\n%s", hex.Dump(raw))

	require.NoError(t, raw.Check())

	decoded, err := raw.DecodeDeep()
	require.NoError(t, err)
	testutil.AssertEqual(t, arr, decoded)
}

func TestArrayInvalidIndex(t *testing.T) {
	t.Parallel()

	// a document with key "1" instead of "0" is not a valid array
	raw := wirebson.RawArray{
		0x0c, 0x00, 0x00, 0x00,
		0x10, 0x31, 0x00, // "1": int32
		0x2a, 0x00, 0x00, 0x00,
		0x00,
	}

	_, err := raw.Decode()
	require.ErrorIs(t, err, wirebson.ErrDecodeInvalidInput)

	// the same bytes are a perfectly valid document
	doc, err := wirebson.RawDocument(raw).Decode()
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, doc.FieldNames())
}

func TestArrayNested(t *testing.T) {
	t.Parallel()

	arr := must.NotFail(wirebson.NewArray(
		must.NotFail(wirebson.NewDocument("name", "Paul")),
		must.NotFail(wirebson.NewArray()),
	))

	raw, err := arr.Encode()
	require.NoError(t, err)
	require.NoError(t, raw.Check())

	// shallow decode keeps nested composites raw
	shallow, err := raw.Decode()
	require.NoError(t, err)

	_, ok := shallow.Get(0).(wirebson.RawDocument)
	assert.True(t, ok)
	_, ok = shallow.Get(1).(wirebson.RawArray)
	assert.True(t, ok)

	deep, err := raw.DecodeDeep()
	require.NoError(t, err)

	_, ok = deep.Get(0).(*wirebson.Document)
	assert.True(t, ok)

	testutil.AssertEqual(t, arr, deep)
	testutil.AssertEqual(t, arr, shallow)
}
