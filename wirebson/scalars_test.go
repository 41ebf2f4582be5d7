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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongokit/mongokit/internal/util/testutil"
	"github.com/mongokit/mongokit/wirebson"
)

func TestNewObjectID(t *testing.T) {
	t.Parallel()

	a := wirebson.NewObjectID()
	b := wirebson.NewObjectID()

	assert.NotEqual(t, a, b)

	// process bytes are stable within a process, the counter advances
	assert.Equal(t, a[4:9], b[4:9])
}

func TestParseObjectID(t *testing.T) {
	t.Parallel()

	id, err := wirebson.ParseObjectID("6256c5ba182d4454fb210940")
	require.NoError(t, err)
	assert.Equal(t, wirebson.ObjectID{0x62, 0x56, 0xc5, 0xba, 0x18, 0x2d, 0x44, 0x54, 0xfb, 0x21, 0x09, 0x40}, id)

	_, err = wirebson.ParseObjectID("6256c5ba")
	assert.Error(t, err)

	_, err = wirebson.ParseObjectID("6256c5ba182d4454fb21094x")
	assert.Error(t, err)
}

func TestTimestampOrdering(t *testing.T) {
	t.Parallel()

	instant := time.Unix(1234567890, 0)

	// counter breaks ties at equal instants
	assert.Less(t,
		wirebson.NewTimestamp(instant, 1),
		wirebson.NewTimestamp(instant, 2),
	)

	// the instant dominates the counter
	assert.Less(t,
		wirebson.NewTimestamp(instant, 4294967295),
		wirebson.NewTimestamp(instant.Add(time.Second), 0),
	)
}

func TestTimestampSaturation(t *testing.T) {
	t.Parallel()

	// instants before the epoch map to instant 0, not a wrapped huge value
	ts := wirebson.NewTimestamp(time.Unix(-1, 0), 42)
	assert.Equal(t, time.Unix(0, 0).UTC(), wirebson.TimestampTime(ts))
	assert.Equal(t, uint32(42), wirebson.TimestampCounter(ts))

	// instants past the 32-bit range map to the maximum
	ts = wirebson.NewTimestamp(time.Unix(1<<33, 0), 0)
	assert.Equal(t, time.Unix(4294967295, 0).UTC(), wirebson.TimestampTime(ts))
}

func TestTimestampRoundTrip(t *testing.T) {
	t.Parallel()

	instant := time.Unix(1234567890, 0)
	ts := wirebson.NewTimestamp(instant, 7)

	assert.Equal(t, instant.UTC(), wirebson.TimestampTime(ts))
	assert.Equal(t, uint32(7), wirebson.TimestampCounter(ts))
}

func TestNewRegex(t *testing.T) {
	t.Parallel()

	// flags are a set: order does not matter and duplicates collapse
	assert.Equal(t, wirebson.NewRegex("abc", "imx"), wirebson.NewRegex("abc", "mix"))
	assert.Equal(t, "imx", wirebson.NewRegex("abc", "xmii").Options)
	assert.Equal(t, "", wirebson.NewRegex("abc", "").Options)

	r := wirebson.NewRegex("abc", "mix")
	doc := wirebson.MakeDocument(1)
	require.NoError(t, doc.Add("a", r))

	raw, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, regexCorpusDoc.raw, raw)
}

func TestRegexCorpusHex(t *testing.T) {
	t.Parallel()

	raw := testutil.ParseString(t, "100000000B610061626300696D780000")
	assert.Equal(t, []byte(regexCorpusDoc.raw), raw)

	require.NoError(t, wirebson.RawDocument(raw).Check())
}

func TestUUIDBinary(t *testing.T) {
	t.Parallel()

	u := uuid.MustParse("a319f2b4-a175-40c7-b8e7-a3a32ec256be")

	b := wirebson.UUIDBinary(u)
	assert.Equal(t, wirebson.BinaryUUID, b.Subtype)

	res, err := wirebson.UUID(b)
	require.NoError(t, err)
	assert.Equal(t, u, res)

	_, err = wirebson.UUID(wirebson.Binary{B: b.B, Subtype: wirebson.BinaryGeneric})
	assert.Error(t, err)
}

func TestCodeWithScope(t *testing.T) {
	t.Parallel()

	scope, err := wirebson.NewDocument("x", int32(1))
	require.NoError(t, err)

	c, err := wirebson.NewCodeWithScope("function() { return x; }", scope)
	require.NoError(t, err)

	doc, err := wirebson.NewDocument("f", c)
	require.NoError(t, err)

	raw, err := doc.Encode()
	require.NoError(t, err)
	require.NoError(t, raw.Check())

	decoded, err := raw.DecodeDeep()
	require.NoError(t, err)

	got, err := decoded.GetCodeWithScope("f")
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
