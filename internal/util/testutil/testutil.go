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

// Package testutil provides testing helpers.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mongokit/mongokit/internal/util/hex"
)

// ParseDump parses a hex dump into bytes, failing the test on malformed input.
func ParseDump(tb testing.TB, s string) []byte {
	tb.Helper()

	b, err := hex.ParseDump(s)
	require.NoError(tb, err)

	return b
}

// ParseString parses a continuous hex string into bytes, failing the test on malformed input.
func ParseString(tb testing.TB, s string) []byte {
	tb.Helper()

	b, err := hex.ParseString(s)
	require.NoError(tb, err)

	return b
}
