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

package driver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongokit/mongokit/driver"
	"github.com/mongokit/mongokit/internal/util/iterator"
	"github.com/mongokit/mongokit/internal/util/must"
	"github.com/mongokit/mongokit/internal/util/testutil"
	"github.com/mongokit/mongokit/query"
	"github.com/mongokit/mongokit/wirebson"
)

// echoHandler responds to every request with the request itself.
func echoHandler(_ context.Context, doc wirebson.RawDocument) ([]wirebson.RawDocument, error) {
	return []wirebson.RawDocument{doc}, nil
}

func TestLoopback(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	conn := driver.Loopback(echoHandler, testutil.Logger(t))

	f := query.NewFilter()
	require.NoError(t, f.Accept(query.Eq("age", int32(18))))

	raw, err := f.Encode()
	require.NoError(t, err)

	it, err := conn.Request(ctx, raw)
	require.NoError(t, err)
	defer it.Close()

	i, res, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, raw, res)

	_, _, err = it.Next()
	assert.ErrorIs(t, err, iterator.ErrIteratorDone)
}

func TestLoopbackInvalidDocument(t *testing.T) {
	t.Parallel()

	conn := driver.Loopback(echoHandler, testutil.Logger(t))

	_, err := conn.Request(context.Background(), wirebson.RawDocument{0x42})
	require.Error(t, err)
}

func TestLoopbackClosed(t *testing.T) {
	t.Parallel()

	conn := driver.Loopback(echoHandler, testutil.Logger(t))
	require.NoError(t, conn.Close())

	raw := must.NotFail(must.NotFail(wirebson.NewDocument("ping", int32(1))).Encode())

	_, err := conn.Request(context.Background(), raw)
	require.Error(t, err)
}

func TestLoopbackCanceledContext(t *testing.T) {
	t.Parallel()

	conn := driver.Loopback(echoHandler, testutil.Logger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	raw := must.NotFail(must.NotFail(wirebson.NewDocument("ping", int32(1))).Encode())

	_, err := conn.Request(ctx, raw)
	require.ErrorIs(t, err, context.Canceled)
}
