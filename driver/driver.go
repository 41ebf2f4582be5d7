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

// Package driver defines the transport boundary.
//
// The expression tree and codec layers are pure in-memory computation;
// everything involving sockets, retries, and cancellation lives behind
// the [Conn] interface. A rendered wire document goes in, a stream of
// response documents comes out.
package driver

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mongokit/mongokit/internal/util/iterator"
	"github.com/mongokit/mongokit/internal/util/lazyerrors"
	"github.com/mongokit/mongokit/wirebson"
)

// Conn is a logical connection to a server.
//
// Implementations own all I/O concerns; the core only renders documents
// to bytes and parses them back.
type Conn interface {
	// Request sends a single wire document and returns an iterator
	// over the response documents.
	//
	// The context covers both the send and the returned stream.
	Request(ctx context.Context, doc wirebson.RawDocument) (iterator.Interface[int, wirebson.RawDocument], error)

	// Close closes the connection.
	// In-flight response iterators return errors after Close.
	Close() error
}

// Handler produces response documents for a request document.
// It is how tests and in-process backends plug into [Loopback].
type Handler func(ctx context.Context, doc wirebson.RawDocument) ([]wirebson.RawDocument, error)

// loopback is an in-process Conn backed by a handler function.
type loopback struct {
	h      Handler
	l      *slog.Logger
	id     uuid.UUID
	rw     sync.Mutex
	closed bool
}

// Loopback creates an in-process connection that passes every request
// to the handler. It is used by tests and embedded backends.
func Loopback(h Handler, l *slog.Logger) Conn {
	return &loopback{
		h:  h,
		l:  l,
		id: uuid.New(),
	}
}

// Request implements [Conn].
func (c *loopback) Request(ctx context.Context, doc wirebson.RawDocument) (iterator.Interface[int, wirebson.RawDocument], error) {
	c.rw.Lock()
	closed := c.closed
	c.rw.Unlock()

	if closed {
		return nil, lazyerrors.New("connection is closed")
	}

	if err := ctx.Err(); err != nil {
		return nil, lazyerrors.Error(err)
	}

	if err := doc.Check(); err != nil {
		return nil, lazyerrors.Error(err)
	}

	c.l.DebugContext(ctx, "Sending request", slog.String("conn", c.id.String()), slog.Any("doc", doc))

	res, err := c.h(ctx, doc)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return iterator.ForSlice(res), nil
}

// Close implements [Conn].
func (c *loopback) Close() error {
	c.rw.Lock()
	defer c.rw.Unlock()

	c.closed = true

	return nil
}

// check interfaces
var (
	_ Conn = (*loopback)(nil)
)
