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

// Package query builds MongoDB filter, update, and aggregation expression
// documents as trees of operator nodes.
//
// Nodes are built bottom-up. A node starts out mutable, is simplified exactly
// once when handed to a parent via [CompoundNode.Accept], and is frozen by the
// accepting parent immediately after. Frozen nodes are immutable and may be
// shared between parents and goroutines without synchronization, so a finished
// tree can be rendered into wire documents concurrently.
//
// Rendering is type-preserving for numeric literals: int32 stays a BSON int,
// int64 a long, float64 a double. Untyped Go int values are rejected;
// callers pick the BSON numeric type explicitly.
package query

import (
	"errors"

	"github.com/mongokit/mongokit/internal/util/lazyerrors"
	"github.com/mongokit/mongokit/wirebson"
)

// ErrFrozen is returned wrapped by [CompoundNode.Accept] when the node
// has already been simplified and frozen.
// Mutating a frozen node is a programming error, never a recoverable state.
var ErrFrozen = errors.New("node is frozen")

// Node is a single element of an expression tree.
//
// Concrete nodes are created by the operator constructors in this package
// ([Eq], [And], [Set], ...).
type Node interface {
	// Simplify returns the minimal node equivalent to this one,
	// or nil when the node contributes nothing and must be omitted
	// from the parent entirely.
	//
	// It is called exactly once, by the parent accepting the node.
	// Simplify is idempotent: simplifying an already-simplified node
	// returns it unchanged.
	Simplify() Node

	// WriteTo appends the node's fields to the given document.
	// It is only called on simplified nodes.
	WriteTo(doc *wirebson.Document) error

	// freeze makes the node permanently immutable.
	freeze()
}

// CompoundNode is a Node with children, populated during construction.
type CompoundNode interface {
	Node

	// Accept simplifies the child, freezes the result, and adds it to
	// this node. A child that simplifies to nothing is silently dropped.
	//
	// Accept returns an error wrapping [ErrFrozen] if called after
	// this node itself has been frozen.
	Accept(child Node) error
}

// acceptInto implements the accept-then-freeze step shared by all
// compound nodes: the child is simplified exactly once, the result is
// frozen, and nil signals "nothing to add".
func acceptInto(children []Node, child Node) []Node {
	child = child.Simplify()
	if child == nil {
		return children
	}

	child.freeze()

	return append(children, child)
}

// writeChild renders a child node into its own document.
func writeChild(child Node) (*wirebson.Document, error) {
	doc := wirebson.MakeDocument(1)
	if err := child.WriteTo(doc); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return doc, nil
}

// render simplifies the node and renders it into a fresh document.
//
// A node that simplifies to nothing renders to an empty document.
func render(n Node) (*wirebson.Document, error) {
	n = n.Simplify()
	if n == nil {
		return wirebson.MakeDocument(0), nil
	}

	n.freeze()

	doc := wirebson.MakeDocument(1)
	if err := n.WriteTo(doc); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return doc, nil
}
