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

// Package docpath provides addresses into nested BSON documents.
//
// A [Path] is an untyped, immutable sequence of segments with a canonical
// textual form rooted at `$`:
//
//	$.store.book[0].title
//	$['field with spaces'][*][1:7:2]
//
// A [Field] is a typed wrapper around Path carrying phantom type parameters
// for the document it belongs to and the value it points to.
package docpath

import (
	"log/slog"
	"strconv"
	"strings"
)

// Path is an immutable sequence of segments addressing a value
// inside a nested document.
//
// The zero value is the root path `$`.
type Path struct {
	segments []Segment
}

// NewPath creates a Path from the given segments.
func NewPath(segments ...Segment) Path {
	return Path{segments: segments}
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Segment returns the i-th segment.
// It panics if the index is out of bounds.
func (p Path) Segment(i int) Segment {
	return p.segments[i]
}

// Segments returns a copy of the segment sequence.
func (p Path) Segments() []Segment {
	res := make([]Segment, len(p.segments))
	copy(res, p.segments)
	return res
}

// Push returns a new Path with the segment appended.
// The receiver is not modified.
func (p Path) Push(s Segment) Path {
	segments := make([]Segment, len(p.segments)+1)
	copy(segments, p.segments)
	segments[len(p.segments)] = s

	return Path{segments: segments}
}

// Equal reports whether two paths address the same value.
//
// Equality is structural over the segment sequence;
// slice segments are compared by their normalized integer progressions,
// so `$[1:7:2]` equals `$[1:6:2]`.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}

	for i, s := range p.segments {
		if s != other.segments[i] {
			return false
		}
	}

	return true
}

// String returns the canonical textual form of the path.
//
// The result always starts with `$` and re-parses to an equal Path.
// Field names that contain characters outside [A-Za-z0-9_-]
// are rendered in the `['…']` form with single-quote escaping.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')

	for _, s := range p.segments {
		s.render(&sb)
	}

	return sb.String()
}

// Dotted returns the path in the plain dotted form without the `$` root,
// such as `a.b.0`, as used in wire documents and field references.
//
// Wildcard, slice, and non-simple key segments have no dotted form;
// for those the canonical bracket form is used.
func (p Path) Dotted() string {
	var sb strings.Builder

	for i, s := range p.segments {
		if i > 0 {
			sb.WriteByte('.')
		}

		switch s.kind {
		case KindKey:
			if simpleKey(s.key) {
				sb.WriteString(s.key)
				continue
			}

			var quoted strings.Builder
			s.render(&quoted)
			sb.WriteString(quoted.String())

		case KindIndex:
			sb.WriteString(strconv.FormatInt(int64(s.index), 10))

		default:
			var b strings.Builder
			s.render(&b)
			sb.WriteString(b.String())
		}
	}

	return sb.String()
}

// LogValue implements [slog.LogValuer].
func (p Path) LogValue() slog.Value {
	return slog.StringValue(p.String())
}

// check interfaces
var (
	_ slog.LogValuer = Path{}
)
