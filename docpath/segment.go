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

package docpath

import (
	"math"
	"strconv"
	"strings"
)

// SegmentKind discriminates the kinds of path segments.
type SegmentKind int

const (
	_ SegmentKind = iota

	// KindKey is a document field access by name.
	KindKey

	// KindIndex is an array element access by 0-based index.
	KindIndex

	// KindWildcard matches all document fields or all array elements.
	KindWildcard

	// KindSlice is an array range access with Python-like exclusive-end semantics.
	KindSlice
)

// unbounded sentinels for slice ranges.
const (
	sliceMax = math.MaxInt32
	sliceMin = math.MinInt32
)

// Segment is a single step of a [Path]: a field name, an array index,
// a wildcard, or an array slice.
//
// Segments are immutable value types; use the constructors below.
type Segment struct {
	key   string
	kind  SegmentKind
	index int32

	// normalized slice progression, valid for KindSlice only
	start int32
	end   int32
	step  int32
}

// Key returns a field name segment.
func Key(name string) Segment {
	return Segment{kind: KindKey, key: name}
}

// Index returns an array index segment.
//
// Indices are 0-based; Index panics on a negative value.
// Negative bounds remain legal in [Slice].
func Index(i int32) Segment {
	if i < 0 {
		panic("negative array index")
	}

	return Segment{kind: KindIndex, index: i}
}

// Wildcard returns a segment matching all fields or elements.
func Wildcard() Segment {
	return Segment{kind: KindWildcard}
}

// Slice returns an array slice segment.
//
// Nil bounds mean "unbounded"; a nil step means 1.
// The stored range is normalized to the effective integer progression,
// so two slices that select the same elements compare equal:
// [1:7:2] and [1:6:2] both denote {1, 3, 5}.
func Slice(start, end, step *int32) Segment {
	st := int32(1)
	if step != nil && *step != 0 {
		st = *step
	}

	var s, e int32
	if st > 0 {
		s, e = 0, sliceMax
	} else {
		s, e = sliceMax, sliceMin
	}

	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}

	s, e = normalizeProgression(s, e, st)

	return Segment{kind: KindSlice, start: s, end: e, step: st}
}

// normalizeProgression clamps a bounded exclusive end to the smallest value
// denoting the same progression. Unbounded ends keep their sentinel.
func normalizeProgression(start, end, step int32) (int32, int32) {
	if step > 0 {
		if end == sliceMax {
			return start, end
		}

		if end <= start {
			return start, start
		}

		n := (int64(end) - int64(start) + int64(step) - 1) / int64(step)
		return start, start + int32(n*int64(step))
	}

	if end == sliceMin {
		return start, end
	}

	if end >= start {
		return start, start
	}

	n := (int64(start) - int64(end) + int64(-step) - 1) / int64(-step)
	return start, start + int32(n*int64(step))
}

// Kind returns the segment kind.
func (s Segment) Kind() SegmentKind {
	return s.kind
}

// Name returns the field name of a [KindKey] segment.
// It panics for other kinds.
func (s Segment) Name() string {
	if s.kind != KindKey {
		panic("not a key segment")
	}

	return s.key
}

// Idx returns the array index of a [KindIndex] segment.
// It panics for other kinds.
func (s Segment) Idx() int32 {
	if s.kind != KindIndex {
		panic("not an index segment")
	}

	return s.index
}

// Bounds returns the normalized start, exclusive end, and step
// of a [KindSlice] segment. It panics for other kinds.
func (s Segment) Bounds() (start, end, step int32) {
	if s.kind != KindSlice {
		panic("not a slice segment")
	}

	return s.start, s.end, s.step
}

// simpleKey reports whether a field name can be rendered in the dotted form
// without quoting.
func simpleKey(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}

	return true
}

// render writes the canonical textual form of the segment.
//
// Quoted keys use single quotes with backslash escaping.
func (s Segment) render(sb *strings.Builder) {
	switch s.kind {
	case KindKey:
		if simpleKey(s.key) {
			sb.WriteByte('.')
			sb.WriteString(s.key)
			return
		}

		sb.WriteString("['")
		for _, r := range s.key {
			if r == '\'' || r == '\\' {
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		}
		sb.WriteString("']")

	case KindIndex:
		sb.WriteByte('[')
		sb.WriteString(strconv.FormatInt(int64(s.index), 10))
		sb.WriteByte(']')

	case KindWildcard:
		sb.WriteString("[*]")

	case KindSlice:
		sb.WriteByte('[')

		if s.step > 0 {
			if s.start != 0 {
				sb.WriteString(strconv.FormatInt(int64(s.start), 10))
			}
			sb.WriteByte(':')
			if s.end != sliceMax {
				sb.WriteString(strconv.FormatInt(int64(s.end), 10))
			}
		} else {
			if s.start != sliceMax {
				sb.WriteString(strconv.FormatInt(int64(s.start), 10))
			}
			sb.WriteByte(':')
			if s.end != sliceMin {
				sb.WriteString(strconv.FormatInt(int64(s.end), 10))
			}
		}

		if s.step != 1 {
			sb.WriteByte(':')
			sb.WriteString(strconv.FormatInt(int64(s.step), 10))
		}

		sb.WriteByte(']')

	default:
		panic("unknown segment kind")
	}
}
