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
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes a path text that could not be parsed.
type ParseError struct {
	Message string
	Offset  int // byte offset into the input
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid path at offset %d: %s", e.Offset, e.Message)
}

// Parse parses the canonical textual form of a path.
//
// The text must start with `$`. Accepted segments:
//
//	.name            simple field name
//	['name'], ["n"]  quoted field name, backslash escapes inside
//	[3]              array index
//	.* and [*]       wildcard
//	[a:b:c]          array slice; every part may be omitted
//
// There is no fallback parsing: the first malformed segment fails
// the whole parse with a [*ParseError].
func Parse(text string) (Path, error) {
	if !strings.HasPrefix(text, "$") {
		return Path{}, &ParseError{Offset: 0, Message: "path must start with $"}
	}

	p := &parser{text: text, pos: 1}

	var segments []Segment

	for p.pos < len(p.text) {
		s, err := p.segment()
		if err != nil {
			return Path{}, err
		}

		segments = append(segments, s)
	}

	return Path{segments: segments}, nil
}

// MustParse is a Parse that panics on error, for static paths.
func MustParse(text string) Path {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return p
}

type parser struct {
	text string
	pos  int
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Offset: p.pos, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) segment() (Segment, error) {
	switch p.text[p.pos] {
	case '.':
		p.pos++
		return p.dotSegment()
	case '[':
		p.pos++
		return p.bracketSegment()
	default:
		return Segment{}, p.errorf("expected '.' or '[', got %q", p.text[p.pos])
	}
}

// dotSegment parses the part after '.': a simple identifier or '*'.
func (p *parser) dotSegment() (Segment, error) {
	if p.pos < len(p.text) && p.text[p.pos] == '*' {
		p.pos++
		return Wildcard(), nil
	}

	start := p.pos
	for p.pos < len(p.text) && p.text[p.pos] != '.' && p.text[p.pos] != '[' {
		p.pos++
	}

	name := p.text[start:p.pos]
	if !simpleKey(name) {
		p.pos = start
		return Segment{}, p.errorf("invalid field name %q", name)
	}

	return Key(name), nil
}

// bracketSegment parses the part after '[' up to and including ']'.
func (p *parser) bracketSegment() (Segment, error) {
	if p.pos >= len(p.text) {
		return Segment{}, p.errorf("unbalanced '['")
	}

	switch c := p.text[p.pos]; c {
	case '*':
		p.pos++
		if err := p.expect(']'); err != nil {
			return Segment{}, err
		}

		return Wildcard(), nil

	case '\'', '"':
		p.pos++
		name, err := p.quoted(c)
		if err != nil {
			return Segment{}, err
		}

		if err := p.expect(']'); err != nil {
			return Segment{}, err
		}

		return Key(name), nil

	default:
		return p.indexOrSlice()
	}
}

// quoted parses a quoted field name terminated by the given quote byte.
func (p *parser) quoted(quote byte) (string, error) {
	var sb strings.Builder

	for p.pos < len(p.text) {
		c := p.text[p.pos]

		switch c {
		case quote:
			p.pos++
			return sb.String(), nil

		case '\\':
			p.pos++
			if p.pos >= len(p.text) {
				return "", p.errorf("unterminated escape")
			}

			sb.WriteByte(p.text[p.pos])
			p.pos++

		default:
			sb.WriteByte(c)
			p.pos++
		}
	}

	return "", p.errorf("unterminated quoted name")
}

// indexOrSlice parses `[n]` and `[a:b:c]` bodies.
func (p *parser) indexOrSlice() (Segment, error) {
	first, firstOK, err := p.optInt()
	if err != nil {
		return Segment{}, err
	}

	if p.pos < len(p.text) && p.text[p.pos] == ']' {
		if !firstOK {
			return Segment{}, p.errorf("empty brackets")
		}

		if first < 0 {
			return Segment{}, p.errorf("negative array index %d", first)
		}

		p.pos++
		return Index(first), nil
	}

	if err = p.expect(':'); err != nil {
		return Segment{}, err
	}

	end, endOK, err := p.optInt()
	if err != nil {
		return Segment{}, err
	}

	step, stepOK := int32(0), false
	if p.pos < len(p.text) && p.text[p.pos] == ':' {
		p.pos++

		if step, stepOK, err = p.optInt(); err != nil {
			return Segment{}, err
		}
	}

	if err = p.expect(']'); err != nil {
		return Segment{}, err
	}

	var startP, endP, stepP *int32
	if firstOK {
		startP = &first
	}
	if endOK {
		endP = &end
	}
	if stepOK {
		stepP = &step
	}

	return Slice(startP, endP, stepP), nil
}

// optInt parses an optional signed decimal integer.
func (p *parser) optInt() (int32, bool, error) {
	start := p.pos

	if p.pos < len(p.text) && (p.text[p.pos] == '-' || p.text[p.pos] == '+') {
		p.pos++
	}

	for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
		p.pos++
	}

	if p.pos == start {
		return 0, false, nil
	}

	s := p.text[start:p.pos]

	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		p.pos = start
		return 0, false, p.errorf("invalid number %q", s)
	}

	return int32(n), true, nil
}

func (p *parser) expect(c byte) error {
	if p.pos >= len(p.text) || p.text[p.pos] != c {
		return p.errorf("expected %q", c)
	}

	p.pos++
	return nil
}
