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

package wirebson

import "golang.org/x/exp/slices"

// NewRegex creates a Regex with canonicalized options:
// option flags are stored sorted alphabetically with duplicates removed,
// so "imx" and "mix" produce the same value.
//
// The pattern is stored as-is.
func NewRegex(pattern, options string) Regex {
	return Regex{
		Pattern: pattern,
		Options: canonicalRegexOptions(options),
	}
}

// canonicalRegexOptions sorts option flags and drops duplicates.
func canonicalRegexOptions(options string) string {
	b := []byte(options)
	slices.Sort(b)

	return string(slices.Compact(b))
}
