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

// decodeMode represents a mode of decoding.
type decodeMode int

const (
	_ decodeMode = iota

	// decodeShallow represents a mode in which only top-level fields are decoded;
	// nested documents and arrays are left as raw subslices.
	decodeShallow

	// decodeDeep represents a mode in which nested documents and arrays are decoded recursively.
	decodeDeep

	// decodeCheckOnly represents a mode in which the input is validated recursively
	// and no decoded form is built.
	decodeCheckOnly
)
