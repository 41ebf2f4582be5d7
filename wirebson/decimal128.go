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

import (
	"encoding/binary"

	"github.com/mongokit/mongokit/internal/util/lazyerrors"
)

// Decimal128 represents BSON scalar type decimal128 in the IEEE 754-2008 BID form.
//
// L and H are the low and high 64 bits of the 128-bit value.
// The wire layout is L first, then H, both little-endian.
type Decimal128 struct {
	L uint64
	H uint64
}

// sizeDecimal128 is a size of the encoding of [Decimal128] in bytes.
const sizeDecimal128 = 16

// encodeDecimal128 encodes Decimal128 value v into b.
//
// b must be at least 16 bytes long; otherwise, encodeDecimal128 will panic.
// Only b[0:16] bytes are modified.
func encodeDecimal128(b []byte, v Decimal128) {
	binary.LittleEndian.PutUint64(b, v.L)
	binary.LittleEndian.PutUint64(b[8:], v.H)
}

// decodeDecimal128 decodes Decimal128 value from b.
//
// If there is not enough bytes, decodeDecimal128 will return a wrapped [ErrDecodeShortInput].
func decodeDecimal128(b []byte) (Decimal128, error) {
	var res Decimal128

	if len(b) < sizeDecimal128 {
		return res, lazyerrors.Errorf("len(b) = %d: %w", len(b), ErrDecodeShortInput)
	}

	res.L = binary.LittleEndian.Uint64(b)
	res.H = binary.LittleEndian.Uint64(b[8:])

	return res, nil
}
