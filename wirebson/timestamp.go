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
	"math"
	"time"
)

// NewTimestamp creates a Timestamp from the given time and counter.
//
// The timestamp is the 32-bit Unix seconds in the high half
// and the 32-bit counter in the low half,
// so the plain uint64 ordering orders by instant first, then by counter.
//
// Both sub-fields saturate instead of wrapping:
// instants before the Unix epoch map to 0,
// instants and counters that do not fit into 32 bits map to the maximum.
func NewTimestamp(t time.Time, counter uint32) Timestamp {
	sec := t.Unix()

	switch {
	case sec < 0:
		sec = 0
	case sec > math.MaxUint32:
		sec = math.MaxUint32
	}

	return Timestamp(uint64(sec)<<32 | uint64(counter))
}

// TimestampTime returns the timestamp's instant truncated to seconds.
func TimestampTime(ts Timestamp) time.Time {
	return time.Unix(int64(ts>>32), 0).UTC()
}

// TimestampCounter returns the timestamp's counter.
func TimestampCounter(ts Timestamp) uint32 {
	return uint32(ts)
}
