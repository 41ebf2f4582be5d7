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
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"
	"sync/atomic"
	"time"

	"github.com/mongokit/mongokit/internal/util/lazyerrors"
	"github.com/mongokit/mongokit/internal/util/must"
)

// objectIDProcess is a 5-byte random value unique to this process.
var objectIDProcess [5]byte

// objectIDCounter is a 3-byte counter starting from a random offset.
var objectIDCounter atomic.Uint32

func init() {
	must.NotFail(io.ReadFull(rand.Reader, objectIDProcess[:]))

	var b [4]byte
	must.NotFail(io.ReadFull(rand.Reader, b[:]))
	objectIDCounter.Store(binary.BigEndian.Uint32(b[:]))
}

// NewObjectID generates a new ObjectID:
// 4 bytes of big-endian Unix seconds, 5 process-unique random bytes,
// and a 3-byte big-endian counter starting from a random offset.
func NewObjectID() ObjectID {
	return newObjectIDTime(time.Now())
}

// newObjectIDTime generates a new ObjectID for the given timestamp.
func newObjectIDTime(t time.Time) ObjectID {
	var res ObjectID

	binary.BigEndian.PutUint32(res[0:4], uint32(t.Unix()))
	copy(res[4:9], objectIDProcess[:])

	c := objectIDCounter.Add(1)
	res[9] = byte(c >> 16)
	res[10] = byte(c >> 8)
	res[11] = byte(c)

	return res
}

// ParseObjectID parses ObjectID from its 24-character hex representation.
func ParseObjectID(s string) (ObjectID, error) {
	var res ObjectID

	if len(s) != 24 {
		return res, lazyerrors.Errorf("invalid ObjectID length: %d", len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return res, lazyerrors.Error(err)
	}

	copy(res[:], b)

	return res, nil
}
