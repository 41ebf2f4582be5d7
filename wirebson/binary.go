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
	"github.com/google/uuid"

	"github.com/mongokit/mongokit/internal/util/lazyerrors"
)

// UUIDBinary creates a Binary value with the UUID subtype.
func UUIDBinary(u uuid.UUID) Binary {
	return Binary{
		B:       u[:],
		Subtype: BinaryUUID,
	}
}

// UUID extracts a UUID from a Binary value with the UUID subtype.
func UUID(b Binary) (uuid.UUID, error) {
	if b.Subtype != BinaryUUID {
		return uuid.Nil, lazyerrors.Errorf("expected subtype %d, got %d", BinaryUUID, b.Subtype)
	}

	res, err := uuid.FromBytes(b.B)
	if err != nil {
		return uuid.Nil, lazyerrors.Error(err)
	}

	return res, nil
}
