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
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"
)

// slogValue returns a compact representation of any BSON value as [slog.Value].
//
// The result is optimized for small values such as function parameters.
// Some type information is lost;
// for example, both int32 and int64 values are returned with [slog.KindInt64].
func slogValue(v any) slog.Value {
	switch v := v.(type) {
	case *Document:
		var attrs []slog.Attr

		for _, f := range v.fields {
			attrs = append(attrs, slog.Attr{Key: f.name, Value: slogValue(f.value)})
		}

		return slog.GroupValue(attrs...)

	case RawDocument:
		if v == nil {
			return slog.StringValue("RawDocument(nil)")
		}

		return slog.StringValue("RawDocument(" + strconv.Itoa(len(v)) + " bytes)")

	case *Array:
		var attrs []slog.Attr

		for i, v := range v.elements {
			attrs = append(attrs, slog.Attr{Key: strconv.Itoa(i), Value: slogValue(v)})
		}

		return slog.GroupValue(attrs...)

	case RawArray:
		if v == nil {
			return slog.StringValue("RawArray(nil)")
		}

		return slog.StringValue("RawArray(" + strconv.Itoa(len(v)) + " bytes)")

	case float64:
		// for JSON handler to work
		switch {
		case math.IsNaN(v):
			return slog.StringValue("NaN")
		case math.IsInf(v, 1):
			return slog.StringValue("+Inf")
		case math.IsInf(v, -1):
			return slog.StringValue("-Inf")
		}

		return slog.Float64Value(v)

	case string:
		return slog.StringValue(v)

	case Binary:
		return slog.StringValue(fmt.Sprintf("%#v", v))

	case UndefinedType:
		return slog.StringValue("Undefined")

	case ObjectID:
		return slog.StringValue("ObjectID(" + hex.EncodeToString(v[:]) + ")")

	case bool:
		return slog.BoolValue(v)

	case time.Time:
		return slog.TimeValue(v.Truncate(time.Millisecond).UTC())

	case NullType:
		return slog.Value{}

	case Regex:
		return slog.StringValue(fmt.Sprintf("%#v", v))

	case DBPointer:
		return slog.StringValue("DBPointer(" + v.NS + ", " + hex.EncodeToString(v.ID[:]) + ")")

	case JavaScript:
		return slog.StringValue("JavaScript(" + string(v) + ")")

	case Symbol:
		return slog.StringValue("Symbol(" + string(v) + ")")

	case CodeWithScope:
		return slog.StringValue("CodeWithScope(" + v.Code + ", " + strconv.Itoa(len(v.Scope)) + " bytes)")

	case int32:
		return slog.Int64Value(int64(v))

	case Timestamp:
		return slog.StringValue(fmt.Sprintf("%#v", v))

	case int64:
		return slog.Int64Value(v)

	case Decimal128:
		return slog.StringValue(fmt.Sprintf("%#v", v))

	case MinKeyType:
		return slog.StringValue("MinKey")

	case MaxKeyType:
		return slog.StringValue("MaxKey")

	default:
		panic(fmt.Sprintf("invalid BSON type %T", v))
	}
}
