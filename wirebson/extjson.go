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
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// StringValue returns an Extended-JSON-like representation of any BSON value
// for debugging and test failure messages.
//
// The output is stable: documents render fields in order on a single line,
// so two equal values always render identically and unequal values are easy to diff.
// It is not meant to be parsed back.
func StringValue(v any) string {
	var sb strings.Builder
	stringValue(&sb, v)
	return sb.String()
}

func stringValue(sb *strings.Builder, v any) {
	switch v := v.(type) {
	case *Document:
		sb.WriteByte('{')

		for i, f := range v.fields {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(strconv.Quote(f.name))
			sb.WriteString(": ")
			stringValue(sb, f.value)
		}

		sb.WriteByte('}')

	case RawDocument:
		doc, err := v.DecodeDeep()
		if err != nil {
			fmt.Fprintf(sb, "RawDocument(%d bytes)", len(v))
			return
		}

		stringValue(sb, doc)

	case *Array:
		sb.WriteByte('[')

		for i, e := range v.elements {
			if i > 0 {
				sb.WriteString(", ")
			}

			stringValue(sb, e)
		}

		sb.WriteByte(']')

	case RawArray:
		arr, err := v.DecodeDeep()
		if err != nil {
			fmt.Fprintf(sb, "RawArray(%d bytes)", len(v))
			return
		}

		stringValue(sb, arr)

	case float64:
		switch {
		case math.IsNaN(v):
			sb.WriteString(`{"$numberDouble": "NaN"}`)
		case math.IsInf(v, 1):
			sb.WriteString(`{"$numberDouble": "Infinity"}`)
		case math.IsInf(v, -1):
			sb.WriteString(`{"$numberDouble": "-Infinity"}`)
		default:
			s := strconv.FormatFloat(v, 'g', -1, 64)
			if !strings.ContainsAny(s, ".eE") {
				s += ".0"
			}

			sb.WriteString(s)
		}

	case string:
		sb.WriteString(strconv.Quote(v))

	case Binary:
		fmt.Fprintf(
			sb, `{"$binary": {"base64": %q, "subType": "%02x"}}`,
			base64.StdEncoding.EncodeToString(v.B), byte(v.Subtype),
		)

	case UndefinedType:
		sb.WriteString(`{"$undefined": true}`)

	case ObjectID:
		fmt.Fprintf(sb, `{"$oid": %q}`, hex.EncodeToString(v[:]))

	case bool:
		sb.WriteString(strconv.FormatBool(v))

	case time.Time:
		fmt.Fprintf(sb, `{"$date": %q}`, v.Truncate(time.Millisecond).UTC().Format(time.RFC3339Nano))

	case NullType:
		sb.WriteString("null")

	case Regex:
		fmt.Fprintf(sb, `{"$regularExpression": {"pattern": %q, "options": %q}}`, v.Pattern, v.Options)

	case DBPointer:
		fmt.Fprintf(sb, `{"$dbPointer": {"$ref": %q, "$id": {"$oid": %q}}}`, v.NS, hex.EncodeToString(v.ID[:]))

	case JavaScript:
		fmt.Fprintf(sb, `{"$code": %q}`, string(v))

	case Symbol:
		fmt.Fprintf(sb, `{"$symbol": %q}`, string(v))

	case CodeWithScope:
		fmt.Fprintf(sb, `{"$code": %q, "$scope": `, v.Code)
		stringValue(sb, v.Scope)
		sb.WriteByte('}')

	case int32:
		sb.WriteString(strconv.FormatInt(int64(v), 10))

	case Timestamp:
		fmt.Fprintf(sb, `{"$timestamp": {"t": %d, "i": %d}}`, uint32(v>>32), TimestampCounter(v))

	case int64:
		sb.WriteString(strconv.FormatInt(int64(v), 10))

	case Decimal128:
		// no BID decoding; raw halves are enough for debugging
		fmt.Fprintf(sb, `{"$numberDecimal": {"h": %d, "l": %d}}`, v.H, v.L)

	case MinKeyType:
		sb.WriteString(`{"$minKey": 1}`)

	case MaxKeyType:
		sb.WriteString(`{"$maxKey": 1}`)

	default:
		panic(fmt.Sprintf("invalid BSON type %T", v))
	}
}
