package utils

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-faster/jx"

	"github.com/MKhiriev/go-config-resolver/models"
)

// EncodeJSON writes v (a configuration value) as canonical JSON: object
// keys sorted, integers without exponent, no insignificant whitespace.
//
// Values outside the JSON data model are encoded as strings: configure
// hooks as "<hook TYPE>", NaN and infinities as "NaN", "+Inf", "-Inf".
//
// Example usage:
//
//	data := utils.EncodeJSON(tree)
func EncodeJSON(v any) []byte {
	var e jx.Encoder
	encodeValue(&e, v)
	return e.Bytes()
}

func encodeValue(e *jx.Encoder, v any) {
	switch value := v.(type) {
	case nil:
		e.Null()
	case string:
		e.Str(value)
	case bool:
		e.Bool(value)
	case int64:
		e.Int64(value)
	case int:
		e.Int(value)
	case float64:
		switch {
		case math.IsNaN(value):
			e.Str("NaN")
		case math.IsInf(value, 1):
			e.Str("+Inf")
		case math.IsInf(value, -1):
			e.Str("-Inf")
		default:
			e.Float64(value)
		}
	case models.Tree:
		encodeObject(e, value)
	case map[string]any:
		encodeObject(e, value)
	case []any:
		e.ArrStart()
		for _, item := range value {
			encodeValue(e, item)
		}
		e.ArrEnd()
	case models.Configurable:
		e.Str(fmt.Sprintf("<hook %T>", value))
	default:
		e.Str(fmt.Sprint(value))
	}
}

func encodeObject[M ~map[string]any](e *jx.Encoder, m M) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e.ObjStart()
	for _, k := range keys {
		e.FieldStart(k)
		encodeValue(e, m[k])
	}
	e.ObjEnd()
}
