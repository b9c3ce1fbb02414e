package models

import (
	"fmt"
	"math"
	"time"
)

// Normalize converts a decoded document into the canonical [Tree] value
// space. Maps with string keys become Tree, every slice becomes []any,
// whole-valued integers become int64 and other numbers float64.
//
// It is used by every loader so that values coming from different file
// formats compare equal when they represent the same data.
func Normalize(v any) (any, error) {
	switch value := v.(type) {
	case nil, string, bool, int64, Configurable:
		return value, nil
	case int:
		return int64(value), nil
	case int8:
		return int64(value), nil
	case int16:
		return int64(value), nil
	case int32:
		return int64(value), nil
	case uint:
		return normalizeUint(uint64(value))
	case uint8:
		return int64(value), nil
	case uint16:
		return int64(value), nil
	case uint32:
		return int64(value), nil
	case uint64:
		return normalizeUint(value)
	case float32:
		return normalizeFloat(float64(value)), nil
	case float64:
		return normalizeFloat(value), nil
	case time.Time:
		return value.Format(time.RFC3339Nano), nil
	case Tree:
		return normalizeMap(value)
	case map[string]any:
		return normalizeMap(value)
	case map[any]any:
		out := make(Tree, len(value))
		for k, item := range value {
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprint(k)
			}
			n, err := Normalize(item)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			n, err := Normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case []string:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = item
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// NormalizeTree is [Normalize] for a document whose root must be an object.
func NormalizeTree(v any) (Tree, error) {
	if v == nil {
		return nil, nil
	}
	n, err := Normalize(v)
	if err != nil {
		return nil, err
	}
	tree, ok := n.(Tree)
	if !ok {
		return nil, fmt.Errorf("%w: root is %T", ErrNotAnObject, n)
	}
	return tree, nil
}

func normalizeMap[M ~map[string]any](m M) (Tree, error) {
	out := make(Tree, len(m))
	for k, item := range m {
		n, err := Normalize(item)
		if err != nil {
			return nil, err
		}
		out[k] = n
	}
	return out, nil
}

func normalizeUint(v uint64) (any, error) {
	if v > math.MaxInt64 {
		return float64(v), nil
	}
	return int64(v), nil
}

func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}
