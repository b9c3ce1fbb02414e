package source

import (
	"fmt"

	"github.com/go-faster/jx"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-config-resolver/models"
)

// decodeJSON decodes a JSON document keeping integers as int64.
func decodeJSON(data []byte) (any, error) {
	if !jx.Valid(data) {
		return nil, ErrInvalidJSON
	}
	return decodeJSONValue(jx.DecodeBytes(data))
}

func decodeJSONValue(d *jx.Decoder) (any, error) {
	switch tt := d.Next(); tt {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return nil, err
		}
		return s, nil
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return nil, err
		}
		if n.IsInt() {
			if i, err := n.Int64(); err == nil {
				return i, nil
			}
		}
		f, err := n.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return nil, err
		}
		return b, nil
	case jx.Null:
		return nil, d.Null()
	case jx.Array:
		items := []any{}
		err := d.Arr(func(d *jx.Decoder) error {
			v, err := decodeJSONValue(d)
			if err != nil {
				return err
			}
			items = append(items, v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return items, nil
	case jx.Object:
		obj := models.Tree{}
		err := d.Obj(func(d *jx.Decoder, key string) error {
			v, err := decodeJSONValue(d)
			if err != nil {
				return err
			}
			obj[key] = v
			return nil
		})
		if err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %s", ErrInvalidJSON, tt)
	}
}

// decodeYAML decodes the first document of a YAML stream. An empty stream
// decodes to nil.
func decodeYAML(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
