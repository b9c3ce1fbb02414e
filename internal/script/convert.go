package script

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"

	"github.com/MKhiriev/go-config-resolver/models"
)

// toNative converts an evaluated HCL value into the configuration value
// space. Whole numbers that fit int64 become int64, other numbers float64,
// objects and maps become models.Tree, lists, tuples and sets []any, and
// hook capsules the models.Configurable they carry.
func toNative(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, ErrUnknownValue
	}

	ty := v.Type()
	switch {
	case ty.Equals(hookType):
		hook, ok := v.EncapsulatedValue().(*models.Configurable)
		if !ok || hook == nil {
			return nil, fmt.Errorf("%w: empty hook", ErrUnknownValue)
		}
		return *hook, nil

	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}
		f, _ := bf.Float64()
		return f, nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		items := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			native, err := toNative(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, native)
		}
		return items, nil

	case ty.IsObjectType() || ty.IsMapType():
		tree := make(models.Tree, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			native, err := toNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			tree[key.AsString()] = native
		}
		return tree, nil

	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedValue, ty.FriendlyName())
	}
}
