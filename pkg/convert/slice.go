package convert

import "reflect"

// sliceConverter handles slice and array destinations. Each element is
// converted through the top-level registry entry point so arbitrary
// element types (nested structs, references) work. A nil input produces
// an empty collection of the destination shape, never nil.
type sliceConverter struct {
	reg *Registry
}

func (c *sliceConverter) Priority() int { return prioSlice }

func (c *sliceConverter) CanConvert(target reflect.Type) bool {
	return target.Kind() == reflect.Slice || target.Kind() == reflect.Array
}

func (c *sliceConverter) Convert(value any, target reflect.Type) (any, error) {
	elems := sequenceOf(value)
	elemType := target.Elem()

	if target.Kind() == reflect.Array {
		out := reflect.New(target).Elem()
		n := len(elems)
		if n > target.Len() {
			n = target.Len()
		}
		for i := 0; i < n; i++ {
			converted, err := c.reg.Convert(elems[i], elemType)
			if err != nil {
				return nil, err
			}
			out.Index(i).Set(reflect.ValueOf(converted))
		}
		return out.Interface(), nil
	}

	out := reflect.MakeSlice(target, 0, len(elems))
	for _, elem := range elems {
		converted, err := c.reg.Convert(elem, elemType)
		if err != nil {
			return nil, err
		}
		out = reflect.Append(out, reflect.ValueOf(converted))
	}
	return out.Interface(), nil
}

// sequenceOf normalizes the input into a []any: nil becomes empty, an
// existing sequence is flattened element-wise, and a bare scalar wraps
// into a single-element sequence.
func sequenceOf(value any) []any {
	if value == nil {
		return nil
	}
	if s, ok := value.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{value}
}
