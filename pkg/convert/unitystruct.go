package convert

import (
	"reflect"
	"strings"

	"github.com/kuroyasouiti/unityforge/pkg/unity"
)

// unityStructConverter recognizes the built-in value structs (vectors,
// colors, quaternions, rects, bounds). It accepts a field-named mapping
// with independently defaulted fields, or a bare string naming a
// symbolic constant for that exact type.
type unityStructConverter struct {
	reg *Registry
}

func (c *unityStructConverter) Priority() int { return prioUnityStruct }

func (c *unityStructConverter) CanConvert(target reflect.Type) bool {
	return unity.IsValueType(target)
}

func (c *unityStructConverter) Convert(value any, target reflect.Type) (any, error) {
	switch v := value.(type) {
	case string:
		constant, ok := unity.Constant(target, v)
		if !ok {
			return nil, convErr(value, target, "unknown named constant %q (known: %s)",
				v, strings.Join(unity.Constants(target), ", "))
		}
		return constant, nil
	case map[string]any:
		return c.fromMapping(v, target)
	}
	// Pass an already-typed value straight through.
	if rv := reflect.ValueOf(value); rv.IsValid() && rv.Type() == target {
		return value, nil
	}
	return nil, convErr(value, target, "expected field mapping or constant name")
}

func (c *unityStructConverter) fromMapping(m map[string]any, target reflect.Type) (any, error) {
	out := reflect.New(target).Elem()
	out.Set(reflect.ValueOf(unity.Default(target)))
	for i := 0; i < target.NumField(); i++ {
		field := target.Field(i)
		raw, present := m[strings.ToLower(field.Name)]
		if !present {
			continue
		}
		switch field.Type.Kind() {
		case reflect.Float32:
			f, ok := toFloat64(raw)
			if !ok {
				return nil, convErr(raw, target, "field %q is not a number", strings.ToLower(field.Name))
			}
			out.Field(i).SetFloat(f)
		case reflect.Struct:
			nested, err := c.reg.Convert(raw, field.Type)
			if err != nil {
				return nil, err
			}
			out.Field(i).Set(reflect.ValueOf(nested))
		default:
			return nil, convErr(raw, target, "unsupported field kind %s", field.Type.Kind())
		}
	}
	return out.Interface(), nil
}
