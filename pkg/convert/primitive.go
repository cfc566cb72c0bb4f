package convert

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// primitiveConverter coerces wire scalars into Go numeric, boolean and
// string destinations. It sits at the bottom of the chain.
type primitiveConverter struct{}

func (c *primitiveConverter) Priority() int { return prioPrimitive }

func (c *primitiveConverter) CanConvert(target reflect.Type) bool {
	switch target.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func (c *primitiveConverter) Convert(value any, target reflect.Type) (any, error) {
	out := reflect.New(target).Elem()
	switch target.Kind() {
	case reflect.Bool:
		b, ok := toBool(value)
		if !ok {
			return nil, convErr(value, target, "not a boolean")
		}
		out.SetBool(b)
	case reflect.String:
		out.SetString(toString(value))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := toInt64(value)
		if !ok {
			return nil, convErr(value, target, "not an integer")
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := toInt64(value)
		if !ok || n < 0 {
			return nil, convErr(value, target, "not an unsigned integer")
		}
		out.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		f, ok := toFloat64(value)
		if !ok {
			return nil, convErr(value, target, "not a number")
		}
		out.SetFloat(f)
	default:
		return nil, convErr(value, target, "unsupported primitive kind")
	}
	return out.Interface(), nil
}

// toFloat64 coerces any wire scalar into a float64. Strings parse
// numerically.
func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// toInt64 coerces a wire scalar into an int64. Whole-number floats are
// accepted; fractional ones are not.
func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
		return 0, false
	case float32:
		return toInt64(float64(v))
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), true
	}
	return 0, false
}

// toBool coerces a wire scalar into a bool. Accepts "true"/"false"
// strings and 0/1 numerics.
func toBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, err == nil
	}
	if n, ok := toFloat64(value); ok {
		return n != 0, true
	}
	return false, false
}

// toString renders any scalar as a string.
func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
