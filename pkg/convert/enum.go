package convert

import (
	"reflect"
	"sort"
	"strings"
)

// enumConverter handles integer types with a registered name table.
// It accepts a case-insensitive symbolic name or any integral value;
// numeric values are not range-validated against the declared members.
type enumConverter struct {
	reg *Registry
}

func (c *enumConverter) Priority() int { return prioEnum }

func (c *enumConverter) CanConvert(target reflect.Type) bool {
	_, ok := c.reg.enums[target]
	return ok
}

func (c *enumConverter) Convert(value any, target reflect.Type) (any, error) {
	names := c.reg.enums[target]
	out := reflect.New(target).Elem()
	if s, ok := value.(string); ok {
		n, ok := names[strings.ToLower(s)]
		if !ok {
			return nil, convErr(value, target, "unknown enum name %q (valid: %s)", s, strings.Join(sortedKeys(names), ", "))
		}
		out.SetInt(n)
		return out.Interface(), nil
	}
	n, ok := toInt64(value)
	if !ok {
		return nil, convErr(value, target, "expected enum name or integral value")
	}
	out.SetInt(n)
	return out.Interface(), nil
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
