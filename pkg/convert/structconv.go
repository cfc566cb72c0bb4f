package convert

import (
	"errors"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// structConverter fills user-defined serializable structs from wire
// mappings via mapstructure. Fields the registry handles specially
// (value structs, enums, references) are routed back through the
// registry by a decode hook, enabling nested struct graphs. Individual
// field failures are logged and skipped rather than aborting the whole
// struct; this best-effort partial fill is deliberate.
type structConverter struct {
	reg *Registry
}

func (c *structConverter) Priority() int { return prioUserStruct }

func (c *structConverter) CanConvert(target reflect.Type) bool {
	if target.Kind() == reflect.Struct {
		return true
	}
	return target.Kind() == reflect.Pointer && target.Elem().Kind() == reflect.Struct
}

func (c *structConverter) Convert(value any, target reflect.Type) (any, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, convErr(value, target, "expected field mapping")
	}

	structType := target
	if target.Kind() == reflect.Pointer {
		structType = target.Elem()
	}
	dest := reflect.New(structType)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dest.Interface(),
		WeaklyTypedInput: true,
		DecodeHook:       c.registryHook(),
	})
	if err != nil {
		return nil, convErr(value, target, "decoder setup: %v", err)
	}

	if err := decoder.Decode(m); err != nil {
		var fieldErrs *mapstructure.Error
		if errors.As(err, &fieldErrs) {
			// Successfully decoded fields are already set; report the
			// failures and keep the partial result.
			for _, msg := range fieldErrs.Errors {
				c.reg.log.Warn("partial struct conversion", "target", structType.String(), "err", msg)
			}
		} else {
			return nil, convErr(value, target, "%v", err)
		}
	}

	if target.Kind() == reflect.Pointer {
		return dest.Interface(), nil
	}
	return dest.Elem().Interface(), nil
}

// registryHook delegates any nested value whose destination type is
// claimed by a higher-priority converter back to the registry.
func (c *structConverter) registryHook() mapstructure.DecodeHookFuncValue {
	return func(from reflect.Value, to reflect.Value) (any, error) {
		selected := c.reg.selectFor(to.Type())
		if selected == nil || selected.Priority() <= prioUserStruct {
			return from.Interface(), nil
		}
		if _, isSlice := selected.(*sliceConverter); isSlice {
			// mapstructure walks sequences itself; the hook fires again
			// per element with the element type.
			return from.Interface(), nil
		}
		return c.reg.Convert(from.Interface(), to.Type())
	}
}
