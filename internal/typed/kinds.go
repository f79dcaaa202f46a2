package typed

import (
	"math"
	"sort"
	"strings"
)

// Float declares a float64 field. Decoding accepts any numeric property value.
func Float(schema *Schema, name string, opts ...FieldOption[float64]) *Field[float64] {
	return Declare(schema, name, append([]FieldOption[float64]{WithCodec(identity[float64], decodeFloat)}, opts...)...)
}

// Int declares an int field. Decoding accepts integral numeric property values.
func Int(schema *Schema, name string, opts ...FieldOption[int]) *Field[int] {
	return Declare(schema, name, append([]FieldOption[int]{WithCodec(identity[int], decodeInt)}, opts...)...)
}

// Bool declares a bool field.
func Bool(schema *Schema, name string, opts ...FieldOption[bool]) *Field[bool] {
	return Declare(schema, name, opts...)
}

// String declares a string field.
func String(schema *Schema, name string, opts ...FieldOption[string]) *Field[string] {
	return Declare(schema, name, opts...)
}

// StringList declares a []string field that is copied on every access.
func StringList(schema *Schema, name string, opts ...FieldOption[[]string]) *Field[[]string] {
	base := []FieldOption[[]string]{
		WithClone(cloneStrings),
		WithCodec(func(v []string) any { return v }, decodeStrings),
	}
	return Declare(schema, name, append(base, opts...)...)
}

// StringMap declares a map[string]string field. In a PropertyMap it is
// carried as a sorted list of "key=value" strings.
func StringMap(schema *Schema, name string, opts ...FieldOption[map[string]string]) *Field[map[string]string] {
	base := []FieldOption[map[string]string]{
		WithClone(cloneStringMap),
		WithCodec(encodeStringMap, decodeStringMap),
	}
	return Declare(schema, name, append(base, opts...)...)
}

// Enum declares a field over a string enumeration. Values are carried as
// plain strings in a PropertyMap. valid is installed as the validator.
func Enum[E ~string](schema *Schema, name string, valid func(E) bool, opts ...FieldOption[E]) *Field[E] {
	base := []FieldOption[E]{
		WithValidator(valid),
		WithCodec(func(v E) any { return string(v) }, func(raw any) (E, bool) {
			switch s := raw.(type) {
			case string:
				return E(s), true
			case E:
				return s, true
			}
			return "", false
		}),
	}
	return Declare(schema, name, append(base, opts...)...)
}

// Number is the constraint for numeric validators.
type Number interface {
	~int | ~int64 | ~float64
}

// NonNegative accepts zero and positive values.
func NonNegative[N Number](v N) bool { return v >= 0 }

// Finite rejects NaN and infinities.
func Finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// NotEmpty rejects blank strings.
func NotEmpty(s string) bool { return strings.TrimSpace(s) != "" }

// OneOf accepts only the listed values.
func OneOf[T comparable](allowed ...T) func(T) bool {
	return func(v T) bool {
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	}
}

// All combines predicates; every one must accept.
func All[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

func identity[T any](v T) any { return v }

func decodeFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func decodeInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}

func cloneStrings(v []string) []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

func decodeStrings(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return cloneStrings(v), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func cloneStringMap(v map[string]string) map[string]string {
	if v == nil {
		return nil
	}
	out := make(map[string]string, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

func encodeStringMap(v map[string]string) any {
	out := make([]string, 0, len(v))
	for k, val := range v {
		out = append(out, k+"="+val)
	}
	sort.Strings(out)
	return out
}

func decodeStringMap(raw any) (map[string]string, bool) {
	if m, ok := raw.(map[string]string); ok {
		return cloneStringMap(m), true
	}
	pairs, ok := decodeStrings(raw)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, val, found := strings.Cut(p, "=")
		if !found {
			return nil, false
		}
		out[k] = val
	}
	return out, true
}
