package typed

import (
	"fmt"
	"sort"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

// Record stores the values of one schema instance.
type Record struct {
	schema *Schema
	values map[string]any
	frozen bool
}

// Schema returns the schema the record is bound to.
func (r *Record) Schema() *Schema { return r.schema }

// IsSet reports whether name currently holds a value.
func (r *Record) IsSet(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Assign sets a field by name from an untyped value. A value of the wrong Go
// type, or an undeclared name, is a CategoryType error.
func (r *Record) Assign(name string, v any) error {
	b, ok := r.schema.fields[name]
	if !ok {
		return r.unknownField(name)
	}
	return b.assign(r, v)
}

// Delete always fails: fields can only be discarded with the whole record.
func (r *Record) Delete(name string) error {
	return errors.TypeError(fmt.Sprintf("cannot delete %s.%s", r.schema.name, name)).
		WithContext("field", name).
		Build()
}

// Properties encodes every set field into a PropertyMap.
func (r *Record) Properties() PropertyMap {
	out := make(PropertyMap, len(r.values))
	for _, name := range r.schema.order {
		if v, ok := r.values[name]; ok {
			out[name] = r.schema.fields[name].encode(v)
		}
	}
	return out
}

// LoadProperties decodes and assigns every entry of props. Keys are applied
// in sorted order and the first failure is returned.
func (r *Record) LoadProperties(props PropertyMap) error {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b, ok := r.schema.fields[k]
		if !ok {
			return r.unknownField(k)
		}
		v, ok := b.decode(props[k])
		if !ok {
			return errors.TypeError(fmt.Sprintf("%s.%s cannot decode property value %v (%T)", r.schema.name, k, props[k], props[k])).
				WithContext("field", k).
				Build()
		}
		if err := b.assign(r, v); err != nil {
			return err
		}
	}
	return nil
}

// Merge copies every set field of src into r, overwriting existing values.
func (r *Record) Merge(src *Record) error {
	if src.schema != r.schema {
		return errors.TypeError(fmt.Sprintf("cannot merge %s record into %s record", src.schema.name, r.schema.name)).Build()
	}
	for _, name := range src.schema.order {
		if v, ok := src.values[name]; ok {
			if err := r.schema.fields[name].assign(r, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clone returns a deep, unfrozen copy.
func (r *Record) Clone() *Record {
	out := r.schema.NewRecord()
	for name, v := range r.values {
		out.values[name] = r.schema.fields[name].copyValue(v)
	}
	return out
}

// Freeze makes every subsequent Set fail.
func (r *Record) Freeze() { r.frozen = true }

// Frozen reports whether Freeze has been called.
func (r *Record) Frozen() bool { return r.frozen }

func (r *Record) unknownField(name string) error {
	return errors.TypeError(fmt.Sprintf("%s has no field %s", r.schema.name, name)).
		WithContext("field", name).
		Build()
}
