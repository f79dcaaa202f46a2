package typed

import (
	"fmt"

	"git.home.luguber.info/inful/sansstate/internal/foundation"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

// Field is a typed attribute declared on a Schema.
type Field[T any] struct {
	schema   *Schema
	name     string
	validate func(T) bool
	clone    func(T) T
	toProp   func(T) any
	fromProp func(any) (T, bool)
}

// FieldOption configures a Field at declaration time.
type FieldOption[T any] func(*Field[T])

// WithValidator sets the predicate every stored value must satisfy.
func WithValidator[T any](fn func(T) bool) FieldOption[T] {
	return func(f *Field[T]) { f.validate = fn }
}

// WithClone sets the deep-copy function. Required for reference types.
func WithClone[T any](fn func(T) T) FieldOption[T] {
	return func(f *Field[T]) { f.clone = fn }
}

// WithCodec sets the conversion to and from property values.
func WithCodec[T any](encode func(T) any, decode func(any) (T, bool)) FieldOption[T] {
	return func(f *Field[T]) {
		f.toProp = encode
		f.fromProp = decode
	}
}

// Declare registers a field of type T on schema. Declaring the same name
// twice panics.
func Declare[T any](schema *Schema, name string, opts ...FieldOption[T]) *Field[T] {
	f := &Field[T]{
		schema:   schema,
		name:     name,
		validate: func(T) bool { return true },
		clone:    func(v T) T { return v },
		toProp:   func(v T) any { return v },
		fromProp: func(raw any) (T, bool) {
			v, ok := raw.(T)
			return v, ok
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	schema.register(name, f)
	return f
}

// Name returns the field name.
func (f *Field[T]) Name() string { return f.name }

// Get returns a copy of the stored value, or None when unset.
func (f *Field[T]) Get(rec *Record) foundation.Option[T] {
	f.mustOwn(rec)
	raw, ok := rec.values[f.name]
	if !ok {
		return foundation.None[T]()
	}
	return foundation.Some(f.clone(raw.(T)))
}

// Set validates v and stores an independent copy of it.
func (f *Field[T]) Set(rec *Record, v T) error {
	f.mustOwn(rec)
	if rec.frozen {
		return errors.ValueError(fmt.Sprintf("%s.%s cannot be changed on a built state", f.schema.name, f.name)).
			WithContext("field", f.name).
			Build()
	}
	if !f.validate(v) {
		return errors.ValueError(fmt.Sprintf("%s.%s rejects value %v", f.schema.name, f.name, v)).
			WithContext("field", f.name).
			WithContext("value", v).
			Build()
	}
	rec.values[f.name] = f.clone(v)
	return nil
}

func (f *Field[T]) mustOwn(rec *Record) {
	if rec.schema != f.schema {
		panic(fmt.Sprintf("typed: field %s.%s used with a %s record", f.schema.name, f.name, rec.schema.name))
	}
}

func (f *Field[T]) fieldName() string { return f.name }

func (f *Field[T]) assign(rec *Record, v any) error {
	tv, ok := v.(T)
	if !ok {
		var zero T
		return errors.TypeError(fmt.Sprintf("%s.%s expects %T, got %T", f.schema.name, f.name, zero, v)).
			WithContext("field", f.name).
			Build()
	}
	return f.Set(rec, tv)
}

func (f *Field[T]) encode(v any) any { return f.toProp(f.clone(v.(T))) }

func (f *Field[T]) decode(raw any) (any, bool) {
	v, ok := f.fromProp(raw)
	if !ok {
		return nil, false
	}
	return v, true
}

func (f *Field[T]) copyValue(v any) any { return f.clone(v.(T)) }
