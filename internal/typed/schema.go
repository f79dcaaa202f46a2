package typed

import (
	"fmt"
)

// PropertyMap is the flat, primitive-valued representation of a record.
// Values are string, float64, int, bool or []string.
type PropertyMap map[string]any

// binding is the type-erased view of a Field used by Record.
type binding interface {
	fieldName() string
	assign(rec *Record, v any) error
	encode(v any) any
	decode(raw any) (any, bool)
	copyValue(v any) any
}

// Schema is an ordered set of typed field declarations.
type Schema struct {
	name   string
	fields map[string]binding
	order  []string
}

// NewSchema creates an empty schema.
func NewSchema(name string) *Schema {
	return &Schema{name: name, fields: make(map[string]binding)}
}

// Name returns the schema name used in error messages.
func (s *Schema) Name() string { return s.name }

// Fields returns the declared field names in declaration order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Has reports whether name is declared.
func (s *Schema) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// NewRecord returns an empty, mutable record bound to s.
func (s *Schema) NewRecord() *Record {
	return &Record{schema: s, values: make(map[string]any)}
}

func (s *Schema) register(name string, b binding) {
	if name == "" {
		panic(fmt.Sprintf("typed: empty field name in schema %s", s.name))
	}
	if _, exists := s.fields[name]; exists {
		panic(fmt.Sprintf("typed: field %s declared twice in schema %s", name, s.name))
	}
	s.fields[name] = b
	s.order = append(s.order, name)
}
