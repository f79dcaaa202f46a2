// Package typed is a small schema-driven record engine.
//
// A Schema is declared once, usually in a package-level var block, by
// registering typed fields with Declare. A Record holds at most one value per
// declared field. Values are type checked against the field's Go type,
// validated by the field's predicate and deep copied on the way in and on the
// way out, so callers never alias stored state.
//
//	var (
//		sampleSchema = typed.NewSchema("sample")
//		thickness    = typed.Float(sampleSchema, "thickness", typed.WithValidator(typed.NonNegative[float64]))
//	)
//
//	rec := sampleSchema.NewRecord()
//	err := thickness.Set(rec, 1.5)
//
// Records convert to and from a flat PropertyMap of primitive values for
// hand-off to external reduction algorithms.
package typed
