// Package errors provides the classified error primitives used across sansstate.
//
// Every failure raised by the state core carries one of the taxonomy categories:
//   - CategoryType: a value of the wrong type for a declared attribute
//   - CategoryValue: a value rejected by a validator or outside an enumeration
//   - CategoryValidation: a cross-field invariant violated at Validate time
//   - CategoryParse: a malformed range or slice expression
//   - CategoryBuilder: a mandatory field missing with no default, or a reused builder
//   - CategoryUnsupportedInstrument: no builder registered for a facility/instrument pair
//
// Outer layers add CategoryConfig, CategoryStore and CategoryInternal.
//
// Example usage:
//
//	err := errors.ValueError("wavelength step must be positive").
//		WithContext("value", step).
//		Build()
//
//	if errors.HasCategory(err, errors.CategoryValue) { ... }
package errors
