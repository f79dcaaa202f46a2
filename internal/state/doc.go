// Package state provides the validated reduction-configuration models.
//
// Key components:
//   - Move: detector move corrections with per-bank nested state
//   - DetectorBank: translation, rotation, tilt and name fields for one bank
//   - Variant: the instrument-specific part of a Move (LOQ, SANS2D, LARMOR)
//   - DataInfo: the sample scatter run a reduction is configured for
//
// Fields are declared as typed.Field values on fixed schemas. A model is
// mutable until Freeze; builders freeze what they return. Validate must
// succeed before a model is converted with ToPropertyMap.
package state
