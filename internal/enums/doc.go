// Package enums defines the closed enumerations shared by the reduction
// state layer: instruments, facilities, detector banks, reduction modes and
// the sample and output options a user file may select.
//
// Every enumeration is a string type whose values are the canonical names
// written to property maps. Parse functions accept the same names
// case-insensitively and fail with a CategoryValue error otherwise.
package enums
