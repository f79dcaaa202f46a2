// Package normalization turns loosely written user-file strings into closed enumerations.
package normalization

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

// maxSuggestionDistance bounds how far a typo may be from a valid key before
// no suggestion is offered.
const maxSuggestionDistance = 3

// Normalizer provides type-safe string-to-enum normalization with error handling.
type Normalizer[T comparable] struct {
	enumName    string
	validValues map[string]T
	validKeys   []string // Cached for error messages
	normalize   Func
}

// Func allows custom normalization behavior.
type Func func(string) string

// NewNormalizer creates a normalizer with a map of valid string->value pairs.
// Keys are compared case-insensitively after trimming surrounding whitespace.
func NewNormalizer[T comparable](enumName string, values map[string]T) *Normalizer[T] {
	return WithCustomNormalizer(enumName, values, defaultNormalization)
}

// WithCustomNormalizer creates a normalizer with custom string normalization.
func WithCustomNormalizer[T comparable](enumName string, values map[string]T, fn Func) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	validKeys := make([]string, 0, len(values))

	for k, v := range values {
		key := fn(k)
		normalized[key] = v
		validKeys = append(validKeys, key)
	}
	sort.Strings(validKeys)

	return &Normalizer[T]{
		enumName:    enumName,
		validValues: normalized,
		validKeys:   validKeys,
		normalize:   fn,
	}
}

// Normalize converts raw to the enum value. Unknown input is a CategoryValue
// error naming the valid options and, when one is close, a suggestion.
func (n *Normalizer[T]) Normalize(raw string) (T, error) {
	if value, exists := n.validValues[n.normalize(raw)]; exists {
		return value, nil
	}

	var zero T
	msg := fmt.Sprintf("invalid %s %q, valid options: %s", n.enumName, raw, strings.Join(n.validKeys, ", "))
	b := errors.ValueError(msg).WithContext("value", raw)
	if suggestion, ok := n.Suggest(raw); ok {
		b = b.WithContext("suggestion", suggestion)
	}
	return zero, b.Build()
}

// IsValid reports whether raw normalizes to a known value.
func (n *Normalizer[T]) IsValid(raw string) bool {
	_, exists := n.validValues[n.normalize(raw)]
	return exists
}

// Contains checks if a value is one of the enumeration members.
func (n *Normalizer[T]) Contains(value T) bool {
	for _, v := range n.validValues {
		if v == value {
			return true
		}
	}
	return false
}

// Suggest returns the valid key closest to raw by edit distance.
func (n *Normalizer[T]) Suggest(raw string) (string, bool) {
	cleaned := n.normalize(raw)
	best, bestDist := "", maxSuggestionDistance+1
	for _, key := range n.validKeys {
		if d := levenshtein.ComputeDistance(cleaned, key); d < bestDist {
			best, bestDist = key, d
		}
	}
	return best, best != ""
}

// ValidKeys returns all valid normalized keys.
func (n *Normalizer[T]) ValidKeys() []string {
	result := make([]string, len(n.validKeys))
	copy(result, n.validKeys)
	return result
}

// defaultNormalization provides standard string normalization.
func defaultNormalization(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
