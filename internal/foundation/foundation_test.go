package foundation

import (
	"strings"
	"testing"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

func TestOption(t *testing.T) {
	t.Run("Some option", func(t *testing.T) {
		option := Some(0.0)

		if !option.IsSome() {
			t.Error("Expected option to be Some")
		}
		if v, ok := option.Get(); !ok || v != 0.0 {
			t.Errorf("Expected Get to return (0, true), got (%v, %v)", v, ok)
		}
		if option.String() != "Some(0)" {
			t.Errorf("unexpected String() %q", option.String())
		}
	})

	t.Run("None option", func(t *testing.T) {
		option := None[string]()

		if !option.IsNone() {
			t.Error("Expected option to be None")
		}
		if option.UnwrapOr("default") != "default" {
			t.Error("Expected unwrap or to return 'default'")
		}
		if option.String() != "None" {
			t.Errorf("unexpected String() %q", option.String())
		}
	})

	t.Run("Unwrap on None panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic")
			}
		}()
		None[int]().Unwrap()
	})
}

func TestValidatorChain(t *testing.T) {
	positive := func(field string) Validator[float64] {
		return func(v float64) ValidationResult {
			if v < 0 {
				return Invalid(NewValidationError(field, "negative", "must not be negative"))
			}
			return Valid()
		}
	}

	chain := NewValidatorChain(positive("a")).Add(positive("b"))

	if !chain.Validate(1).Valid {
		t.Error("Expected positive value to validate")
	}

	result := chain.Validate(-1)
	if result.Valid {
		t.Fatal("Expected negative value to fail")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("Expected both validators to report, got %d", len(result.Errors))
	}

	err := result.ToError()
	if !errors.HasCategory(err, errors.CategoryValidation) {
		t.Errorf("Expected validation category, got %v", err)
	}
	if !strings.Contains(err.Error(), "a: must not be negative; b: must not be negative") {
		t.Errorf("Expected joined message, got %q", err.Error())
	}
	if Valid().ToError() != nil {
		t.Error("Expected nil error for valid result")
	}
}
