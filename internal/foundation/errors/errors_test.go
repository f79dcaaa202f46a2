package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryValue, "value out of range").
			WithSeverity(SeverityFatal).
			WithContext("attribute", "sample_offset").
			Build()

		if err.Category() != CategoryValue {
			t.Errorf("expected category %s, got %s", CategoryValue, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "value out of range" {
			t.Errorf("expected message 'value out of range', got %s", err.Message())
		}

		attr, exists := err.Context().GetString("attribute")
		if !exists || attr != "sample_offset" {
			t.Errorf("expected context attribute=sample_offset, got %v", attr)
		}
	})

	t.Run("Error detection through wrapping", func(t *testing.T) {
		base := ParseError("cannot parse 9-5").Build()
		wrapped := fmt.Errorf("event slices: %w", base)

		if !IsClassified(wrapped) {
			t.Error("expected wrapped error to be classified")
		}
		if !HasCategory(wrapped, CategoryParse) {
			t.Error("expected wrapped error to have parse category")
		}
		if GetCategory(errors.New("plain")) != CategoryInternal {
			t.Error("expected plain errors to default to internal")
		}
	})

	t.Run("Sentinel matching", func(t *testing.T) {
		sentinel := BuilderError("builder already used").Build()
		err := fmt.Errorf("second build: %w", BuilderError("builder already used").WithContext("phase", "built").Build())

		if !errors.Is(err, sentinel) {
			t.Error("expected errors.Is to match on category and message")
		}
	})

	t.Run("WithContext copies", func(t *testing.T) {
		base := ValueError("bad").Build()
		derived := base.WithContext("k", "v")

		if _, ok := base.Context().Get("k"); ok {
			t.Error("expected original context to be unchanged")
		}
		if v, _ := derived.Context().GetString("k"); v != "v" {
			t.Errorf("expected derived context k=v, got %q", v)
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("disk full")
		err := WrapError(originalErr, CategoryStore, "save snapshot").
			Warning().
			WithContext("path", "states.db").
			Build()

		if err.Category() != CategoryStore {
			t.Errorf("expected category %s, got %s", CategoryStore, err.Category())
		}
		if err.Severity() != SeverityWarning {
			t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}
		if err.Error() != "[store] save snapshot: disk full" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			severity ErrorSeverity
			retry    RetryStrategy
		}{
			{"TypeError", TypeError("test"), CategoryType, SeverityError, RetryUserAction},
			{"ValueError", ValueError("test"), CategoryValue, SeverityError, RetryUserAction},
			{"ValidationError", ValidationError("test"), CategoryValidation, SeverityError, RetryUserAction},
			{"ParseError", ParseError("test"), CategoryParse, SeverityError, RetryUserAction},
			{"BuilderError", BuilderError("test"), CategoryBuilder, SeverityError, RetryNever},
			{"UnsupportedInstrumentError", UnsupportedInstrumentError("test"), CategoryUnsupportedInstrument, SeverityError, RetryUserAction},
			{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal, RetryNever},
			{"StoreError", StoreError("test"), CategoryStore, SeverityError, RetryNever},
			{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal, RetryNever},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if err.Severity() != tt.severity {
					t.Errorf("expected severity %s, got %s", tt.severity, err.Severity())
				}
				if err.RetryStrategy() != tt.retry {
					t.Errorf("expected retry strategy %s, got %s", tt.retry, err.RetryStrategy())
				}
			})
		}
	})
}

func TestErrorContext(t *testing.T) {
	ctx := make(ErrorContext)
	ctx = ctx.Set("key1", "value1")
	ctx = ctx.Set("key2", 42)

	if v, ok := ctx.GetString("key1"); !ok || v != "value1" {
		t.Errorf("expected key1=value1, got %v", v)
	}
	if _, ok := ctx.GetString("key2"); ok {
		t.Error("expected key2 not to be a string")
	}

	merged := ctx.Merge(ErrorContext{"key1": "override"})
	if v, _ := merged.GetString("key1"); v != "override" {
		t.Errorf("expected merge to prefer other, got %v", v)
	}
	var nilCtx ErrorContext
	if _, ok := nilCtx.Get("x"); ok {
		t.Error("expected nil context lookup to miss")
	}
}
