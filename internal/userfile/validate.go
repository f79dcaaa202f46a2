package userfile

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/ranges"
)

var documentValidate *validator.Validate

func init() {
	documentValidate = validator.New()
	documentValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = documentValidate.RegisterValidation("reduction_mode", parses(enums.ParseReductionMode))
	_ = documentValidate.RegisterValidation("dimensionality", parses(enums.ParseReductionDimensionality))
	_ = documentValidate.RegisterValidation("step_type", parses(enums.ParseRangeStepType))
	_ = documentValidate.RegisterValidation("sample_shape", parses(enums.ParseSampleShape))
	_ = documentValidate.RegisterValidation("save_type", parses(enums.ParseSaveType))
	_ = documentValidate.RegisterValidation("range_list", parses(ranges.Parse))
}

func parses[T any](parse func(string) (T, error)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := parse(fl.Field().String())
		return err == nil
	}
}

// Validate checks every field of doc and reports all failures at once as a
// validation error.
func (doc *Document) Validate() error {
	err := documentValidate.Struct(doc)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.WrapError(err, errors.CategoryInternal, "user file validation failed").Build()
	}

	result := foundation.Valid()
	for _, fe := range verrs {
		result = result.Combine(foundation.Invalid(
			foundation.NewValidationError(fieldPath(fe), fe.Tag(), describe(fe)),
		))
	}
	return result.ToError()
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must not be empty"
	case "range_list":
		return "is not a valid range list"
	default:
		return fmt.Sprintf("invalid %s %q", strings.ReplaceAll(fe.Tag(), "_", " "), fmt.Sprint(fe.Value()))
	}
}
