package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// taskFields carries the validated content of a task after trimming.
type taskFields struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=2000"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateTask checks the content of t and reports the first invalid field
// as a *domain.ValidationError.
func validateTask(v *validator.Validate, t *domain.Task) error {
	err := v.Struct(taskFields{Title: t.Title, Description: t.Description})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("task", err.Error(), nil)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.NewValidationError(fe.Field(), "must not be empty", nil)
	case "max":
		return domain.NewValidationError(fe.Field(),
			fmt.Sprintf("must be at most %s characters", fe.Param()), nil)
	default:
		return domain.NewValidationError(fe.Field(), "is invalid", nil)
	}
}
