package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// addForm mirrors the rules the service applies to new tasks.
type addForm struct {
	Title       string `validate:"required,max=255"`
	Description string `validate:"required,max=2000"`
}

func (b *Board) validateForm(input domain.CreateTaskInput) error {
	err := b.validate.Struct(addForm{Title: input.Title, Description: input.Description})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("task", err.Error(), nil)
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return domain.NewValidationError(field, "must not be empty", nil)
	case "max":
		return domain.NewValidationError(field, fmt.Sprintf("must be at most %s characters", fe.Param()), nil)
	default:
		return domain.NewValidationError(field, "is invalid", nil)
	}
}
