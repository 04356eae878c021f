package domain

import (
	"fmt"
	"regexp"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// validate is shared by the field-level checks below; hex colors reuse the
// validator's builtin "hexcolor" rule (#RGB or #RRGGBB).
var validate = validator.New()

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

func validateNotEmpty(value, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty: %w", fieldName, apperrors.ErrValidation)
	}
	return nil
}

func validateMaxLength(value string, maxLength int, fieldName string) error {
	if len(value) > maxLength {
		return fmt.Errorf("%s exceeds maximum length of %d: %w", fieldName, maxLength, apperrors.ErrValidation)
	}
	return nil
}

func validateID(id string) error {
	if err := validateNotEmpty(id, "ID"); err != nil {
		return err
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid ID format %q: %w", id, apperrors.ErrValidation)
	}
	return nil
}

func validateColor(color string) error {
	if err := validateNotEmpty(color, "color"); err != nil {
		return err
	}
	if err := validate.Var(color, "hexcolor"); err != nil {
		return fmt.Errorf("invalid color format %q, expected #RGB or #RRGGBB: %w", color, apperrors.ErrValidation)
	}
	return nil
}
