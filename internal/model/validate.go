package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the validator instance for model descriptors.
// Initialized in init() with the struct level rules.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(gameStructLevel, Game{})
}

// gameStructLevel enforces that a game needing moves has buttons to press.
func gameStructLevel(sl validator.StructLevel) {
	game, ok := sl.Current().Interface().(Game)
	if !ok {
		return
	}

	if game.Moves > 0 && len(game.Catalog) == 0 {
		sl.ReportError(game.Catalog, "Catalog", "Catalog", "catalog_required", "")
	}
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "gte":
			parts = append(parts, fmt.Sprintf("%s must be >= %s", strings.ToLower(fe.Field()), fe.Param()))
		case "catalog_required":
			parts = append(parts, "at least one action is required when moves > 0")
		default:
			parts = append(parts, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}

	return strings.Join(parts, "; ")
}
