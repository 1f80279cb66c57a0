package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/wordrush/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks resolved settings and reports the first offending fields in flag terms.
func Validate(s model.Settings) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid settings: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %v (%s)", flagName(fe.Field()), fe.Value(), describeTag(fe)))
	}
	return errors.New(strings.Join(msgs, "\n"))
}

func flagName(field string) string {
	switch field {
	case "Player":
		return "--name"
	case "Mode":
		return "--mode"
	case "Scheme":
		return "--scheme"
	case "PracticeStage":
		return "--stage"
	case "Bank":
		return "--bank"
	case "Backend":
		return "leaderboard.backend"
	case "StorePath":
		return "leaderboard.path"
	case "LogLevel":
		return "log.level"
	case "LogFile":
		return "log.file"
	default:
		return field
	}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "required":
		return "must not be empty"
	default:
		return fe.Tag()
	}
}
