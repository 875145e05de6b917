package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate = validator.New()

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Validate checks struct tags first, then the rules that span fields.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config cannot be nil", ErrInvalidConfig)
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, formatValidationError(err))
	}

	sim := c.Simulation
	s3 := c.Output.S3

	return NewConfigValidator("config").
		Custom("simulation.epsilon", func() error {
			if math.IsInf(sim.Epsilon, 0) {
				return errors.New("must be finite")
			}
			return nil
		}).
		When(sim.Model == "cnim", func(cv *ConfigValidator) {
			cv.Custom("simulation.seeds", func() error {
				if len(sim.Seeds) != 2 {
					return fmt.Errorf("cnim needs exactly 2 seeds, got %d", len(sim.Seeds))
				}
				return nil
			})
		}).
		When(s3.Enabled(), func(cv *ConfigValidator) {
			cv.Required("output.s3.region", s3.Region)
			cv.Custom("output.s3.access_key_id", func() error {
				if (s3.AccessKeyID == "") != (s3.SecretAccessKey == "") {
					return errors.New("access key id and secret access key must be set together")
				}
				return nil
			})
		}).
		Validate()
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Namespace()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		case "unique":
			return fmt.Errorf("%s: values must be distinct", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}

// ConfigValidator collects cross-field validation errors rather than
// failing on the first one.
type ConfigValidator struct {
	errors []error
	name   string
}

// NewConfigValidator creates a new config validator with the given config name.
func NewConfigValidator(configName string) *ConfigValidator {
	return &ConfigValidator{name: configName}
}

// Required validates that a string field is not empty.
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if value == "" {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: required field is empty", cv.name, field))
	}
	return cv
}

// Custom applies a custom validation function.
func (cv *ConfigValidator) Custom(field string, fn func() error) *ConfigValidator {
	if err := fn(); err != nil {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: %w", cv.name, field, err))
	}
	return cv
}

// When conditionally applies validations if the condition is true.
func (cv *ConfigValidator) When(condition bool, validations func(*ConfigValidator)) *ConfigValidator {
	if condition {
		validations(cv)
	}
	return cv
}

// Validate returns every collected error joined under ErrInvalidConfig.
func (cv *ConfigValidator) Validate() error {
	if len(cv.errors) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(cv.errors...))
}
