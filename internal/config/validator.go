package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ardriveapp/arnetwork/internal/common"
	"github.com/ardriveapp/arnetwork/internal/httpclient"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

func newValidator() *validator.Validate {
	validate := validator.New()

	// Report fields by their config file keys.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("responsemode", func(fl validator.FieldLevel) bool {
		if fl.Field().String() == "" {
			return true
		}
		_, err := httpclient.ParseResponseMode(fl.Field().String())
		return err == nil
	})

	return validate
}

// ValidateConfig checks every section and reports all failing fields at once.
// The result unwraps to one *common.ConfigurationError per field, so
// errors.Is(err, common.ErrInvalidConfiguration) holds.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return common.NewConfigurationError("", "", "config is nil")
	}

	err := newValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return common.WrapError(err, "configuration validation error")
	}

	var result *multierror.Error
	for _, e := range errs {
		section, field := splitNamespace(e.Namespace())
		reason := fmt.Sprintf("rule '%s'", e.Tag())
		if e.Param() != "" {
			reason += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			reason += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		result = multierror.Append(result, common.NewConfigurationError(section, field, reason))
	}
	result.ErrorFormat = formatConfigErrors
	return result
}

// splitNamespace turns "GlobalConfig.fetch_config.retries" into
// ("fetch_config", "retries").
func splitNamespace(ns string) (string, string) {
	parts := strings.SplitN(ns, ".", 3)
	switch len(parts) {
	case 3:
		return parts[1], parts[2]
	case 2:
		return parts[1], ""
	default:
		return "", ns
	}
}

func formatConfigErrors(errs []error) string {
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}
	return fmt.Sprintf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
}
