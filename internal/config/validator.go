package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
	neuerrors "github.com/alexisbeaulieu97/neumorph/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeModes = []string{components.ModeLight.String(), components.ModeDark.String()}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			_, ok := components.ParseMode(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("step", func(fl validator.FieldLevel) bool {
			step := fl.Field().Float()
			return step > 0 && !math.IsInf(step, 0) && !math.IsNaN(step)
		})

		v.RegisterStructValidation(sliderBounds, SliderConfig{})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

func sliderBounds(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(SliderConfig)
	if !(cfg.Max > cfg.Min) {
		sl.ReportError(cfg.Max, "Max", "Max", "gtfield", "Min")
		return
	}
	if cfg.Value < cfg.Min || cfg.Value > cfg.Max {
		sl.ReportError(cfg.Value, "Value", "Value", "within", "")
	}
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return neuerrors.NewValidationError("", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err, cfg)
	}

	seen := make(map[string]int, len(cfg.Select.Options))
	for i, opt := range cfg.Select.Options {
		if first, dup := seen[opt.Value]; dup {
			return neuerrors.NewValidationError(
				fmt.Sprintf("select.options[%d].value", i),
				fmt.Sprintf("duplicate option %q (first at index %d)", opt.Value, first),
				nil,
			)
		}
		seen[opt.Value] = i
	}

	if def := cfg.Select.Default; def != "" {
		i, ok := seen[def]
		if !ok {
			values := make([]string, 0, len(cfg.Select.Options))
			for _, opt := range cfg.Select.Options {
				values = append(values, opt.Value)
			}
			err := neuerrors.NewValidationError("select.default", fmt.Sprintf("unknown option %q", def), nil)
			return neuerrors.WithSuggestion(err, closest(def, values))
		}
		if cfg.Select.Options[i].Disabled {
			return neuerrors.NewValidationError("select.default", fmt.Sprintf("option %q is disabled", def), nil)
		}
	}

	return nil
}

func convertValidationError(err error, cfg *Config) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return neuerrors.NewValidationError("", err.Error(), err)
	}

	fe := ves[0]
	field := yamlishFieldName(fe)
	out := neuerrors.NewValidationError(field, describe(fe), err)
	if fe.Tag() == "theme_mode" {
		out = neuerrors.WithSuggestion(out, closest(cfg.Theme.Mode, themeModes))
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "theme_mode":
		return fmt.Sprintf("unknown mode %q, want one of %s", fe.Value(), strings.Join(themeModes, ", "))
	case "step":
		return "must be a positive number"
	case "gtfield":
		return "must be greater than min"
	case "within":
		return "must lie between min and max"
	case "hexcolor":
		return fmt.Sprintf("%q is not a hex colour", fe.Value())
	case "required":
		return "is required"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}

// yamlishFieldName turns "Config.Select.Options[2].Value" into
// "select.options[2].value".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}

// closest returns the candidate nearest to input by edit distance, or "" when
// none is near enough to be a plausible typo.
func closest(input string, candidates []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	best, bestDist := "", math.MaxInt
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(input, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > max(2, len(input)/2) {
		return ""
	}
	return best
}
