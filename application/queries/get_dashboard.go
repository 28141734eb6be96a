package queries

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"mhtrends-backend/domain/config"
	pkgerrors "mhtrends-backend/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// GetDashboardQuery requests the dashboard payload. Empty fields take
// their configured defaults.
type GetDashboardQuery struct {
	From     string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Platform string `json:"platform" validate:"omitempty,platform"`
}

// Validate checks the raw parameter formats. Range ordering and length are
// checked when the range is resolved against the clock.
func (q GetDashboardQuery) Validate() error {
	err := getValidator().Struct(q)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return pkgerrors.NewValidationError(err.Error())
	}

	// report the first offending parameter
	fe := fieldErrs[0]
	switch fe.Field() {
	case "platform":
		return pkgerrors.NewValidationError(
			fmt.Sprintf("platform must be 1-%d printable characters", config.MaxPlatformLength),
		).WithCode(pkgerrors.CodeInvalidPlatform).
			WithDetail("parameter", "platform")
	default:
		return pkgerrors.NewValidationError(
			fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field()),
		).WithCode(pkgerrors.CodeInvalidDate).
			WithDetail("parameter", fe.Field()).
			WithDetail("value", fe.Value())
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Use JSON tag names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		if err := validate.RegisterValidation("platform", platformValidator); err != nil {
			panic(fmt.Sprintf("register platform validator: %v", err))
		}
	})
	return validate
}

// platformValidator accepts any printable UTF-8 label up to
// MaxPlatformLength runes
func platformValidator(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || !utf8.ValidString(s) || utf8.RuneCountInString(s) > config.MaxPlatformLength {
		return false
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
