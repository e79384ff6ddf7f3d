package enroll

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Record is the four-field data unit collected per wizard session plus the
// submission timestamp. It is mutated page by page while the wizard runs and
// must pass Validate before it may be persisted.
type Record struct {
	FirstName   string `form:"firstName" validate:"required"`
	LastName    string `form:"lastName" validate:"required"`
	Building    string `form:"building" validate:"required"`
	Department  string `form:"department" validate:"required"`
	SubmittedAt time.Time
}

// FullName joins the first and last name the way the persisted line does.
func (r Record) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Validate is the final gate before persistence: every identity field must
// be non-empty. Problems come back as a *ValidationError keyed by the
// documented field names.
func (r Record) Validate() error {
	if err := recordValidator().Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}

		verr := NewValidationError()
		for _, fe := range fieldErrs {
			verr.AddField(fe.Field(), "is required")
		}
		return verr
	}
	return nil
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}
