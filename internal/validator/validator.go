package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with the domain's format rules
// registered as struct tags. Field names in errors use the JSON tag so the
// message names the wire-level field the caller sent.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v := &Validator{validate: validate}
	v.registerFormatRules()

	return v
}

// Validate runs struct validation and translates failures into
// ValidationErrors. Returns nil when the struct is valid.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "request", Message: err.Error(), Rule: "invalid"}}
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Rule:    fe.Tag(),
		})
	}
	return out
}

func (v *Validator) registerFormatRules() {
	// The built-in email rule is replaced with the platform's looser
	// local@domain.tld shape check.
	mustRegister(v.validate, "email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})

	mustRegister(v.validate, "in_mobile", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})

	mustRegister(v.validate, "pan", func(fl validator.FieldLevel) bool {
		return IsValidPAN(fl.Field().String())
	})

	mustRegister(v.validate, "aadhar", func(fl validator.FieldLevel) bool {
		return IsValidAadhar(fl.Field().String())
	})

	mustRegister(v.validate, "ifsc", func(fl validator.FieldLevel) bool {
		return IsValidIFSC(fl.Field().String())
	})

	mustRegister(v.validate, "upi", func(fl validator.FieldLevel) bool {
		return IsValidUPI(fl.Field().String())
	})

	mustRegister(v.validate, "license_no", func(fl validator.FieldLevel) bool {
		return IsValidLicenseNumber(fl.Field().String())
	})

	mustRegister(v.validate, "image_url", func(fl validator.FieldLevel) bool {
		return IsValidImageURL(fl.Field().String())
	})

	mustRegister(v.validate, "date_ymd", func(fl validator.FieldLevel) bool {
		return IsValidDateFormat(fl.Field().String())
	})

	mustRegister(v.validate, "dob", func(fl validator.FieldLevel) bool {
		return IsValidBirthDate(fl.Field().String(), time.Now())
	})

	mustRegister(v.validate, "reg_no", func(fl validator.FieldLevel) bool {
		return IsValidRegistrationNumber(fl.Field().String())
	})

	mustRegister(v.validate, "pincode", func(fl validator.FieldLevel) bool {
		return IsValidPincode(fl.Field().String())
	})

	mustRegister(v.validate, "hhmm", func(fl validator.FieldLevel) bool {
		return IsValidTimeHHMM(fl.Field().String())
	})
}

func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}
