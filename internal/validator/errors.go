package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is one failed rule on one field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Rule    string `json:"rule"`
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Message
	}
	return strings.Join(msgs, "; ")
}

// First returns the first failure's message. Partial-update validation is
// field-at-a-time: the first invalid provided field aborts the request.
func (e ValidationErrors) First() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Message
}

// messageFor renders a human-readable rule description for a field error.
func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "in_mobile":
		return fmt.Sprintf("%s must be a valid 10-digit mobile number starting with 6-9", field)
	case "pan":
		return fmt.Sprintf("%s must be a valid PAN (5 letters, 4 digits, 1 letter)", field)
	case "aadhar":
		return fmt.Sprintf("%s must be a valid 12-digit Aadhar number", field)
	case "ifsc":
		return fmt.Sprintf("%s must be a valid IFSC code", field)
	case "upi":
		return fmt.Sprintf("%s must be a valid UPI ID", field)
	case "license_no":
		return fmt.Sprintf("%s must be between 10 and 20 characters", field)
	case "image_url":
		return fmt.Sprintf("%s must be a valid http(s) URL", field)
	case "date_ymd":
		return fmt.Sprintf("%s must be a valid date in YYYY-MM-DD format", field)
	case "dob":
		return fmt.Sprintf("%s must be a valid YYYY-MM-DD date for an age between 13 and 120", field)
	case "reg_no":
		return fmt.Sprintf("%s must be a valid vehicle registration number", field)
	case "pincode":
		return fmt.Sprintf("%s must be a valid 6-digit pincode", field)
	case "hhmm":
		return fmt.Sprintf("%s must be a valid time in HH:MM format", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters or items", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters or items", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
