package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/coursehub/storefront/internal/core/domain"
)

var referralCodeChars = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// requestValidator adapts go-playground/validator to echo.Validator.
type requestValidator struct {
	v *validator.Validate
}

// NewValidator builds the validator used for every bound request. Messages
// name fields by their json or query key and know two storefront tags:
// role (a known role name) and referral_code (letters, digits and dashes).
func NewValidator() *requestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(wireName)
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseRole(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("referral_code", func(fl validator.FieldLevel) bool {
		return referralCodeChars.MatchString(fl.Field().String())
	})
	return &requestValidator{v: v}
}

func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		if name, _, _ := strings.Cut(f.Tag.Get(tag), ","); name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}

	msgs := make([]string, len(fields))
	for i, fe := range fields {
		msgs[i] = describe(fe)
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "role":
		names := make([]string, len(domain.AllRoles))
		for i, r := range domain.AllRoles {
			names[i] = string(r)
		}
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(names, " "))
	case "referral_code":
		return field + " may only contain letters, digits and dashes"
	}
	return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
}
