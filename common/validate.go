// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their argument name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("arg"); name != "" {
			return name
		}
		return fld.Name
	})

	return v
}

// ValidateArgs checks the `validate` tags of a struct gathering call
// arguments and reports the first violation as an *ArgumentError.
func ValidateArgs(args interface{}) error {
	err := validate.Struct(args)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]

	reason := fmt.Sprintf("failed %q validation", fe.Tag())
	if fe.Tag() == "required" {
		reason = "cannot be null or empty"
	}

	return &ArgumentError{Field: fe.Field(), Reason: reason}
}

// CleanupPhoneNumber strips everything but digits from a phone number,
// e.g. "+1 (555) 555-5555" becomes "15555555555".
func CleanupPhoneNumber(phoneNumber string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, phoneNumber)

	if cleaned == "" {
		if strings.TrimSpace(phoneNumber) == "" {
			return "", &ArgumentError{Field: "phoneNumber", Reason: "cannot be null or empty"}
		}
		return "", &ArgumentError{Field: "phoneNumber", Reason: "does not contain any digit"}
	}

	return cleaned, nil
}

// RequireArg reports an *ArgumentError naming field when value is empty or
// blank.
func RequireArg(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ArgumentError{Field: field, Reason: "cannot be null or empty"}
	}
	return nil
}
