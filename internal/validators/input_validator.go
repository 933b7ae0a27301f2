// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldConfirm     = "confirm"
	FieldDisplayName = "display_name"
	FieldCode        = "code"
)

// fieldErrors maps a failing JSON field to the sentinel reported for it.
// The password field is special-cased by tag in sentinelFor.
var fieldErrors = map[string]error{
	FieldEmail:       ErrInvalidEmail,
	FieldConfirm:     ErrPasswordsDoNotMatch,
	FieldDisplayName: ErrInvalidDisplayName,
	FieldCode:        ErrInvalidCode,
}

// InputValidator validates the credential, registration and verification
// code models with go-playground/validator struct tags.
type InputValidator struct {
	validate *validator.Validate
}

func NewInputValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	return &InputValidator{validate: v}
}

// Validate checks obj and returns the sentinel of the first failing field.
// When fields are given, failures on other fields are ignored.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials, *models.Credentials,
		models.Registration, *models.Registration,
		models.VerificationCodeRequest, *models.VerificationCodeRequest:
		return v.validateStruct(value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *InputValidator) validateStruct(obj any, fields ...string) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, fe := range validationErrs {
		if len(fields) > 0 && !slices.Contains(fields, fe.Field()) {
			continue
		}
		return fmt.Errorf("%w: %s failed on %q", sentinelFor(fe), fe.Field(), fe.Tag())
	}
	return nil
}

func sentinelFor(fe validator.FieldError) error {
	if fe.Field() == FieldPassword {
		if fe.Tag() == "required" {
			return ErrEmptyPassword
		}
		return ErrWeakPassword
	}
	if err, ok := fieldErrors[fe.Field()]; ok {
		return err
	}
	return ErrUnsupportedType
}
