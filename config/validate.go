// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var errInvalidConfig = errors.New("invalid configuration")

var structValidator = newValidator()

// newValidator returns a validator that also understands the goident and
// bcp47 tags.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation("bcp47", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())

		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}

// validate checks the configuration against its validate struct tags.
func (cfg *Config) validate() error {
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}

	return nil
}

// LanguageTag returns the parsed report language, falling back to English.
func (cfg *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(cfg.Report.Language)
	if err != nil {
		return language.English
	}

	return tag
}
