// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	errExpectedPointerToStruct = errors.New("expected a pointer to a struct")
	errUnsupportedSliceType    = errors.New("unsupported slice type")
	errUnsupportedFieldType    = errors.New("unsupported field type")
)

// readEnv populates spec, a pointer to a struct, from the environment variables
// named by its `env:"NAME[,overwrite]"` field tags. Nested structs are walked.
//
// Without overwrite, a variable only fills a field that is still zero.
func readEnv(spec any) error {
	structValue := reflect.ValueOf(spec)
	if structValue.Kind() != reflect.Ptr {
		return fmt.Errorf("%w, got %s", errExpectedPointerToStruct, structValue.Kind())
	}

	structValue = structValue.Elem()
	if structValue.Kind() != reflect.Struct {
		return fmt.Errorf("%w, got a pointer to %s", errExpectedPointerToStruct, structValue.Kind())
	}

	structType := structValue.Type()

	for fieldIndex := range structValue.NumField() {
		field := structValue.Field(fieldIndex)
		fieldType := structType.Field(fieldIndex)

		if !fieldType.IsExported() {
			continue
		}

		tag := fieldType.Tag.Get("env")
		if tag == "" {
			if field.Kind() == reflect.Struct {
				if err := readEnv(field.Addr().Interface()); err != nil {
					return err
				}
			}

			continue
		}

		parts := strings.Split(tag, ",")
		envVarName := parts[0]
		overwrite := slices.Contains(parts[1:], "overwrite")

		envValue, exists := os.LookupEnv(envVarName)
		if !exists || !field.CanSet() {
			continue
		}

		if !overwrite && !field.IsZero() {
			continue
		}

		if err := setFieldValue(field, fieldType, envVarName, envValue); err != nil {
			return err
		}
	}

	return nil
}

// setFieldValue sets the field value based on its type.
func setFieldValue(
	field reflect.Value,
	fieldType reflect.StructField,
	envVarName, envValue string,
) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(envValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(envValue, 10, 64)
		if err != nil {
			return fmt.Errorf(
				"failed to parse int for %s from env var %s (%s): %w",
				fieldType.Name, envVarName, envValue, err)
		}

		field.SetInt(intValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return fmt.Errorf(
				"failed to parse bool for %s from env var %s (%s): %w",
				fieldType.Name, envVarName, envValue, err)
		}

		field.SetBool(boolValue)
	case reflect.Slice:
		// Slices are comma-separated lists of strings.
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("%w for field %s", errUnsupportedSliceType, fieldType.Name)
		}

		values := strings.Split(envValue, ",")
		trimmedValues := make([]string, 0, len(values))

		for _, value := range values {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				trimmedValues = append(trimmedValues, trimmed)
			}
		}

		field.Set(reflect.ValueOf(trimmedValues))
	default:
		return fmt.Errorf("%w for field %s: %s", errUnsupportedFieldType, fieldType.Name, field.Kind())
	}

	return nil
}

// useDotEnv loads environment variables from a .env file, checking
// the current working directory, then the directory of the binary.
// Variables that are already set are left alone.
//
// This function soft fails if the .env file doesn't exist in either location.
func useDotEnv() {
	var dirs []string

	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	} else {
		log.Warn().
			Str("sys", "config").
			Err(err).
			Msg("Could not get current working directory")
	}

	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}

	for _, dir := range dirs {
		if tryLoadDotEnv(filepath.Join(dir, ".env")) {
			return
		}
	}
}

// tryLoadDotEnv reports whether the .env file at envPath was loaded.
func tryLoadDotEnv(envPath string) bool {
	err := godotenv.Load(envPath)

	switch {
	case err == nil:
		log.Debug().
			Str("sys", "config").
			Str("path", envPath).
			Msg("Loaded configuration from .env file")

		return true
	case errors.Is(err, fs.ErrNotExist):
		return false
	default:
		log.Warn().
			Str("sys", "config").
			Err(err).
			Str("path", envPath).
			Msg("Could not load .env file")

		return false
	}
}
