// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

// ErrUnknownFormat is returned by Write for formats it does not support.
var ErrUnknownFormat = errors.New("unknown report format")

// Options control how a report is written.
type Options struct {
	Format Format
	// Language localises the summary line of the text and HTML formats.
	Language language.Tag
}

// Write renders r to w.
func Write(ctx context.Context, w io.Writer, r *Report, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, r, opts.Language)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode JSON report: %w", err)
		}

		return nil
	case FormatYAML:
		data, err := yaml.MarshalWithOptions(r, yaml.Indent(2))
		if err != nil {
			return fmt.Errorf("failed to encode YAML report: %w", err)
		}

		_, err = w.Write(data)

		return err
	case FormatHTML:
		return HTML(r, opts.Language).Render(ctx, w)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}
