// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	locationColor = color.New(color.Bold)
	messageColor  = color.New(color.FgRed)
	ruleColor     = color.New(color.Faint)
	summaryColor  = color.New(color.Bold, color.FgYellow)
)

// Summary returns the count line for r in the supported language closest to
// lang. Numbers use the grouping rules of that language.
func Summary(r *Report, lang language.Tag) string {
	p := message.NewPrinter(resolveLanguage(lang))

	switch n := len(r.Findings); n {
	case 0:
		return p.Sprintf(summaryNone)
	case 1:
		return p.Sprintf(summaryOne)
	default:
		return p.Sprintf(summaryMany, n)
	}
}

// writeText writes one line per finding in the file:line:col form understood
// by editors, followed by the summary.
func writeText(w io.Writer, r *Report, lang language.Tag) error {
	for _, f := range r.Findings {
		_, err := fmt.Fprintf(w, "%s: %s %s\n",
			locationColor.Sprintf("%s:%d:%d", f.File, f.Line, f.Column),
			messageColor.Sprint(f.Message),
			ruleColor.Sprintf("(%s)", f.Rule),
		)
		if err != nil {
			return err
		}
	}

	if len(r.Findings) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, summaryColor.Sprint(Summary(r, lang)))

	return err
}
