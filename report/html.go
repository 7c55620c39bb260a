// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
)

const htmlStyle = `body{font-family:sans-serif;margin:2rem}` +
	`table{border-collapse:collapse}` +
	`td,th{border:1px solid #ccc;padding:.25rem .5rem;text-align:left}` +
	`code{white-space:nowrap}`

// HTML returns a component rendering r as a standalone page.
func HTML(r *Report, lang language.Tag) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		fmt.Fprintf(&b, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", templ.EscapeString(lang.String()))
		b.WriteString("<meta charset=\"utf-8\">\n<title>msglint report</title>\n")
		fmt.Fprintf(&b, "<style>%s</style>\n</head>\n<body>\n", htmlStyle)
		fmt.Fprintf(&b, "<h1>%s</h1>\n", templ.EscapeString(Summary(r, lang)))

		if r.Project != "" {
			fmt.Fprintf(&b, "<p>Project <code>%s</code>, msglint %s</p>\n",
				templ.EscapeString(r.Project), templ.EscapeString(r.Version))
		}

		if len(r.Findings) > 0 {
			b.WriteString("<table>\n<thead><tr><th>Location</th><th>Message</th><th>Rule</th></tr></thead>\n<tbody>\n")

			for _, f := range r.Findings {
				fmt.Fprintf(&b, "<tr><td><code>%s:%d:%d</code></td><td>%s</td><td>%s</td></tr>\n",
					templ.EscapeString(f.File), f.Line, f.Column,
					templ.EscapeString(f.Message),
					ruleLink(f))
			}

			b.WriteString("</tbody>\n</table>\n")
		}

		b.WriteString("</body>\n</html>\n")

		_, err := io.WriteString(w, b.String())

		return err
	})
}

func ruleLink(f Finding) string {
	if f.URL == "" {
		return templ.EscapeString(f.Rule)
	}

	return fmt.Sprintf("<a href=\"%s\">%s</a>",
		templ.EscapeString(string(templ.URL(f.URL))), templ.EscapeString(f.Rule))
}
