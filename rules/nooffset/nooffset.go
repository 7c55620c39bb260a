// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package nooffset reports ICU messages whose plural arguments declare an
// offset, as in "{count, plural, offset:1 one {...} other {...}}".
package nooffset

import (
	"codeberg.org/pixivfe/msglint/messageformat"
	"codeberg.org/pixivfe/msglint/rules"
)

// Rule describes the no-offset check.
var Rule = &rules.Rule{
	Name:   "no-offset",
	Doc:    "Disallow offset in plural rules",
	URL:    "https://formatjs.io/docs/tooling/linter#no-offset",
	Verify: Verify,
}

// Analyzer runs Rule as a go/analysis pass.
var Analyzer = rules.NewAnalyzer(Rule)

// Verify returns a *rules.Violation for the first plural argument with a
// non-zero offset, searching select and plural options in order. Tags are not
// entered.
func Verify(msg messageformat.Message) error {
	for _, el := range msg {
		switch el := el.(type) {
		case *messageformat.PluralElement:
			if el.Offset != 0 {
				return &rules.Violation{Kind: rules.KindPluralOffset, Element: el}
			}

			if err := verifyOptions(el.Options); err != nil {
				return err
			}
		case *messageformat.SelectElement:
			if err := verifyOptions(el.Options); err != nil {
				return err
			}
		}
	}

	return nil
}

func verifyOptions(opts messageformat.Options) error {
	for _, opt := range opts {
		if err := Verify(opt.Value); err != nil {
			return err
		}
	}

	return nil
}
