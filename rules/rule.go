// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package rules

import (
	"fmt"
	"strings"

	"codeberg.org/pixivfe/msglint/messageformat"
)

// Kind identifies a structural violation. Each kind has a fixed message.
type Kind int

// Violation kinds.
const (
	KindPluralOffset Kind = iota + 1
)

var kindMessages = map[Kind]string{
	KindPluralOffset: "offset are not allowed in plural rules",
}

// String returns the fixed report message for k.
func (k Kind) String() string {
	if s, ok := kindMessages[k]; ok {
		return s
	}

	return fmt.Sprintf("violation kind %d", int(k))
}

// Violation is returned by a rule's Verify function for the first disallowed
// construct found in a message.
type Violation struct {
	Kind Kind
	// Element is the offending element.
	Element messageformat.Element
}

func (v *Violation) Error() string {
	return v.Kind.String()
}

// Rule is a structural check over parsed messages.
type Rule struct {
	// Name is the rule identifier, e.g. "no-offset".
	Name string
	Doc  string
	URL  string
	// Verify returns a *Violation for the first disallowed construct in a message,
	// or nil when the message is compliant.
	Verify func(messageformat.Message) error
}

// analyzerName derives a valid Go identifier from r.Name for use as an analyzer name.
func (r *Rule) analyzerName() string {
	return strings.ReplaceAll(r.Name, "-", "")
}
