// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package messageformat

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("messageformat: syntax error")

// ErrorKind classifies a [SyntaxError].
type ErrorKind int

// Syntax error kinds.
const (
	ErrExpectArgumentClosingBrace ErrorKind = iota + 1
	ErrEmptyArgument
	ErrMalformedArgument
	ErrExpectArgumentType
	ErrInvalidArgumentType
	ErrExpectArgumentStyle
	ErrUnclosedQuoteInArgumentStyle
	ErrExpectSelectArgumentOptions
	ErrExpectPluralArgumentOffsetValue
	ErrInvalidPluralArgumentOffsetValue
	ErrExpectSelectArgumentSelector
	ErrExpectPluralArgumentSelector
	ErrExpectSelectArgumentSelectorFragment
	ErrExpectPluralArgumentSelectorFragment
	ErrInvalidPluralArgumentSelector
	ErrDuplicateSelectArgumentSelector
	ErrDuplicatePluralArgumentSelector
	ErrMissingOtherClause
	ErrInvalidTag
	ErrUnmatchedClosingTag
	ErrUnclosedTag
)

var errorKindText = map[ErrorKind]string{
	ErrExpectArgumentClosingBrace:           "expected argument closing brace",
	ErrEmptyArgument:                        "empty argument",
	ErrMalformedArgument:                    "malformed argument",
	ErrExpectArgumentType:                   "expected argument type",
	ErrInvalidArgumentType:                  "invalid argument type",
	ErrExpectArgumentStyle:                  "expected argument style",
	ErrUnclosedQuoteInArgumentStyle:         "unclosed quote in argument style",
	ErrExpectSelectArgumentOptions:          "expected select argument options",
	ErrExpectPluralArgumentOffsetValue:      "expected plural offset value",
	ErrInvalidPluralArgumentOffsetValue:     "invalid plural offset value",
	ErrExpectSelectArgumentSelector:         "expected select selector",
	ErrExpectPluralArgumentSelector:         "expected plural selector",
	ErrExpectSelectArgumentSelectorFragment: "expected select option body",
	ErrExpectPluralArgumentSelectorFragment: "expected plural option body",
	ErrInvalidPluralArgumentSelector:        "invalid plural selector",
	ErrDuplicateSelectArgumentSelector:      "duplicate select selector",
	ErrDuplicatePluralArgumentSelector:      "duplicate plural selector",
	ErrMissingOtherClause:                   "missing other clause",
	ErrInvalidTag:                           "invalid tag",
	ErrUnmatchedClosingTag:                  "unmatched closing tag",
	ErrUnclosedTag:                          "unclosed tag",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindText[k]; ok {
		return s
	}

	return fmt.Sprintf("error kind %d", int(k))
}

// SyntaxError reports malformed message syntax.
type SyntaxError struct {
	Kind     ErrorKind
	Location Location
	// Message is the full source being parsed.
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("messageformat: %s at line %d, column %d",
		e.Kind, e.Location.Start.Line, e.Location.Start.Column)
}

// Is reports whether target is [ErrSyntax].
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}
