// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package messageformat

// Type identifies the kind of an [Element].
type Type int

// Element types.
const (
	TypeLiteral Type = iota
	TypeArgument
	TypeNumber
	TypeDate
	TypeTime
	TypeSelect
	TypePlural
	TypePound
	TypeTag
)

var typeNames = [...]string{
	TypeLiteral:  "literal",
	TypeArgument: "argument",
	TypeNumber:   "number",
	TypeDate:     "date",
	TypeTime:     "time",
	TypeSelect:   "select",
	TypePlural:   "plural",
	TypePound:    "pound",
	TypeTag:      "tag",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}

	return "unknown"
}

// PluralType distinguishes plural from selectordinal arguments.
type PluralType int

const (
	// Cardinal is used by {n, plural, ...}.
	Cardinal PluralType = iota
	// Ordinal is used by {n, selectordinal, ...}.
	Ordinal
)

// Position is a point in the source message.
// Offset counts bytes; Line and Column are 1-based and Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Location is the half-open source range [Start, End) of a parsed node.
type Location struct {
	Start Position
	End   Position
}

// Message is a parsed message: an ordered sequence of elements.
type Message []Element

// Element is implemented by every node type of a [Message].
type Element interface {
	Type() Type
	Loc() Location
}

// Option is a single selector branch of a select, plural or selectordinal argument.
type Option struct {
	// Selector is a keyword such as "one" or "other", or an exact match such as "=0".
	Selector string
	Value    Message
	Location Location
}

// Options holds the branches of an argument in source order.
type Options []Option

// Get returns the message for selector.
func (o Options) Get(selector string) (Message, bool) {
	for _, opt := range o {
		if opt.Selector == selector {
			return opt.Value, true
		}
	}

	return nil, false
}

// LiteralElement is plain text, with quoting already resolved.
type LiteralElement struct {
	Value    string
	Location Location
}

// ArgumentElement is a simple {name} interpolation.
type ArgumentElement struct {
	Value    string
	Location Location
}

// NumberElement is a {name, number[, style]} argument.
type NumberElement struct {
	Value    string
	Style    string
	Location Location
}

// DateElement is a {name, date[, style]} argument.
type DateElement struct {
	Value    string
	Style    string
	Location Location
}

// TimeElement is a {name, time[, style]} argument.
type TimeElement struct {
	Value    string
	Style    string
	Location Location
}

// SelectElement is a {name, select, ...} argument.
type SelectElement struct {
	Value    string
	Options  Options
	Location Location
}

// PluralElement is a {name, plural, ...} or {name, selectordinal, ...} argument.
type PluralElement struct {
	Value   string
	Options Options
	// Offset is the value of the offset: modifier, or 0 when absent.
	Offset     int
	PluralType PluralType
	Location   Location
}

// PoundElement is a '#' inside a plural option, standing for the formatted number.
type PoundElement struct {
	Location Location
}

// TagElement is a <name>children</name> markup element.
type TagElement struct {
	Value    string
	Children Message
	Location Location
}

func (e *LiteralElement) Type() Type  { return TypeLiteral }
func (e *ArgumentElement) Type() Type { return TypeArgument }
func (e *NumberElement) Type() Type   { return TypeNumber }
func (e *DateElement) Type() Type     { return TypeDate }
func (e *TimeElement) Type() Type     { return TypeTime }
func (e *SelectElement) Type() Type   { return TypeSelect }
func (e *PluralElement) Type() Type   { return TypePlural }
func (e *PoundElement) Type() Type    { return TypePound }
func (e *TagElement) Type() Type      { return TypeTag }

func (e *LiteralElement) Loc() Location  { return e.Location }
func (e *ArgumentElement) Loc() Location { return e.Location }
func (e *NumberElement) Loc() Location   { return e.Location }
func (e *DateElement) Loc() Location     { return e.Location }
func (e *TimeElement) Loc() Location     { return e.Location }
func (e *SelectElement) Loc() Location   { return e.Location }
func (e *PluralElement) Loc() Location   { return e.Location }
func (e *PoundElement) Loc() Location    { return e.Location }
func (e *TagElement) Loc() Location      { return e.Location }
