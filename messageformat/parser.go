// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package messageformat

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseOptions controls parsing.
type ParseOptions struct {
	// IgnoreTag treats '<' and '>' as literal text instead of markup.
	IgnoreTag bool
	// AllowMissingOther accepts select and plural arguments without an "other" option.
	AllowMissingOther bool
}

// Argument kinds that change how nested messages are parsed.
const (
	argNone          = ""
	argSelect        = "select"
	argPlural        = "plural"
	argSelectOrdinal = "selectordinal"
)

type parser struct {
	src  string
	pos  Position
	opts ParseOptions
}

// Parse parses src into a [Message].
func Parse(src string, opts ParseOptions) (Message, error) {
	p := &parser{
		src:  src,
		pos:  Position{Offset: 0, Line: 1, Column: 1},
		opts: opts,
	}

	return p.parseMessage(0, argNone, false)
}

func (p *parser) eof() bool {
	return p.pos.Offset >= len(p.src)
}

// char returns the rune at the current position, or -1 at EOF.
func (p *parser) char() rune {
	if p.eof() {
		return -1
	}

	r, _ := utf8.DecodeRuneInString(p.src[p.pos.Offset:])

	return r
}

// peek returns the rune after the current one, or -1.
func (p *parser) peek() rune {
	if p.eof() {
		return -1
	}

	_, size := utf8.DecodeRuneInString(p.src[p.pos.Offset:])
	if p.pos.Offset+size >= len(p.src) {
		return -1
	}

	r, _ := utf8.DecodeRuneInString(p.src[p.pos.Offset+size:])

	return r
}

func (p *parser) bump() {
	if p.eof() {
		return
	}

	r, size := utf8.DecodeRuneInString(p.src[p.pos.Offset:])

	p.pos.Offset += size
	if r == '\n' {
		p.pos.Line++
		p.pos.Column = 1
	} else {
		p.pos.Column++
	}
}

// bumpIf consumes prefix if the input continues with it.
func (p *parser) bumpIf(prefix string) bool {
	if !strings.HasPrefix(p.src[p.pos.Offset:], prefix) {
		return false
	}

	p.bumpTo(p.pos.Offset + len(prefix))

	return true
}

// bumpUntil moves to the next occurrence of pattern, or to EOF when there is none.
func (p *parser) bumpUntil(pattern string) bool {
	idx := strings.Index(p.src[p.pos.Offset:], pattern)
	if idx < 0 {
		p.bumpTo(len(p.src))

		return false
	}

	p.bumpTo(p.pos.Offset + idx)

	return true
}

func (p *parser) bumpTo(offset int) {
	for !p.eof() && p.pos.Offset < offset {
		p.bump()
	}
}

func (p *parser) skipSpace() {
	for !p.eof() && isWhiteSpace(p.char()) {
		p.bump()
	}
}

func (p *parser) errorAt(kind ErrorKind, start, end Position) error {
	return &SyntaxError{
		Kind:     kind,
		Location: Location{Start: start, End: end},
		Message:  p.src,
	}
}

func (p *parser) parseMessage(nesting int, parentArg string, expectingCloseTag bool) (Message, error) {
	var elements Message

	for !p.eof() {
		ch := p.char()

		switch {
		case ch == '{':
			el, err := p.parseArgument(nesting, expectingCloseTag)
			if err != nil {
				return nil, err
			}

			elements = append(elements, el)

		case ch == '}' && nesting > 0:
			return elements, nil

		case ch == '#' && isPluralArg(parentArg):
			start := p.pos
			p.bump()

			elements = append(elements, &PoundElement{Location: Location{Start: start, End: p.pos}})

		case ch == '<' && !p.opts.IgnoreTag && p.peek() == '/':
			if expectingCloseTag {
				return elements, nil
			}

			start := p.pos

			return nil, p.errorAt(ErrUnmatchedClosingTag, start, start)

		case ch == '<' && !p.opts.IgnoreTag && isAlpha(p.peek()):
			el, err := p.parseTag(nesting, parentArg)
			if err != nil {
				return nil, err
			}

			elements = append(elements, el)

		default:
			elements = append(elements, p.parseLiteral(nesting, parentArg))
		}
	}

	return elements, nil
}

// parseTag parses <name>children</name>. A self-closing <name/> becomes literal text.
func (p *parser) parseTag(nesting int, parentArg string) (Element, error) {
	start := p.pos
	p.bump() // '<'

	name := p.parseTagName()
	p.skipSpace()

	if p.bumpIf("/>") {
		return &LiteralElement{
			Value:    "<" + name + "/>",
			Location: Location{Start: start, End: p.pos},
		}, nil
	}

	if !p.bumpIf(">") {
		return nil, p.errorAt(ErrInvalidTag, start, p.pos)
	}

	children, err := p.parseMessage(nesting+1, parentArg, true)
	if err != nil {
		return nil, err
	}

	endTagStart := p.pos
	if !p.bumpIf("</") {
		return nil, p.errorAt(ErrUnclosedTag, start, p.pos)
	}

	if p.eof() || !isAlpha(p.char()) {
		return nil, p.errorAt(ErrInvalidTag, endTagStart, p.pos)
	}

	closingStart := p.pos

	closing := p.parseTagName()
	if closing != name {
		return nil, p.errorAt(ErrUnmatchedClosingTag, closingStart, p.pos)
	}

	p.skipSpace()

	if !p.bumpIf(">") {
		return nil, p.errorAt(ErrInvalidTag, endTagStart, p.pos)
	}

	return &TagElement{
		Value:    name,
		Children: children,
		Location: Location{Start: start, End: p.pos},
	}, nil
}

func (p *parser) parseTagName() string {
	start := p.pos.Offset
	for !p.eof() && isTagNameChar(p.char()) {
		p.bump()
	}

	return p.src[start:p.pos.Offset]
}

func (p *parser) parseLiteral(nesting int, parentArg string) *LiteralElement {
	start := p.pos

	var b strings.Builder

	for {
		if s, ok := p.tryParseQuote(parentArg); ok {
			b.WriteString(s)

			continue
		}

		if r, ok := p.tryParseUnquoted(nesting, parentArg); ok {
			b.WriteRune(r)

			continue
		}

		if p.tryParseLeftAngleBracket() {
			b.WriteByte('<')

			continue
		}

		break
	}

	return &LiteralElement{
		Value:    b.String(),
		Location: Location{Start: start, End: p.pos},
	}
}

func (p *parser) tryParseLeftAngleBracket() bool {
	if p.eof() || p.char() != '<' {
		return false
	}

	if !p.opts.IgnoreTag {
		next := p.peek()
		if isAlpha(next) || next == '/' {
			return false
		}
	}

	p.bump()

	return true
}

// tryParseQuote handles apostrophe quoting. An apostrophe only starts a quoted
// run when it precedes a syntax character; '' is always an escaped apostrophe.
func (p *parser) tryParseQuote(parentArg string) (string, bool) {
	if p.eof() || p.char() != '\'' {
		return "", false
	}

	switch p.peek() {
	case '{', '<', '>', '}':
	case '#':
		if !isPluralArg(parentArg) {
			return "", false
		}
	case '\'':
		p.bump()
		p.bump()

		return "'", true
	default:
		return "", false
	}

	p.bump() // opening apostrophe

	var b strings.Builder

	b.WriteRune(p.char())
	p.bump()

	for !p.eof() {
		ch := p.char()
		if ch == '\'' {
			if p.peek() != '\'' {
				p.bump() // optional closing apostrophe

				break
			}

			b.WriteRune('\'')
			p.bump()
		} else {
			b.WriteRune(ch)
		}

		p.bump()
	}

	return b.String(), true
}

func (p *parser) tryParseUnquoted(nesting int, parentArg string) (rune, bool) {
	if p.eof() {
		return 0, false
	}

	ch := p.char()
	if ch == '<' || ch == '{' ||
		(ch == '#' && isPluralArg(parentArg)) ||
		(ch == '}' && nesting > 0) {
		return 0, false
	}

	p.bump()

	return ch, true
}

func (p *parser) parseArgument(nesting int, expectingCloseTag bool) (Element, error) {
	open := p.pos
	p.bump() // '{'

	p.skipSpace()

	if p.eof() {
		return nil, p.errorAt(ErrExpectArgumentClosingBrace, open, p.pos)
	}

	if p.char() == '}' {
		p.bump()

		return nil, p.errorAt(ErrEmptyArgument, open, p.pos)
	}

	value := p.parseIdentifier()
	if value == "" {
		return nil, p.errorAt(ErrMalformedArgument, open, p.pos)
	}

	p.skipSpace()

	if p.eof() {
		return nil, p.errorAt(ErrExpectArgumentClosingBrace, open, p.pos)
	}

	switch p.char() {
	case '}':
		p.bump()

		return &ArgumentElement{
			Value:    value,
			Location: Location{Start: open, End: p.pos},
		}, nil
	case ',':
		p.bump()
		p.skipSpace()

		if p.eof() {
			return nil, p.errorAt(ErrExpectArgumentClosingBrace, open, p.pos)
		}

		return p.parseArgumentOptions(nesting, expectingCloseTag, value, open)
	default:
		return nil, p.errorAt(ErrMalformedArgument, open, p.pos)
	}
}

func (p *parser) parseArgumentOptions(nesting int, expectingCloseTag bool, value string, open Position) (Element, error) {
	typeStart := p.pos
	argType := p.parseIdentifier()
	typeEnd := p.pos

	switch argType {
	case "":
		return nil, p.errorAt(ErrExpectArgumentType, typeStart, typeEnd)

	case "number", "date", "time":
		p.skipSpace()

		var style string

		if p.bumpIf(",") {
			p.skipSpace()

			styleStart := p.pos

			s, err := p.parseSimpleArgStyle()
			if err != nil {
				return nil, err
			}

			style = strings.TrimRightFunc(s, isWhiteSpace)
			if style == "" {
				return nil, p.errorAt(ErrExpectArgumentStyle, styleStart, p.pos)
			}
		}

		if err := p.tryParseArgumentClose(open); err != nil {
			return nil, err
		}

		loc := Location{Start: open, End: p.pos}

		switch argType {
		case "number":
			return &NumberElement{Value: value, Style: style, Location: loc}, nil
		case "date":
			return &DateElement{Value: value, Style: style, Location: loc}, nil
		default:
			return &TimeElement{Value: value, Style: style, Location: loc}, nil
		}

	case argPlural, argSelectOrdinal, argSelect:
		p.skipSpace()

		if !p.bumpIf(",") {
			return nil, p.errorAt(ErrExpectSelectArgumentOptions, typeEnd, p.pos)
		}

		p.skipSpace()

		selectorStart := p.pos
		selector := p.parseIdentifier()
		offset := 0

		if argType != argSelect && selector == "offset" {
			if !p.bumpIf(":") {
				return nil, p.errorAt(ErrExpectPluralArgumentOffsetValue, p.pos, p.pos)
			}

			p.skipSpace()

			n, err := p.tryParseDecimalInteger(ErrExpectPluralArgumentOffsetValue, ErrInvalidPluralArgumentOffsetValue)
			if err != nil {
				return nil, err
			}

			p.skipSpace()

			selectorStart = p.pos
			selector = p.parseIdentifier()
			offset = n
		}

		options, err := p.parseOptions(nesting, argType, expectingCloseTag, selector, selectorStart)
		if err != nil {
			return nil, err
		}

		if err := p.tryParseArgumentClose(open); err != nil {
			return nil, err
		}

		loc := Location{Start: open, End: p.pos}

		if argType == argSelect {
			return &SelectElement{Value: value, Options: options, Location: loc}, nil
		}

		pluralType := Cardinal
		if argType == argSelectOrdinal {
			pluralType = Ordinal
		}

		return &PluralElement{
			Value:      value,
			Options:    options,
			Offset:     offset,
			PluralType: pluralType,
			Location:   loc,
		}, nil

	default:
		return nil, p.errorAt(ErrInvalidArgumentType, typeStart, typeEnd)
	}
}

func (p *parser) tryParseArgumentClose(open Position) error {
	if p.eof() || p.char() != '}' {
		return p.errorAt(ErrExpectArgumentClosingBrace, open, p.pos)
	}

	p.bump()

	return nil
}

// parseSimpleArgStyle reads a number/date/time style up to the closing brace of
// the argument, keeping balanced nested braces and quoted runs.
func (p *parser) parseSimpleArgStyle() (string, error) {
	start := p.pos.Offset
	nested := 0

	for !p.eof() {
		switch p.char() {
		case '\'':
			p.bump()

			quoteStart := p.pos
			if !p.bumpUntil("'") {
				return "", p.errorAt(ErrUnclosedQuoteInArgumentStyle, quoteStart, p.pos)
			}

			p.bump()
		case '{':
			nested++

			p.bump()
		case '}':
			if nested == 0 {
				return p.src[start:p.pos.Offset], nil
			}

			nested--

			p.bump()
		default:
			p.bump()
		}
	}

	return p.src[start:p.pos.Offset], nil
}

func (p *parser) parseOptions(
	nesting int,
	argType string,
	expectingCloseTag bool,
	selector string,
	selectorStart Position,
) (Options, error) {
	var (
		options  Options
		seen     = map[string]struct{}{}
		hasOther bool
	)

	for {
		if selector == "" {
			start := p.pos
			if argType == argSelect || !p.bumpIf("=") {
				break
			}

			if _, err := p.tryParseDecimalInteger(ErrExpectPluralArgumentSelector, ErrInvalidPluralArgumentSelector); err != nil {
				return nil, err
			}

			selectorStart = start
			selector = p.src[start.Offset:p.pos.Offset]
		}

		if _, dup := seen[selector]; dup {
			kind := ErrDuplicatePluralArgumentSelector
			if argType == argSelect {
				kind = ErrDuplicateSelectArgumentSelector
			}

			return nil, p.errorAt(kind, selectorStart, p.pos)
		}

		if selector == "other" {
			hasOther = true
		}

		p.skipSpace()

		open := p.pos
		if !p.bumpIf("{") {
			kind := ErrExpectPluralArgumentSelectorFragment
			if argType == argSelect {
				kind = ErrExpectSelectArgumentSelectorFragment
			}

			return nil, p.errorAt(kind, p.pos, p.pos)
		}

		fragment, err := p.parseMessage(nesting+1, argType, expectingCloseTag)
		if err != nil {
			return nil, err
		}

		if err := p.tryParseArgumentClose(open); err != nil {
			return nil, err
		}

		options = append(options, Option{
			Selector: selector,
			Value:    fragment,
			Location: Location{Start: selectorStart, End: p.pos},
		})
		seen[selector] = struct{}{}

		p.skipSpace()

		selectorStart = p.pos
		selector = p.parseIdentifier()
	}

	if len(options) == 0 {
		kind := ErrExpectPluralArgumentSelector
		if argType == argSelect {
			kind = ErrExpectSelectArgumentSelector
		}

		return nil, p.errorAt(kind, p.pos, p.pos)
	}

	if !p.opts.AllowMissingOther && !hasOther {
		return nil, p.errorAt(ErrMissingOtherClause, p.pos, p.pos)
	}

	return options, nil
}

func (p *parser) tryParseDecimalInteger(expectKind, invalidKind ErrorKind) (int, error) {
	start := p.pos
	sign := 1

	if p.bumpIf("-") {
		sign = -1
	} else {
		p.bumpIf("+")
	}

	digitsStart := p.pos.Offset
	for !p.eof() && p.char() >= '0' && p.char() <= '9' {
		p.bump()
	}

	digits := p.src[digitsStart:p.pos.Offset]
	if digits == "" {
		return 0, p.errorAt(expectKind, start, p.pos)
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, p.errorAt(invalidKind, start, p.pos)
	}

	return sign * n, nil
}

// parseIdentifier reads characters up to the next white space or pattern syntax character.
func (p *parser) parseIdentifier() string {
	start := p.pos.Offset
	for !p.eof() {
		ch := p.char()
		if isWhiteSpace(ch) || unicode.Is(unicode.Pattern_Syntax, ch) {
			break
		}

		p.bump()
	}

	return p.src[start:p.pos.Offset]
}

func isPluralArg(arg string) bool {
	return arg == argPlural || arg == argSelectOrdinal
}

func isWhiteSpace(r rune) bool {
	return unicode.Is(unicode.Pattern_White_Space, r)
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isTagNameChar(r rune) bool {
	switch {
	case r == '-', r == '.', r == '_', r == 0xB7:
		return true
	case r >= '0' && r <= '9':
		return true
	default:
		return unicode.IsLetter(r)
	}
}
