// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package messageformat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteralAndArgument(t *testing.T) {
	t.Parallel()

	msg, err := Parse("Hello {name}!", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, msg, 3)

	lit, ok := msg[0].(*LiteralElement)
	require.True(t, ok)
	assert.Equal(t, "Hello ", lit.Value)

	arg, ok := msg[1].(*ArgumentElement)
	require.True(t, ok)
	assert.Equal(t, "name", arg.Value)
	assert.Equal(t, 6, arg.Location.Start.Offset)
	assert.Equal(t, 12, arg.Location.End.Offset)

	assert.Equal(t, TypeLiteral, msg[2].Type())
}

func TestParsePlural(t *testing.T) {
	t.Parallel()

	msg, err := Parse("{count, plural, offset:1 =0 {none} one {# item} other {# items}}", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, msg, 1)

	plural, ok := msg[0].(*PluralElement)
	require.True(t, ok)

	assert.Equal(t, "count", plural.Value)
	assert.Equal(t, 1, plural.Offset)
	assert.Equal(t, Cardinal, plural.PluralType)
	require.Len(t, plural.Options, 3)
	assert.Equal(t, "=0", plural.Options[0].Selector)
	assert.Equal(t, "one", plural.Options[1].Selector)
	assert.Equal(t, "other", plural.Options[2].Selector)

	one, ok := plural.Options.Get("one")
	require.True(t, ok)
	require.Len(t, one, 2)
	assert.Equal(t, TypePound, one[0].Type())
	assert.Equal(t, " item", one[1].(*LiteralElement).Value)

	_, ok = plural.Options.Get("few")
	assert.False(t, ok)
}

func TestParseOffsetVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{name: "absent", input: "{n, plural, other {x}}", offset: 0},
		{name: "zero", input: "{n, plural, offset:0 other {x}}", offset: 0},
		{name: "positive", input: "{n, plural, offset:2 other {x}}", offset: 2},
		{name: "negative", input: "{n, plural, offset:-1 other {x}}", offset: -1},
		{name: "spaced", input: "{n, plural, offset: 3 other {x}}", offset: 3},
		{name: "ordinal", input: "{n, selectordinal, offset:1 other {#th}}", offset: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg, err := Parse(tt.input, ParseOptions{})
			require.NoError(t, err)
			require.Len(t, msg, 1)

			plural, ok := msg[0].(*PluralElement)
			require.True(t, ok)
			assert.Equal(t, tt.offset, plural.Offset)
		})
	}
}

func TestParseSelectOrdinal(t *testing.T) {
	t.Parallel()

	msg, err := Parse("{place, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}", ParseOptions{})
	require.NoError(t, err)

	plural, ok := msg[0].(*PluralElement)
	require.True(t, ok)
	assert.Equal(t, Ordinal, plural.PluralType)
	assert.Len(t, plural.Options, 4)
}

func TestParseNestedSelect(t *testing.T) {
	t.Parallel()

	msg, err := Parse("{gender, select, male {{count, plural, offset:2 other {x}}} other {y}}", ParseOptions{})
	require.NoError(t, err)

	sel, ok := msg[0].(*SelectElement)
	require.True(t, ok)

	male, ok := sel.Options.Get("male")
	require.True(t, ok)
	require.Len(t, male, 1)

	nested, ok := male[0].(*PluralElement)
	require.True(t, ok)
	assert.Equal(t, 2, nested.Offset)
}

func TestParsePoundOutsidePluralIsLiteral(t *testing.T) {
	t.Parallel()

	msg, err := Parse("{g, select, other {#1}}", ParseOptions{})
	require.NoError(t, err)

	sel := msg[0].(*SelectElement)
	other, _ := sel.Options.Get("other")
	require.Len(t, other, 1)
	assert.Equal(t, "#1", other[0].(*LiteralElement).Value)
}

func TestParseFormattedArguments(t *testing.T) {
	t.Parallel()

	msg, err := Parse("{n, number, ::percent} {d, date, short} {t, time}", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, msg, 5)

	num, ok := msg[0].(*NumberElement)
	require.True(t, ok)
	assert.Equal(t, "::percent", num.Style)

	date, ok := msg[2].(*DateElement)
	require.True(t, ok)
	assert.Equal(t, "short", date.Style)

	tm, ok := msg[4].(*TimeElement)
	require.True(t, ok)
	assert.Empty(t, tm.Style)
}

func TestParseQuoting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "It''s", want: "It's"},
		{input: "'{name}'", want: "{name}"},
		{input: "don't", want: "don't"},
		{input: "a '{' b", want: "a { b"},
		{input: "}", want: "}"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			msg, err := Parse(tt.input, ParseOptions{})
			require.NoError(t, err)
			require.Len(t, msg, 1)
			assert.Equal(t, tt.want, msg[0].(*LiteralElement).Value)
		})
	}
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	t.Run("Tag", func(t *testing.T) {
		t.Parallel()

		msg, err := Parse("<b>{count, plural, other {#}}</b>", ParseOptions{})
		require.NoError(t, err)
		require.Len(t, msg, 1)

		tag, ok := msg[0].(*TagElement)
		require.True(t, ok)
		assert.Equal(t, "b", tag.Value)
		require.Len(t, tag.Children, 1)
		assert.Equal(t, TypePlural, tag.Children[0].Type())
	})

	t.Run("SelfClosing", func(t *testing.T) {
		t.Parallel()

		msg, err := Parse("a<br/>b", ParseOptions{})
		require.NoError(t, err)
		require.Len(t, msg, 3)
		assert.Equal(t, "<br/>", msg[1].(*LiteralElement).Value)
	})

	t.Run("IgnoreTag", func(t *testing.T) {
		t.Parallel()

		msg, err := Parse("<b>bold</b>", ParseOptions{IgnoreTag: true})
		require.NoError(t, err)
		require.Len(t, msg, 1)
		assert.Equal(t, "<b>bold</b>", msg[0].(*LiteralElement).Value)
	})

	t.Run("IgnoreTagAllowsUnbalanced", func(t *testing.T) {
		t.Parallel()

		_, err := Parse("<b>bold", ParseOptions{IgnoreTag: true})
		assert.NoError(t, err)
	})

	t.Run("LessThan", func(t *testing.T) {
		t.Parallel()

		msg, err := Parse("1 < 2", ParseOptions{})
		require.NoError(t, err)
		assert.Equal(t, "1 < 2", msg[0].(*LiteralElement).Value)
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{input: "{", kind: ErrExpectArgumentClosingBrace},
		{input: "{}", kind: ErrEmptyArgument},
		{input: "{name", kind: ErrExpectArgumentClosingBrace},
		{input: "{a b}", kind: ErrMalformedArgument},
		{input: "{n, }", kind: ErrExpectArgumentType},
		{input: "{n, list}", kind: ErrInvalidArgumentType},
		{input: "{n, number, }", kind: ErrExpectArgumentStyle},
		{input: "{n, plural}", kind: ErrExpectSelectArgumentOptions},
		{input: "{n, plural, offset other {x}}", kind: ErrExpectPluralArgumentOffsetValue},
		{input: "{n, plural, offset:x other {x}}", kind: ErrExpectPluralArgumentOffsetValue},
		{input: "{n, plural, one {x}}", kind: ErrMissingOtherClause},
		{input: "{n, plural, other {x} other {y}}", kind: ErrDuplicatePluralArgumentSelector},
		{input: "{g, select, other {x} other {y}}", kind: ErrDuplicateSelectArgumentSelector},
		{input: "{n, plural, }", kind: ErrExpectPluralArgumentSelector},
		{input: "{g, select, }", kind: ErrExpectSelectArgumentSelector},
		{input: "{n, plural, other x}", kind: ErrExpectPluralArgumentSelectorFragment},
		{input: "{n, plural, =x {a} other {b}}", kind: ErrExpectPluralArgumentSelector},
		{input: "<b>bold", kind: ErrUnclosedTag},
		{input: "<b>bold</i>", kind: ErrUnmatchedClosingTag},
		{input: "bold</b>", kind: ErrUnmatchedClosingTag},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input, ParseOptions{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)

			var syntaxErr *SyntaxError

			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tt.kind, syntaxErr.Kind, "got %s", syntaxErr.Kind)
			assert.Equal(t, tt.input, syntaxErr.Message)
		})
	}
}

func TestParseAllowMissingOther(t *testing.T) {
	t.Parallel()

	_, err := Parse("{n, plural, one {x}}", ParseOptions{AllowMissingOther: true})
	assert.NoError(t, err)
}

func TestParsePositions(t *testing.T) {
	t.Parallel()

	msg, err := Parse("line one\n{n, plural, offset:1 other {é}}", ParseOptions{})
	require.NoError(t, err)
	require.Len(t, msg, 2)

	loc := msg[1].Loc()
	assert.Equal(t, 2, loc.Start.Line)
	assert.Equal(t, 1, loc.Start.Column)
	assert.Equal(t, 9, loc.Start.Offset)

	_, err = Parse("ok\n  {}", ParseOptions{})

	var syntaxErr *SyntaxError

	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 2, syntaxErr.Location.Start.Line)
	assert.Equal(t, 3, syntaxErr.Location.Start.Column)
	assert.Equal(t, "messageformat: empty argument at line 2, column 3", syntaxErr.Error())
}
