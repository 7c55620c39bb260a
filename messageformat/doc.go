// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package messageformat parses ICU MessageFormat strings into a typed tree.

# Syntax

The accepted syntax is the one understood by formatjs and ICU4J:

	Hello {name}!
	{count, plural, offset:1 =0 {nobody} one {# item} other {# items}}
	{place, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}
	{gender, select, male {he} female {she} other {they}}
	{n, number, ::percent} {d, date, short} {t, time}
	<b>bold</b> and <link>a link</link>

Apostrophes quote syntax characters: '{' produces a literal brace, and ''
produces a single apostrophe. A '#' inside a plural or selectordinal option is
parsed as a [PoundElement].

# Tags

Unless [ParseOptions.IgnoreTag] is set, <name>...</name> is parsed as a
[TagElement]. Self-closing tags such as <br/> are kept as literal text. With
IgnoreTag set, angle brackets are always literal.

# Errors

Parse returns a *[SyntaxError] describing the first problem found. The error
matches [ErrSyntax] with errors.Is.
*/
package messageformat
