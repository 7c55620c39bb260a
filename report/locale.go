// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary keys, in English.
const (
	summaryNone = "No problems found"
	summaryOne  = "1 problem found"
	summaryMany = "%d problems found"
)

var summaryTranslations = []struct {
	tag              language.Tag
	none, one, other string
}{
	{language.English, summaryNone, summaryOne, summaryMany},
	{language.German, "Keine Probleme gefunden", "1 Problem gefunden", "%d Probleme gefunden"},
	{language.French, "Aucun problème trouvé", "1 problème trouvé", "%d problèmes trouvés"},
	{language.Japanese, "問題は見つかりませんでした", "1 件の問題が見つかりました", "%d 件の問題が見つかりました"},
}

var (
	// supportedTags lists the summary languages; the first is the fallback.
	supportedTags []language.Tag

	// matcher is a private [language.Matcher] derived from supportedTags.
	matcher language.Matcher
)

func init() {
	for _, tr := range summaryTranslations {
		_ = message.SetString(tr.tag, summaryNone, tr.none)
		_ = message.SetString(tr.tag, summaryOne, tr.one)
		_ = message.SetString(tr.tag, summaryMany, tr.other)

		supportedTags = append(supportedTags, tr.tag)
	}

	matcher = language.NewMatcher(supportedTags)
}

// Languages returns the languages the summary line is translated to.
func Languages() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)

	return out
}

// resolveLanguage matches t to the closest supported language, stripped of the
// extensions added by matching. Unsupported languages resolve to English.
func resolveLanguage(t language.Tag) language.Tag {
	matched, _ := language.MatchStrings(matcher, t.String())

	b, s, r := matched.Raw()

	stripped, err := language.Compose(b, s, r)
	if err != nil {
		return supportedTags[0]
	}

	return stripped
}
