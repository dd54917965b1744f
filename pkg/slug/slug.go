// Package slug строит URL-совместимые slug'и из заголовков, в том числе вьетнамских.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// đ/Đ не раскладываются в NFD, поэтому заменяются отдельно
	dReplacer  = strings.NewReplacer("đ", "d", "Đ", "D")
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]+`)
	stripMarks = runes.Remove(runes.In(unicode.Mn))
)

// Generate возвращает slug: без диакритики, в нижнем регистре, слова через дефис
func Generate(title string) string {
	t := transform.Chain(norm.NFD, stripMarks, norm.NFC)

	result, _, err := transform.String(t, dReplacer.Replace(title))
	if err != nil {
		result = title
	}

	result = strings.ToLower(result)
	result = nonAlnum.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}
