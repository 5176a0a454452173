package finder

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/praguedigital/leadgen-cli/internal/model"
)

// foldTransformer strips diacritics so "Kadeřnictví" and "Kadernictvi"
// fold to the same key.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// dedupeKey builds the cross-query duplicate key from the folded,
// lowercased name and address.
func dedupeKey(p model.Prospect) string {
	return foldString(p.Name) + "|" + foldString(p.Address)
}

func foldString(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}
