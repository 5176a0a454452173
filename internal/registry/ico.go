// Package registry looks up Czech legal entities in ARES and the obchodní
// rejstřík and merges registry data into prospects.
package registry

import (
	"strings"

	"github.com/rotisserie/eris"
)

// icoLength is the length of a valid IČO after normalization.
const icoLength = 8

// NormalizeICO strips non-digit characters from an IČO and validates the
// result is exactly eight digits. "120 00 000" and "12000000" normalize
// identically.
func NormalizeICO(ico string) (string, error) {
	var b strings.Builder
	for _, r := range ico {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	clean := b.String()
	if len(clean) != icoLength {
		return "", eris.Errorf("registry: invalid ico %q: want %d digits, got %d", ico, icoLength, len(clean))
	}
	return clean, nil
}
