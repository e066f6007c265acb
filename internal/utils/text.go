package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims s and puts it in NFC form, so names typed with
// combining accents compare and search equal to precomposed ones.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeCode normalizes a catalog code and upper-cases it.
func NormalizeCode(s string) string {
	return strings.ToUpper(NormalizeText(s))
}
