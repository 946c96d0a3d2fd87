package enum

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldName returns the key used by the case-insensitive name index.
// Names are NFC normalized before full Unicode case folding so that
// composed and decomposed spellings share one key.
func foldName(name string) string {
	return cases.Fold().String(norm.NFC.String(name))
}
