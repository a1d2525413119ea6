package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitaDiacriticos descompone (NFD), elimina marcas combinantes y recompone (NFC).
var quitaDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar devuelve s en minúsculas y sin acentos, para búsquedas
// insensibles a tildes ("Acetaminofén" -> "acetaminofen").
func Normalizar(s string) string {
	out, _, err := transform.String(quitaDiacriticos, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
