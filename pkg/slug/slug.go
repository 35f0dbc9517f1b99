// Package slug dérive des identifiants URL à partir de noms de produits.
// Les noms du catalogue sont en français : les accents sont repliés
// ("Hygiène" -> "hygiene") avant la normalisation.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents décompose les caractères (NFD) puis supprime les marques diacritiques.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make retourne le slug d'un nom : minuscules, accents repliés,
// toute séquence non alphanumérique réduite à un seul tiret.
func Make(name string) string {
	folded, _, err := transform.String(foldAccents, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	prevDash := true // évite un tiret en tête
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
