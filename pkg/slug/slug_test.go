package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hygimar/catalogue-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Gants Nitrile", "gants-nitrile"},
		{"accents", "Hygiène & Désinfection", "hygiene-desinfection"},
		{"ponctuation", "Savon (500 ml) — doux", "savon-500-ml-doux"},
		{"espaces multiples", "  Papier   Essuie-mains  ", "papier-essuie-mains"},
		{"deja propre", "chariot-menage", "chariot-menage"},
		{"vide", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Make(tc.in))
		})
	}
}

func TestMake_Stable(t *testing.T) {
	// Le slug d'un même nom doit être identique à chaque appel (clé unique en base).
	assert.Equal(t, slug.Make("Gel Hydroalcoolique 5L"), slug.Make("Gel Hydroalcoolique 5L"))
}
