package ibis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCharset(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"empty", "", ""},
		{"ascii", "Linie 4 Hauptbahnhof", "Linie 4 Hauptbahnhof"},
		{"umlaut-a", "ä", "{"},
		{"umlaut-o", "ö", "|"},
		{"umlaut-u", "ü", "}"},
		{"eszett", "ß", "~"},
		{"umlaut-A", "Ä", "["},
		{"umlaut-O", "Ö", "\\"},
		{"umlaut-U", "Ü", "]"},
		{"word", "Müller", "M}ller"},
		{"sentence", "Nächster Halt: Süßenbrunn", "N{chster Halt: S}~enbrunn"},
		{"unmapped-c3", "café", "caf\xc3\xa9"},
		{"lone-lead", "abc\xc3", "abc\xc3"},
		{"nul-stops", "vor\x00nach", "vor"},
		{"emoji-passthrough", "\xf0\x9f\x9a\x8c", "\xf0\x9f\x9a\x8c"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			b := []byte(c.input)
			out := NormalizeCharset(b)
			assert.Equal(t, c.expect, string(out))
			// in place: output aliases input storage
			if len(out) > 0 {
				assert.Same(t, &b[0], &out[0])
			}
		})
	}
}

func TestNormalizeCharsetShortens(t *testing.T) {
	t.Parallel()

	in := []byte("Müller")
	assert.Equal(t, 7, len(in))
	out := NormalizeCharset(in)
	assert.Equal(t, 6, len(out))
}
