package ibis

// German letters the display code page keeps in the 0x5B-0x7E range,
// where ASCII has brackets and braces. Everything else passes through
// raw, including unmapped multi-byte UTF-8. Lossy but safe.
const utf8Lead = 0xC3

var charsetMap = map[byte]byte{
	0xA4: '{',  // ä
	0xB6: '|',  // ö
	0xBC: '}',  // ü
	0x9F: '~',  // ß
	0x84: '[',  // Ä
	0x96: '\\', // Ö
	0x9C: ']',  // Ü
}

// NormalizeCharset rewrites b in place from UTF-8 to the display code
// page and returns the shortened slice. Each mapped 2-byte sequence
// collapses to one byte. Stops at the first NUL. A lone 0xC3 lead byte
// or an unmapped continuation passes through unmodified.
func NormalizeCharset(b []byte) []byte {
	w := 0
	for r := 0; r < len(b); r++ {
		c := b[r]
		if c == 0 {
			break
		}
		if c == utf8Lead && r+1 < len(b) {
			if out, ok := charsetMap[b[r+1]]; ok {
				b[w] = out
				w++
				r++
				continue
			}
		}
		b[w] = c
		w++
	}
	return b[:w]
}
