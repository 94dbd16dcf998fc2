package ibis

import (
	"bytes"

	"github.com/juju/errors"
)

// DS021t is the free-text telegram for dot-matrix displays.
const (
	blockSize     = 16
	headerReserve = 2 // header bytes counted toward block sizing
	messageMax    = 256

	typeMarker    = "aA"
	subTypeMarker = "A0"
)

// BuildDS021t builds a complete display-text telegram for the given
// logical address. Order matters: the text is normalized to the
// display code page first, block sizing is defined on the normalized
// byte length, not the raw UTF-8 length.
//
// Layout policy: a single-line message gets three trailing newlines so
// the text sits vertically centered on the physical display; a message
// with an embedded line break gets two.
func BuildDS021t(address int, text string) (Telegram, error) {
	var buf [messageMax]byte
	if len(text) > messageMax {
		return Telegram{}, errors.Errorf("ds021t message too long len=%d max=%d", len(text), messageMax)
	}
	msg := NormalizeCharset(buf[:copy(buf[:], text)])
	n := len(msg)

	nl := 3
	if bytes.IndexByte(msg, '\n') >= 0 {
		nl = 2
	}
	if n+nl > messageMax {
		return Telegram{}, errors.Errorf("ds021t message too long len=%d max=%d", n+nl, messageMax)
	}
	for i := 0; i < nl; i++ {
		buf[n] = '\n'
		n++
	}

	total := n + headerReserve
	numBlocks := (total + blockSize - 1) / blockSize
	usable := numBlocks*blockSize - headerReserve
	if usable > messageMax {
		// rejected, not truncated: a short telegram would corrupt the display
		return Telegram{}, errors.Errorf("ds021t padded message overflows buffer usable=%d max=%d", usable, messageMax)
	}
	for i := n; i < usable; i++ {
		buf[i] = ' '
	}

	var payload [TelegramMaxLength]byte
	p := payload[:0]
	p = append(p, typeMarker...)
	p = AppendVdvHex(p, address)
	p = AppendVdvHex(p, numBlocks)
	p = append(p, subTypeMarker...)
	p = append(p, buf[:usable]...)
	t, err := Frame(p)
	return t, errors.Trace(err)
}
