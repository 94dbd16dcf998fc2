// Package ibis encodes IBIS/VDV-301 wire telegrams for character and
// dot-matrix passenger information displays.
//
// The wire format is line-oriented ASCII with a custom 16-symbol number
// alphabet, carriage-return terminator and a one-byte XOR checksum:
//
//	a A <addr> <blocks> A 0 <payload> \r <checksum>
//
// The checksum byte may take any value 0-255, so a finished telegram is
// raw bytes with explicit length, never a C string.
package ibis

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
)

const (
	// TelegramMaxLength bounds a complete DS021t telegram:
	// type marker 2 + address 2 + block count 2 + sub-type 2 +
	// message 16*blockMax-2 + CR 1 + checksum 1.
	TelegramMaxLength = 264

	// ChecksumInit seeds the XOR fold per VDV-301.
	ChecksumInit byte = 0x7F

	// Terminator closes the payload before the checksum byte.
	Terminator byte = '\r'
)

var (
	ErrTelegramOverflow = errors.New("ibis: payload larger than max telegram size")
)

// Telegram is one complete framed protocol message. Zero value is empty
// and valid. Buffers are fixed size, a Telegram never allocates.
type Telegram struct {
	b [TelegramMaxLength]byte
	l int
}

func TelegramFromBytes(b []byte) (Telegram, error) {
	t := Telegram{}
	if len(b) > TelegramMaxLength {
		return t, ErrTelegramOverflow
	}
	t.l = copy(t.b[:], b)
	return t, nil
}

func MustTelegramFromBytes(b []byte) Telegram {
	t, err := TelegramFromBytes(b)
	if err != nil {
		panic(err)
	}
	return t
}

func (self *Telegram) Bytes() []byte { return self.b[:self.l] }

func (self *Telegram) Len() int { return self.l }

func (self *Telegram) Equal(t2 *Telegram) bool {
	return self.l == t2.l && bytes.Equal(self.Bytes(), t2.Bytes())
}

// Format returns hex digits in groups of 4 bytes for diagnostic output.
func (self *Telegram) Format() string {
	h := hex.EncodeToString(self.Bytes())
	hlen := len(h)
	ss := make([]string, (hlen/8)+1)
	for i := range ss {
		hi := (i + 1) * 8
		if hi > hlen {
			hi = hlen
		}
		ss[i] = h[i*8 : hi]
	}
	return strings.Join(ss, " ")
}

// Checksum XOR-folds b over the VDV-301 initial accumulator 0x7F.
func Checksum(b []byte) byte {
	chk := ChecksumInit
	for _, x := range b {
		chk ^= x
	}
	return chk
}

// Frame appends the CR terminator and the checksum byte to payload.
// The checksum covers every byte from the first payload byte through
// the terminator inclusive, and is emitted raw, never escaped.
func Frame(payload []byte) (Telegram, error) {
	t := Telegram{}
	if len(payload)+2 > TelegramMaxLength {
		return t, ErrTelegramOverflow
	}
	n := copy(t.b[:], payload)
	t.b[n] = Terminator
	n++
	t.b[n] = Checksum(t.b[:n])
	n++
	t.l = n
	return t, nil
}
