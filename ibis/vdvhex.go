package ibis

import "github.com/juju/errors"

// VdvAlphabet is the VDV-301 number alphabet. Values 10-15 continue
// after '9' in ASCII order (":;<=>?"), not hexadecimal A-F.
const VdvAlphabet = "0123456789:;<=>?"

// VdvOutOfRange is emitted for values outside 0-255. Degraded output,
// the telegram is still sent, the display shows a visibly wrong field.
const VdvOutOfRange = "??"

// EncodeVdvHex renders v in the VDV number alphabet: one symbol for
// 0-15, high nibble then low nibble for 16-255.
func EncodeVdvHex(v int) string {
	switch {
	case v < 0 || v > 255:
		return VdvOutOfRange
	case v <= 15:
		return VdvAlphabet[v : v+1]
	default:
		return string([]byte{VdvAlphabet[v>>4], VdvAlphabet[v&0x0f]})
	}
}

// AppendVdvHex is EncodeVdvHex writing into dst without allocation.
func AppendVdvHex(dst []byte, v int) []byte {
	switch {
	case v < 0 || v > 255:
		return append(dst, VdvOutOfRange...)
	case v <= 15:
		return append(dst, VdvAlphabet[v])
	default:
		return append(dst, VdvAlphabet[v>>4], VdvAlphabet[v&0x0f])
	}
}

// DecodeVdvHex is the inverse of EncodeVdvHex for 1 and 2 symbol
// strings. Round-trip law: DecodeVdvHex(EncodeVdvHex(v)) == v for v
// in 0-255.
func DecodeVdvHex(s string) (int, error) {
	if len(s) < 1 || len(s) > 2 {
		return 0, errors.Errorf("vdvhex decode invalid length input=%q", s)
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '?' {
			return 0, errors.Errorf("vdvhex decode invalid symbol input=%q", s)
		}
		v = v<<4 | int(c-'0')
	}
	return v, nil
}
