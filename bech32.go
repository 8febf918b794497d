package bech32

import (
	"bytes"
)

// Data is a decoded bech32 string: the encoding its checksum matched, the
// human-readable part in lower case and the data part as 5-bit values with the
// checksum removed.
type Data struct {
	Encoding Encoding
	HRP      by
	Values   by
}

// Encode encodes values, which must be 5-bit groups, under the human-readable
// part hrp with the checksum of the given encoding. The human-readable part is
// lower cased, so the result is always in lower case.
func Encode[V ~st | ~by](enc Encoding, hrp V, values by) (b by, err er) {
	if len(hrp) == 0 {
		err = ErrPrefixEmpty{}
		return
	}
	if len(hrp) > MaxHRPLength {
		err = ErrPrefixTooLong(len(hrp))
		return
	}
	for i, v := range values {
		if v > 31 {
			err = ErrValueExceedsBitSize{Value: v, Bits: 5, Pos: i}
			return
		}
	}
	lc := bytes.ToLower(by(hrp))
	cs := createChecksum(enc, lc, values)
	b = make(by, 0, len(lc)+1+len(values)+len(cs))
	b = append(b, lc...)
	b = append(b, separator)
	for _, v := range values {
		b = append(b, Charset[v])
	}
	for _, v := range cs {
		b = append(b, Charset[v])
	}
	return
}

// EncodeData encodes a decoded value back into its string form.
func EncodeData(d *Data) (b by, err er) { return Encode(d.Encoding, d.HRP, d.Values) }

// Decode decodes a bech32 or bech32m string, detecting which of the two from
// the checksum. The string must be between MinLength and MaxLength characters,
// all in one case. The returned values are 5-bit groups; use Data.Bytes or
// Convert5to8 to get the payload bytes.
func Decode[V ~st | ~by](s V) (d *Data, err er) { return decode(by(s), MaxLength) }

// DecodeNoLimit is Decode without the MaxLength limit, for strings such as
// NIP-19 entities that are longer than BIP-173 allows.
func DecodeNoLimit[V ~st | ~by](s V) (d *Data, err er) { return decode(by(s), -1) }

// decode runs the checks in a fixed order and returns the error of the first
// that fails. A negative limit disables the upper length bound.
func decode(b by, limit no) (d *Data, err er) {
	if len(b) < MinLength {
		err = ErrStringTooShort(len(b))
		return
	}
	if limit >= 0 && len(b) > limit {
		err = ErrStringTooLong(len(b))
		return
	}
	var lower, upper bo
	for i, c := range b {
		if c < 33 || c > 126 {
			err = ErrInvalidCharacterCode{Char: c, Pos: i}
			return
		}
		switch {
		case c >= 'a' && c <= 'z':
			if upper {
				err = ErrMixedCase{Char: c, Pos: i}
				return
			}
			lower = true
		case c >= 'A' && c <= 'Z':
			if lower {
				err = ErrMixedCase{Char: c, Pos: i}
				return
			}
			upper = true
		}
	}
	pos := bytes.LastIndexByte(b, separator)
	switch {
	case pos < 0:
		err = ErrMissingSeparator{}
		return
	case pos == 0:
		err = ErrPrefixEmpty{}
		return
	}
	dataLen := len(b) - pos - 1
	if dataLen < checksumLength {
		err = ErrDataPartTooShort(dataLen)
		return
	}
	values := make(by, dataLen)
	for i := range values {
		c := b[pos+1+i]
		v := charsetRev[c]
		if v < 0 {
			err = ErrUnknownCharacter{Char: c, Pos: pos + 1 + i}
			return
		}
		values[i] = byte(v)
	}
	hrp := bytes.ToLower(b[:pos])
	enc, ok := verifyChecksum(hrp, values)
	if !ok {
		payload := values[:dataLen-checksumLength]
		err = ErrInvalidChecksum{
			Expected:  checksumString(Bech32, hrp, payload),
			ExpectedM: checksumString(Bech32m, hrp, payload),
			Actual:    st(b[len(b)-checksumLength:]),
		}
		return
	}
	n := dataLen - checksumLength
	d = &Data{Encoding: enc, HRP: hrp, Values: values[:n:n]}
	return
}
