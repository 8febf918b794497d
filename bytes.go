package bech32

import (
	"github.com/pkg/errors"

	"realy.lol/bech32/chk"
	"realy.lol/bech32/log"
)

// Bytes regroups the 5-bit values of d into payload bytes. The padding left by
// encoding must be fewer than 8 bits and all zero.
func (d *Data) Bytes() (b by, err er) { return Convert5to8(d.Values, false) }

// EncodeBytes encodes an arbitrary payload under hrp: the bytes are regrouped
// into 5-bit values, zero padded, then passed to Encode.
func EncodeBytes[V ~st | ~by](enc Encoding, hrp V, data by) (b by, err er) {
	var values by
	if values, err = Convert8to5(data, true); chk.T(err) {
		err = errors.WithMessage(err, "encode bytes")
		return
	}
	if b, err = Encode(enc, hrp, values); chk.T(err) {
		err = errors.WithMessage(err, "encode bytes")
		return
	}
	return
}

// DecodeBytes decodes s and returns its payload bytes, provided the string
// carries exactly the human-readable part expectedHRP (compared in lower case
// form, as Decode returns it) and the encoding enc. Any failure keeps its
// error type, so callers can tell them apart with errors.As.
func DecodeBytes[V, H ~st | ~by](s V, expectedHRP H, enc Encoding) (b by,
	err er) {

	var d *Data
	if d, err = Decode(s); chk.T(err) {
		err = errors.WithMessage(err, "decode bytes")
		return
	}
	if !equals(d.HRP, by(expectedHRP)) || d.Encoding != enc {
		err = ErrUnexpectedPrefixOrEncoding{
			HRP:              st(d.HRP),
			Encoding:         d.Encoding,
			ExpectedHRP:      st(expectedHRP),
			ExpectedEncoding: enc,
		}
		chk.T(err)
		return
	}
	if b, err = d.Bytes(); chk.T(err) {
		err = errors.WithMessage(err, "decode bytes")
		return
	}
	log.T.F("decoded %d bytes from %s string, hrp %s", len(b), d.Encoding,
		d.HRP)
	return
}
