// Package hex wraps encoding/hex for one-shot conversions and
// github.com/templexxx/xhex for appending into caller supplied buffers.
package hex

import (
	"encoding/hex"

	"github.com/templexxx/xhex"

	"realy.lol/bech32/chk"
)

var Enc = hex.EncodeToString
var Dec = hex.DecodeString
var DecLen = hex.DecodedLen

type InvalidByteError = hex.InvalidByteError

// EncAppend appends the hex encoding of src to dst.
func EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	dst = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// DecAppend appends the bytes encoded by the hex string src to dst. On error
// dst is returned unchanged.
func DecAppend(dst, src []byte) (b []byte, err error) {
	if len(src)%2 != 0 {
		err = hex.ErrLength
		return dst, err
	}
	l := len(dst)
	b = append(dst, make([]byte, len(src)/2)...)
	if err = xhex.Decode(b[l:], src); chk.D(err) {
		return dst, err
	}
	return
}
