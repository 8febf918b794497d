package bech32

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandHRP(t *testing.T) {
	require.Equal(t, by{3, 3, 3, 0, 1, 2, 3}, expandHRP(by("abc"), 0))
	require.Equal(t, by{1, 0, 31}, expandHRP(by("?"), 0))
	// characters are masked to 7 bits
	require.Equal(t, expandHRP(by("a"), 0), expandHRP(by{0x80 | 'a'}, 0))
	require.Equal(t, 9, cap(expandHRP(by("a"), 6)))
}

func TestCreateChecksum(t *testing.T) {
	for _, tc := range []struct {
		enc  Encoding
		want st
	}{
		{Bech32, "2uel5l"},
		{Bech32m, "lqfn3a"},
	} {
		require.Equal(t, tc.want, checksumString(tc.enc, by("a"), nil))
	}
}

func TestVerifyChecksum(t *testing.T) {
	values := func(s st) (v by) {
		for i := range s {
			v = append(v, byte(charsetRev[s[i]]))
		}
		return
	}
	enc, ok := verifyChecksum(by("a"), values("2uel5l"))
	require.True(t, ok)
	require.Equal(t, Bech32, enc)
	enc, ok = verifyChecksum(by("a"), values("lqfn3a"))
	require.True(t, ok)
	require.Equal(t, Bech32m, enc)
	_, ok = verifyChecksum(by("a"), values("2uel5x"))
	require.False(t, ok)
	// the checksum covers the case of the hrp
	_, ok = verifyChecksum(by("A"), values("2uel5l"))
	require.False(t, ok)
}

func TestCharsetReverse(t *testing.T) {
	for i := range Charset {
		c := Charset[i]
		require.Equal(t, int8(i), charsetRev[c])
		if c >= 'a' && c <= 'z' {
			require.Equal(t, int8(i), charsetRev[c-'a'+'A'])
		}
	}
	valid := 0
	for c := range charsetRev {
		if charsetRev[c] >= 0 {
			valid++
		}
	}
	// 32 symbols, 23 of them letters with an upper case twin
	require.Equal(t, 55, valid)
	for _, c := range "1bio BIO\x7f" {
		require.Equal(t, int8(-1), charsetRev[c])
	}
	require.Equal(t, "unknown", Encoding(7).String())
}
