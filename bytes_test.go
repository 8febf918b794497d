package bech32

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"realy.lol/bech32/chk"
	"realy.lol/bech32/hex"
)

// nip19Vectors are from https://github.com/nostr-protocol/nips/blob/master/19.md
var nip19Vectors = []struct {
	hex, hrp, bech32 st
}{
	{
		"3bf0c63fcb93463407af97a5e5ee64fa883d107ef9e558472c4eb9aaaefa459d",
		"npub",
		"npub180cvv07tjdrrgpa0j7j7tmnyl2yr6yr7l8j4s3evf6u64th6gkwsyjh6w6",
	},
	{
		"7e7e9c42a91bfef19fa929e5fda1b72e0ebc1a4c1141673e2794234d86addf4e",
		"npub",
		"npub10elfcs4fr0l0r8af98jlmgdh9c8tcxjvz9qkw038js35mp4dma8qzvjptg",
	},
	{
		"67dea2ed018072d675f5415ecfaed7d2597555e202d85b3d65ea4e58d2d92ffa",
		"nsec",
		"nsec1vl029mgpspedva04g90vltkh6fvh240zqtv9k0t9af8935ke9laqsnlfe5",
	},
}

func TestEncodeBytes(t *testing.T) {
	for _, v := range nip19Vectors {
		b, err := hex.Dec(v.hex)
		require.NoError(t, err)
		s, err := EncodeBytes(Bech32, v.hrp, b)
		require.NoError(t, err)
		require.Equal(t, v.bech32, st(s), "incorrect encoding")
	}
	_, err := EncodeBytes(Bech32, "", by{1})
	require.ErrorAs(t, err, new(ErrPrefixEmpty))
}

func TestDecodeBytes(t *testing.T) {
	for _, v := range nip19Vectors {
		d, err := Decode(v.bech32)
		require.NoError(t, err)
		require.Equal(t, Bech32, d.Encoding, "incorrect encoding type")
		require.Equal(t, v.hrp, st(d.HRP), "incorrect hrp")
		b, err := d.Bytes()
		require.NoError(t, err)
		require.Equal(t, v.hex, hex.Enc(b), "incorrect decoded data")

		b, err = DecodeBytes(v.bech32, v.hrp, Bech32)
		require.NoError(t, err)
		require.Equal(t, v.hex, st(hex.EncAppend(nil, b)))
	}
}

func TestDecodeBytesMismatch(t *testing.T) {
	npub := nip19Vectors[0].bech32
	var ue ErrUnexpectedPrefixOrEncoding
	_, err := DecodeBytes(npub, "nsec", Bech32)
	require.ErrorAs(t, err, &ue)
	require.Equal(t, ErrUnexpectedPrefixOrEncoding{
		HRP: "npub", Encoding: Bech32,
		ExpectedHRP: "nsec", ExpectedEncoding: Bech32,
	}, ue)
	_, err = DecodeBytes(npub, "npub", Bech32m)
	require.ErrorAs(t, err, &ue)
	require.Equal(t, Bech32m, ue.ExpectedEncoding)
	// the decoded hrp is lower case, so an upper case expectation never matches
	_, err = DecodeBytes([]byte(npub), []byte("NPUB"), Bech32)
	require.ErrorAs(t, err, &ue)
}

func TestDecodeBytesErrors(t *testing.T) {
	_, err := DecodeBytes("pzry9x0s0muk", "a", Bech32)
	require.True(t, errors.As(err, new(ErrMissingSeparator)))
	require.Contains(t, err.Error(), "decode bytes")

	// 25 bits leave one spare bit, and it is set
	s, err := Encode(Bech32, "a", by{1, 2, 3, 4, 5})
	require.NoError(t, err)
	_, err = DecodeBytes(s, "a", Bech32)
	require.ErrorAs(t, err, new(ErrInvalidPadding))
}

func TestEncodeBytesRandom(t *testing.T) {
	var err error
	var s, b by
	for _i := 0; _i < 10000; _i++ {
		enc := Bech32m
		if frand.Intn(2) == 0 {
			enc = Bech32
		}
		// 50 bytes is 80 values, the most that fits after "bc1" and the checksum
		in := frand.Bytes(frand.Intn(51))
		if s, err = EncodeBytes(enc, "BC", in); chk.E(err) {
			t.Fatal(err)
		}
		if b, err = DecodeBytes(s, "bc", enc); chk.E(err) {
			t.Fatalf("%s: %s", s, err)
		}
		if st(in) != st(b) {
			t.Fatalf("did not recover same bytes: %x got %x", in, b)
		}
	}
}
