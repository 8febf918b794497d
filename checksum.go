package bech32

// gen is the BCH generator of the bech32 checksum code, one constant per bit
// of the five bits shifted out of the residue at each step.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// Encoding selects the checksum variant. Its value is the constant the
// checksum residue is xored with.
type Encoding uint32

const (
	// Bech32 is the original BIP-173 encoding.
	Bech32 Encoding = 1
	// Bech32m is the BIP-350 encoding.
	Bech32m Encoding = 0x2bc830a3
)

func (e Encoding) String() st {
	switch e {
	case Bech32:
		return "bech32"
	case Bech32m:
		return "bech32m"
	}
	return "unknown"
}

// expandHRP returns the human-readable part expanded for checksumming: the
// high 3 bits of every character, a zero, then the low 5 bits of every
// character. The returned slice has room for extra more values.
func expandHRP(hrp by, extra no) (exp by) {
	l := len(hrp)
	exp = make(by, l*2+1, l*2+1+extra)
	for i, c := range hrp {
		c &= 0x7f
		exp[i] = c >> 5
		exp[i+l+1] = c & 31
	}
	return
}

// polymod computes the residue of values, read as coefficients of a
// polynomial over GF(32), modulo the generator. The result is 30 bits.
func polymod(values by) (c uint32) {
	c = 1
	for _, v := range values {
		top := c >> 25
		c = (c&0x1ffffff)<<5 ^ uint32(v)
		for i := range gen {
			if (top>>i)&1 == 1 {
				c ^= gen[i]
			}
		}
	}
	return
}

// createChecksum returns the six 5-bit checksum values for hrp and values under
// the given encoding. hrp must already be lower case.
func createChecksum(enc Encoding, hrp, values by) (cs by) {
	v := append(expandHRP(hrp, len(values)+checksumLength), values...)
	v = append(v, make(by, checksumLength)...)
	mod := polymod(v) ^ uint32(enc)
	cs = make(by, checksumLength)
	for i := range cs {
		cs[i] = byte(mod>>(5*(5-i))) & 31
	}
	return
}

// verifyChecksum checks values, which end with the six checksum values,
// against hrp and reports which encoding produced the checksum.
func verifyChecksum(hrp, values by) (enc Encoding, ok bo) {
	switch enc = Encoding(polymod(append(expandHRP(hrp, len(values)),
		values...))); enc {
	case Bech32, Bech32m:
		return enc, true
	}
	return 0, false
}

// checksumString renders the checksum hrp and values would need under enc,
// used to describe a checksum failure.
func checksumString(enc Encoding, hrp, values by) st {
	cs := createChecksum(enc, hrp, values)
	for i := range cs {
		cs[i] = Charset[cs[i]]
	}
	return st(cs)
}
