package bech32

// ConvertBits regroups data, where each byte carries fromBits significant
// bits, into bytes carrying toBits bits each. The input is read as one
// bitstream, most significant bit first.
//
// With pad set, leftover bits are flushed into a final group padded with zero
// bits on the right. Without it the leftover must be shorter than one input
// group and all zero, otherwise ErrInvalidPadding is returned.
func ConvertBits(data by, fromBits, toBits uint8, pad bo) (regrouped by,
	err er) {

	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		err = ErrInvalidBitGroups{}
		return
	}
	maxv := uint32(1)<<toBits - 1
	// the accumulator never needs more than this many bits
	maxAcc := uint32(1)<<(fromBits+toBits-1) - 1
	regrouped = make(by, 0, len(data)*no(fromBits)/no(toBits)+1)
	var acc uint32
	var bits uint8
	for i, b := range data {
		if b>>fromBits != 0 {
			err = ErrValueExceedsBitSize{Value: b, Bits: fromBits, Pos: i}
			return nil, err
		}
		acc = (acc<<fromBits | uint32(b)) & maxAcc
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxv))
		}
	}
	if pad {
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits || acc<<(toBits-bits)&maxv != 0 {
		return nil, ErrInvalidPadding{}
	}
	return
}

// Convert8to5 regroups bytes into the 5-bit values Encode takes.
func Convert8to5(data by, pad bo) (by, er) { return ConvertBits(data, 8, 5, pad) }

// Convert5to8 regroups 5-bit values, as found in Data.Values, back into
// bytes.
func Convert5to8(data by, pad bo) (by, er) { return ConvertBits(data, 5, 8, pad) }
