package bech32

// Charset is the set of characters used in the data section of bech32 strings.
// Note that this is ordered, such that for a given charset[i], i is the binary
// value of the character.
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// charsetRev maps an ASCII code to its 5-bit value, or -1 if the code is not in
// Charset. Upper and lower case letters map to the same value.
var charsetRev = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	15, -1, 10, 17, 21, 20, 26, 30, 7, 5, -1, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
}

const (
	// separator divides the human-readable part from the data part. Only the
	// last one counts, the human-readable part may contain it too.
	separator = '1'
	// checksumLength is the number of data characters taken by the checksum.
	checksumLength = 6
	// MaxHRPLength is the longest human-readable part BIP-173 allows.
	MaxHRPLength = 83
	// MinLength is the shortest valid bech32 string: one HRP character, the
	// separator and the checksum.
	MinLength = 8
	// MaxLength is the longest bech32 string BIP-173 allows.
	MaxLength = 90
)
