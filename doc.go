/*
Package bech32 implements the bech32 and bech32m encodings of BIP-173 and
BIP-350.

A bech32 string is a human-readable part, the separator '1' and a data part
written with the 32 characters "qpzry9x8gf2tvdw0s3jn54khce6mua7l", the last six
of which are a BCH checksum over both parts. The two encodings differ only in
the constant the checksum is xored with, so Decode detects which one a string
uses.

Encode and Decode work on 5-bit values. EncodeBytes and DecodeBytes add the
regrouping to and from 8-bit bytes with ConvertBits, which is also usable on
its own.

All functions are safe for concurrent use.
*/
package bech32
