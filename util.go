package bech32

import (
	"bytes"
)

type (
	bo = bool
	by = []byte
	st = string
	er = error
	no = int
)

var equals = bytes.Equal
