package aes

import (
	"errors"
	"strconv"
)

// KeySizeError reports a key whose length is not 16, 24 or 32 bytes. It is
// returned before any transform runs.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

// BlockSizeError reports a buffer that cannot be split into 16-byte blocks.
// With the padding routine in front of every block mode it only arises for
// empty input, or if padding is bypassed.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "aes: input length " + strconv.Itoa(int(b)) + " cannot be split into blocks"
}

// ErrInvalidPadding is returned for any padding violation. It carries no
// detail about which byte failed: the validator is used as an oracle by
// attack code elsewhere in this repo, and the yes/no answer is the whole
// point.
var ErrInvalidPadding = errors.New("aes: invalid padding")
