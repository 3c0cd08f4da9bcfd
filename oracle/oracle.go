// Package oracle holds attack demonstrations that drive the aes package
// strictly through its public surface, the way the rest of the challenge
// corpus does: detecting ECB from ciphertext alone, and recovering CBC
// plaintext from nothing but a padding oracle.
package oracle

import (
	"crypto/rand"
	"fmt"

	"cryptopals/aes"
)

// DetectECB reports whether ct contains a repeated 16-byte block, the
// giveaway that it was encrypted in ECB mode.
func DetectECB(ct []byte) bool {
	if len(ct)%aes.BlockSize != 0 {
		panic(fmt.Sprintf("ciphertext length (%d) not a multiple of block size", len(ct)))
	}
	blocks := make(map[string]struct{})
	s := string(ct)
	for i := 0; i < len(ct); i += aes.BlockSize {
		b := s[i : i+aes.BlockSize]
		if _, ok := blocks[b]; ok {
			return true
		}
		blocks[b] = struct{}{}
	}
	return false
}

// PaddingOracle seals a secret under a random key and answers only one
// question about any ciphertext: does it decrypt to validly padded
// plaintext? That single bit is enough for RecoverPlaintext.
type PaddingOracle struct {
	key []byte
	iv  [aes.BlockSize]byte
	ct  []byte
}

// NewPaddingOracle encrypts secret under a fresh random key and IV.
func NewPaddingOracle(secret []byte) (*PaddingOracle, error) {
	key := make([]byte, 16)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	var iv [aes.BlockSize]byte
	if _, err := rand.Read(iv[:]); err != nil {
		return nil, err
	}
	ct, err := aes.Encrypt(secret, key, aes.CBC{IV: iv})
	if err != nil {
		return nil, err
	}
	return &PaddingOracle{key: key, iv: iv, ct: ct}, nil
}

// Ciphertext returns the IV and ciphertext the attacker starts from.
func (o *PaddingOracle) Ciphertext() ([aes.BlockSize]byte, []byte) {
	return o.iv, append([]byte(nil), o.ct...)
}

// Valid decrypts ct under the sealed key with the given IV and reports
// whether the plaintext carries valid padding. Nothing else leaks.
func (o *PaddingOracle) Valid(iv [aes.BlockSize]byte, ct []byte) bool {
	pt, err := aes.Decrypt(ct, o.key, aes.CBC{IV: iv})
	if err != nil {
		return false
	}
	return aes.ValidatePadding(pt, aes.BlockSize) == nil
}
