package oracle

import (
	"errors"

	"cryptopals/aes"
)

// RecoverPlaintext mounts the CBC padding-oracle attack: given only the
// IV, the ciphertext and a validity predicate, it recovers the full padded
// plaintext without the key. For each ciphertext block it forges the
// preceding block so the oracle confirms, byte by byte, each padding value
// 0x01..0x10, which pins down the block's decryption before the XOR.
func RecoverPlaintext(valid func(iv [aes.BlockSize]byte, ct []byte) bool, iv [aes.BlockSize]byte, ct []byte) ([]byte, error) {
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, errors.New("oracle: ciphertext is not whole blocks")
	}

	pt := make([]byte, 0, len(ct))
	prev := iv[:]
	for b := 0; b < len(ct); b += aes.BlockSize {
		target := ct[b : b+aes.BlockSize]
		inter, err := recoverIntermediate(valid, target)
		if err != nil {
			return nil, err
		}
		for j := 0; j < aes.BlockSize; j++ {
			pt = append(pt, inter[j]^prev[j])
		}
		prev = target
	}
	return pt, nil
}

// recoverIntermediate finds the block-cipher decryption of target (the
// value XORed with the previous ciphertext block to give plaintext) by
// presenting forged IVs to the oracle.
func recoverIntermediate(valid func(iv [aes.BlockSize]byte, ct []byte) bool, target []byte) ([aes.BlockSize]byte, error) {
	var inter, forged [aes.BlockSize]byte
	for pad := 1; pad <= aes.BlockSize; pad++ {
		idx := aes.BlockSize - pad
		for j := idx + 1; j < aes.BlockSize; j++ {
			forged[j] = inter[j] ^ byte(pad)
		}
		found := false
		for guess := 0; guess < 256; guess++ {
			forged[idx] = byte(guess)
			if !valid(forged, target) {
				continue
			}
			// A hit with pad 1 can be a false positive when the real
			// plaintext happens to end in 0x02 0x02 (or longer): perturb
			// the byte to the left and re-ask. Real 0x01 padding does not
			// care about that byte.
			if pad == 1 {
				reprobe := forged
				reprobe[idx-1] ^= 0xff
				if !valid(reprobe, target) {
					continue
				}
			}
			inter[idx] = byte(guess) ^ byte(pad)
			found = true
			break
		}
		if !found {
			return inter, errors.New("oracle: no byte produced valid padding")
		}
	}
	return inter, nil
}
