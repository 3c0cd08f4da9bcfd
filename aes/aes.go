// Package aes is a from-scratch AES-128 block cipher with ECB, CBC and CTR
// modes and the PKCS#7-style padding the rest of this repo's exercises are
// built on. It deliberately reproduces reference behavior, not a hardened
// implementation: it is not constant-time, and its quirks (see Pad) are
// attack surfaces the surrounding challenges probe.
package aes

import "encoding/binary"

// Encrypt encrypts plaintext under key with the given mode. ECB and CBC pad
// the plaintext first; CTR is a stream and takes any length. The key must
// be 16, 24 or 32 bytes; only the 16-byte (AES-128) path is implemented,
// and routing a 24- or 32-byte key, or GCM, panics.
func Encrypt(plaintext, key []byte, mode Mode) ([]byte, error) {
	return crypt(plaintext, key, mode, false)
}

// Decrypt inverts Encrypt. It does not strip padding: callers run Unpad or
// ValidatePadding on the result, which is what lets padding-oracle code
// probe validity separately from decryption.
func Decrypt(ciphertext, key []byte, mode Mode) ([]byte, error) {
	return crypt(ciphertext, key, mode, true)
}

func crypt(src, keyBytes []byte, mode Mode, decrypt bool) ([]byte, error) {
	k, err := newKey(keyBytes)
	if err != nil {
		return nil, err
	}
	rks := expandKey(k)

	switch m := mode.(type) {
	case ECB:
		return blockCrypt(src, &rks, decrypt, nil)
	case CBC:
		return blockCrypt(src, &rks, decrypt, &m.IV)
	case CTR:
		return ctrStream(src, &rks, m.Nonce), nil
	case GCM:
		panic("aes: GCM mode not implemented")
	}
	panic("aes: unknown mode")
}

// blockCrypt runs the ECB or CBC pipeline over src. iv is nil for ECB.
// Both directions pad src to a block multiple before splitting, matching
// the reference behavior: a misaligned ciphertext is padded and decrypted
// rather than rejected.
func blockCrypt(src []byte, rks *roundKeys, decrypt bool, iv *[BlockSize]byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, BlockSizeError(0)
	}
	buf := Pad(nil, src, BlockSize)
	if len(buf)%BlockSize != 0 {
		return nil, BlockSizeError(len(buf))
	}

	var chain state
	if iv != nil {
		chain = loadState(iv[:])
	}
	var prevCT state
	for i := 0; i < len(buf); i += BlockSize {
		b := buf[i : i+BlockSize]
		s := loadState(b)
		switch {
		case decrypt:
			if iv != nil {
				prevCT = s
			}
			decryptBlock(&s, rks)
			if iv != nil {
				s.xor(&chain)
				chain = prevCT
			}
		default:
			if iv != nil {
				s.xor(&chain)
			}
			encryptBlock(&s, rks)
			if iv != nil {
				chain = s
			}
		}
		s.store(b)
	}
	return buf, nil
}

// ctrStream XORs src with the keystream for nonce. It serves both
// directions: applying it twice with the same nonce and key is the
// identity.
func ctrStream(src []byte, rks *roundKeys, nonce uint64) []byte {
	out := make([]byte, len(src))
	var in, ks [BlockSize]byte
	binary.LittleEndian.PutUint64(in[:8], nonce)
	for i, c := 0, uint64(0); i < len(src); i, c = i+BlockSize, c+1 {
		binary.LittleEndian.PutUint64(in[8:], c)
		s := loadState(in[:])
		encryptBlock(&s, rks)
		s.store(ks[:])

		n := len(src) - i
		if n > BlockSize {
			n = BlockSize
		}
		for j := 0; j < n; j++ {
			out[i+j] = src[i+j] ^ ks[j]
		}
	}
	return out
}

// encryptBlock drives one block through the forward pipeline: the root-key
// XOR, then rounds 1..10, the last skipping MixColumns.
func encryptBlock(s *state, rks *roundKeys) {
	s.addRoundKey(rks, 0)
	for r := 1; r <= rounds; r++ {
		s.round(rks, r, r == rounds)
	}
}

// decryptBlock mirrors encryptBlock: rounds 10..1 inverted, the first
// skipping InvMixColumns, then the closing root-key XOR.
func decryptBlock(s *state, rks *roundKeys) {
	for r := rounds; r >= 1; r-- {
		s.invRound(rks, r, r == rounds)
	}
	s.addRoundKey(rks, 0)
}
