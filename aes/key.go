package aes

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	rounds = 10 // AES-128

	keySize128 = 16
	keySize192 = 24
	keySize256 = 32
)

// roundKeys is the expanded key schedule for AES-128. Index 0 is the root
// key itself; indices 1..10 are the derived round keys. It is computed once
// per Encrypt/Decrypt call and read-only afterward.
type roundKeys [rounds + 1][BlockSize]byte

// key is validated raw key material. The three AES key sizes are all valid
// values, but only the 16-byte variant has round logic behind it.
type key []byte

func newKey(b []byte) (key, error) {
	switch len(b) {
	case keySize128, keySize192, keySize256:
		k := make(key, len(b))
		copy(k, b)
		return k, nil
	}
	return nil, KeySizeError(len(b))
}

// expandKey derives the round-key sequence by the Rijndael key expansion:
// 44 four-byte words, where word i is word i-4 XOR word i-1, the latter
// rotated, substituted and rcon-adjusted on every fourth word.
func expandKey(k key) roundKeys {
	switch len(k) {
	case keySize192:
		panic("aes: AES-192 key expansion not implemented")
	case keySize256:
		panic("aes: AES-256 key expansion not implemented")
	}

	var w [4 * (rounds + 1)][4]byte
	for i := 0; i < 4; i++ {
		copy(w[i][:], k[4*i:4*i+4])
	}
	for i := 4; i < len(w); i++ {
		t := w[i-1]
		if i%4 == 0 {
			t = subWord(rotWord(t))
			t[0] ^= rcon[i/4-1]
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-4][j] ^ t[j]
		}
	}

	var rks roundKeys
	for r := range rks {
		for i := 0; i < 4; i++ {
			copy(rks[r][4*i:4*i+4], w[4*r+i][:])
		}
	}
	return rks
}

// rotWord rotates the word's bytes left by one position.
func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

// subWord substitutes each byte through the S-box.
func subWord(w [4]byte) [4]byte {
	for i := range w {
		w[i] = sbox[w[i]]
	}
	return w
}
