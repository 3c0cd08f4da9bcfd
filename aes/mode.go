package aes

// Mode selects a block-cipher mode of operation and carries its parameter.
// The set is closed: Encrypt and Decrypt dispatch over exactly these four.
type Mode interface {
	mode()
}

// ECB encrypts each block independently. Identical plaintext blocks yield
// identical ciphertext blocks.
type ECB struct{}

// CBC chains blocks through the IV: each plaintext block is XORed with the
// previous ciphertext block (the IV for the first) before encryption. The
// IV is never mutated by the engine.
type CBC struct {
	IV [BlockSize]byte
}

// CTR is a stream construction: block c of the keystream is the encryption
// of the little-endian nonce followed by the little-endian counter c.
// Encryption and decryption are the same operation.
type CTR struct {
	Nonce uint64
}

// GCM is declared for completeness of the mode set; using it panics.
type GCM struct{}

func (ECB) mode() {}
func (CBC) mode() {}
func (CTR) mode() {}
func (GCM) mode() {}
