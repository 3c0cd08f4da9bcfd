package aes

// gmul multiplies a and b in GF(2^8) modulo the AES reduction polynomial
// x^8 + x^4 + x^3 + x + 1 (0x11b), by peasant multiplication.
func gmul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}
