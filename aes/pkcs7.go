package aes

import "fmt"

// Pad appends PKCS#7-style padding to src so its length becomes a multiple
// of blockSize, writing the result into buf (grown if needed). If src is
// already aligned, it is returned as is with no padding appended. Canonical
// PKCS#7 would append a full block there; attack code elsewhere in this
// repo depends on the length not jumping on aligned input, so the deviation
// is kept.
func Pad(buf, src []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 255 {
		panic(fmt.Sprintf("blockSize out of range: %d", blockSize))
	}
	p := 0
	if r := len(src) % blockSize; r != 0 {
		p = blockSize - r
	}
	n := len(src) + p
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
	}
	copy(buf, src)
	for i := len(src); i < n; i++ {
		buf[i] = byte(p)
	}
	return buf
}

// ValidatePadding reports whether src ends in valid padding: a last byte v
// in 1..blockSize whose final v bytes all equal v. Any violation yields
// ErrInvalidPadding with no further detail.
func ValidatePadding(src []byte, blockSize int) error {
	if len(src) == 0 {
		return ErrInvalidPadding
	}
	v := src[len(src)-1]
	if v == 0 || int(v) > blockSize || int(v) > len(src) {
		return ErrInvalidPadding
	}
	for _, b := range src[len(src)-int(v):] {
		if b != v {
			return ErrInvalidPadding
		}
	}
	return nil
}

// Unpad validates src's padding and strips it.
func Unpad(src []byte, blockSize int) ([]byte, error) {
	if err := ValidatePadding(src, blockSize); err != nil {
		return nil, err
	}
	return src[:len(src)-int(src[len(src)-1])], nil
}
