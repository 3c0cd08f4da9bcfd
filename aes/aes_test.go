package aes_test

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"

	"cryptopals/aes"
)

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decoding hex %q: %v", s, err)
	}
	return b
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestECBKnownAnswer(t *testing.T) {
	t.Parallel()
	pt := []byte("Two One Nine TwoTwo One Nine Two")
	key := []byte("Thats my Kung Fu")
	want := unhex(t, "29c3505f571420f6402299b31a02d73a29c3505f571420f6402299b31a02d73a")

	ct, err := aes.Encrypt(pt, key, aes.ECB{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ct, want) {
		t.Errorf("got %x; want %x", ct, want)
	}
	// Two identical plaintext blocks came out as two identical ciphertext
	// blocks: the ECB weakness, stated as a property.
	if !bytes.Equal(ct[:16], ct[16:]) {
		t.Errorf("ECB ciphertext blocks differ: %x vs %x", ct[:16], ct[16:])
	}

	back, err := aes.Decrypt(ct, key, aes.ECB{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, pt) {
		t.Errorf("got %q; want %q", back, pt)
	}
}

func TestCBCKnownAnswer(t *testing.T) {
	t.Parallel()
	pt := []byte("Aguante BocaaaaaAguante Bocaaaaa")
	key := []byte("YELLOW SUBMARINE")
	want := unhex(t, "b4aa1a676828a22b6d8326ec96c526194885cb8a2625de254c4089c2961257f4")

	ct, err := aes.Encrypt(pt, key, aes.CBC{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ct, want) {
		t.Errorf("got %x; want %x", ct, want)
	}
	back, err := aes.Decrypt(ct, key, aes.CBC{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, pt) {
		t.Errorf("got %q; want %q", back, pt)
	}
}

func TestCTRKnownAnswer(t *testing.T) {
	t.Parallel()
	pt := []byte("BOCA YO TE AMO YO TE SIGO A TODOS LADOS DE CORAZON")
	key := []byte("YELLOW SUBMARINE")
	want := unhex(t, "349e880a8ffb09c2b7ea231c215ce32b9dcc3899b83e5b9980fa5eb3fba137577e80c28a5534646b879f9765fdaec5978ece")

	ct, err := aes.Encrypt(pt, key, aes.CTR{Nonce: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ct, want) {
		t.Errorf("got %x; want %x", ct, want)
	}
	back, err := aes.Decrypt(ct, key, aes.CTR{Nonce: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, pt) {
		t.Errorf("got %q; want %q", back, pt)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	randBytes := func(n int) []byte {
		b := make([]byte, n)
		rng.Read(b)
		return b
	}

	for i := 0; i < 10; i++ {
		key := randBytes(16)

		var iv [aes.BlockSize]byte
		rng.Read(iv[:])
		for _, mode := range []aes.Mode{aes.ECB{}, aes.CBC{IV: iv}} {
			pt := randBytes(16 * (1 + rng.Intn(8)))
			ct, err := aes.Encrypt(pt, key, mode)
			if err != nil {
				t.Fatal(err)
			}
			back, err := aes.Decrypt(ct, key, mode)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(back, pt) {
				t.Fatalf("%T: round trip got %x; want %x", mode, back, pt)
			}
		}

		// CTR round-trips at any length, including partial final blocks.
		nonce := rng.Uint64()
		for _, n := range []int{1, 5, 15, 16, 17, 100} {
			pt := randBytes(n)
			ct, err := aes.Encrypt(pt, key, aes.CTR{Nonce: nonce})
			if err != nil {
				t.Fatal(err)
			}
			if len(ct) != n {
				t.Fatalf("CTR ciphertext length %d; want %d", len(ct), n)
			}
			back, err := aes.Decrypt(ct, key, aes.CTR{Nonce: nonce})
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(back, pt) {
				t.Fatalf("CTR round trip got %x; want %x", back, pt)
			}
		}
	}
}

// Flipping one ciphertext bit in block i scrambles plaintext block i and
// flips exactly the corresponding bit in block i+1, leaving everything else
// alone. CBC bit-flipping attacks depend on precisely this.
func TestCBCBitFlipPropagation(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	key := make([]byte, 16)
	rng.Read(key)
	var iv [aes.BlockSize]byte
	rng.Read(iv[:])
	pt := make([]byte, 4*aes.BlockSize)
	rng.Read(pt)

	ct, err := aes.Encrypt(pt, key, aes.CBC{IV: iv})
	if err != nil {
		t.Fatal(err)
	}
	nblocks := len(ct) / aes.BlockSize

	for block := 0; block < nblocks-1; block++ {
		for _, bytePos := range []int{0, 7, 15} {
			for _, bit := range []uint{0, 3, 7} {
				flipped := append([]byte(nil), ct...)
				flipped[block*aes.BlockSize+bytePos] ^= 1 << bit

				got, err := aes.Decrypt(flipped, key, aes.CBC{IV: iv})
				if err != nil {
					t.Fatal(err)
				}
				for b := 0; b < nblocks; b++ {
					gb := got[b*aes.BlockSize : (b+1)*aes.BlockSize]
					pb := pt[b*aes.BlockSize : (b+1)*aes.BlockSize]
					switch b {
					case block:
						if bytes.Equal(gb, pb) {
							t.Errorf("block %d not scrambled", b)
						}
					case block + 1:
						diff := make([]byte, aes.BlockSize)
						for j := range diff {
							diff[j] = gb[j] ^ pb[j]
						}
						want := make([]byte, aes.BlockSize)
						want[bytePos] = 1 << bit
						if !bytes.Equal(diff, want) {
							t.Errorf("block %d: diff %x; want single bit %x", b, diff, want)
						}
					default:
						if !bytes.Equal(gb, pb) {
							t.Errorf("block %d changed", b)
						}
					}
				}
			}
		}
	}
}

func TestInvalidKeySize(t *testing.T) {
	t.Parallel()
	_, err := aes.Encrypt([]byte("hello, world...."), make([]byte, 15), aes.ECB{})
	if err != aes.KeySizeError(15) {
		t.Errorf("got %v; want %v", err, aes.KeySizeError(15))
	}
}

// 24- and 32-byte keys are valid key material but have no round logic: they
// must fault loudly, never fall back to AES-128.
func TestUnimplementedKeySizes(t *testing.T) {
	t.Parallel()
	for _, n := range []int{24, 32} {
		n := n
		mustPanic(t, "Encrypt", func() {
			aes.Encrypt([]byte("hello, world...."), make([]byte, n), aes.ECB{})
		})
	}
}

func TestGCMUnimplemented(t *testing.T) {
	t.Parallel()
	mustPanic(t, "Encrypt with GCM", func() {
		aes.Encrypt([]byte("hello, world...."), make([]byte, 16), aes.GCM{})
	})
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()
	key := []byte("YELLOW SUBMARINE")
	for _, mode := range []aes.Mode{aes.ECB{}, aes.CBC{}} {
		if _, err := aes.Encrypt(nil, key, mode); err != aes.BlockSizeError(0) {
			t.Errorf("%T: got %v; want %v", mode, err, aes.BlockSizeError(0))
		}
	}
	ct, err := aes.Encrypt(nil, key, aes.CTR{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ct) != 0 {
		t.Errorf("CTR of empty input produced %d bytes", len(ct))
	}
}

// Decryption leaves the padding in place; stripping it is the caller's
// move, via Unpad.
func TestDecryptKeepsPadding(t *testing.T) {
	t.Parallel()
	pt := []byte("ICE ICE BABY")
	key := []byte("YELLOW SUBMARINE")
	ct, err := aes.Encrypt(pt, key, aes.ECB{})
	if err != nil {
		t.Fatal(err)
	}
	padded, err := aes.Decrypt(ct, key, aes.ECB{})
	if err != nil {
		t.Fatal(err)
	}
	if err := aes.ValidatePadding(padded, aes.BlockSize); err != nil {
		t.Fatal(err)
	}
	back, err := aes.Unpad(padded, aes.BlockSize)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, pt) {
		t.Errorf("got %q; want %q", back, pt)
	}
}

// A misaligned ciphertext is padded up and decrypted rather than rejected;
// the output is garbage but the call succeeds. Reference behavior, pinned.
func TestMisalignedCiphertextDecrypts(t *testing.T) {
	t.Parallel()
	key := []byte("YELLOW SUBMARINE")
	pt, err := aes.Decrypt(make([]byte, 20), key, aes.ECB{})
	if err != nil {
		t.Fatal(err)
	}
	if len(pt) != 32 {
		t.Errorf("got %d bytes; want 32", len(pt))
	}
}
