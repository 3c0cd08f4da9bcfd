package aes

// state is one 16-byte block laid out as a 4x4 matrix. The flat form is
// column-major: byte i of the block sits at row i%4, column i/4.
type state [4][4]byte

// loadState fills the state from the first 16 bytes of b.
func loadState(b []byte) state {
	var s state
	for i := 0; i < BlockSize; i++ {
		s[i%4][i/4] = b[i]
	}
	return s
}

// store flattens the state back into b, undoing loadState exactly.
func (s *state) store(b []byte) {
	for i := 0; i < BlockSize; i++ {
		b[i] = s[i%4][i/4]
	}
}

func (s *state) xor(o *state) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] ^= o[i][j]
		}
	}
}

func (s *state) subBytes() {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] = sbox[s[i][j]]
		}
	}
}

func (s *state) invSubBytes() {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] = invSbox[s[i][j]]
		}
	}
}

// shiftRows rotates row r left by r positions.
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		row := s[r]
		for j := 0; j < 4; j++ {
			s[r][j] = row[(j+r)%4]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	for r := 1; r < 4; r++ {
		row := s[r]
		for j := 0; j < 4; j++ {
			s[r][(j+r)%4] = row[j]
		}
	}
}

// mixMatrix and invMixMatrix are the MixColumns constants; each output
// column is the GF(2^8) matrix product of the constant with the state
// column.
var (
	mixMatrix = [4][4]byte{
		{0x02, 0x03, 0x01, 0x01},
		{0x01, 0x02, 0x03, 0x01},
		{0x01, 0x01, 0x02, 0x03},
		{0x03, 0x01, 0x01, 0x02},
	}
	invMixMatrix = [4][4]byte{
		{0x0e, 0x0b, 0x0d, 0x09},
		{0x09, 0x0e, 0x0b, 0x0d},
		{0x0d, 0x09, 0x0e, 0x0b},
		{0x0b, 0x0d, 0x09, 0x0e},
	}
)

func (s *state) mulMatrix(m *[4][4]byte) {
	var out state
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				out[i][j] ^= gmul(m[i][k], s[k][j])
			}
		}
	}
	*s = out
}

// mixColumns applies the forward column mix. The final encryption round
// skips this step, signalled by skip.
func (s *state) mixColumns(skip bool) {
	if skip {
		return
	}
	s.mulMatrix(&mixMatrix)
}

// invMixColumns applies the inverse column mix; the first decryption round
// skips it.
func (s *state) invMixColumns(skip bool) {
	if skip {
		return
	}
	s.mulMatrix(&invMixMatrix)
}

// addRoundKey XORs round key r into the state.
func (s *state) addRoundKey(rks *roundKeys, r int) {
	rk := loadState(rks[r][:])
	s.xor(&rk)
}

// round applies one forward round: SubBytes, ShiftRows, MixColumns (skipped
// when final), AddRoundKey.
func (s *state) round(rks *roundKeys, r int, final bool) {
	s.subBytes()
	s.shiftRows()
	s.mixColumns(final)
	s.addRoundKey(rks, r)
}

// invRound undoes round r: AddRoundKey, InvMixColumns (skipped when final,
// i.e. the first inverse round), InvShiftRows, InvSubBytes.
func (s *state) invRound(rks *roundKeys, r int, final bool) {
	s.addRoundKey(rks, r)
	s.invMixColumns(final)
	s.invShiftRows()
	s.invSubBytes()
}
