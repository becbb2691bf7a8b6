package integral

import "testing"

// FuzzMulMatchesNative verifies the shift-and-add multiplier against the
// native multiply across fuzzer-chosen operands. Any divergence would mean
// the bit walk or the carry accumulation is wrong.
func FuzzMulMatchesNative(f *testing.F) {
	// Seed corpus with boundary and carry-heavy operands
	f.Add(uint32(0), uint32(0))
	f.Add(uint32(1), uint32(1))
	f.Add(uint32(0xFFFF), uint32(0xFFFF))
	f.Add(uint32(0xAAAAAAAA), uint32(3))
	f.Add(uint32(0xFFFFFFFF), uint32(2))
	f.Add(uint32(65536), uint32(65536))

	f.Fuzz(func(t *testing.T, x, y uint32) {
		want := Word(x) * Word(y)
		if got := Mul(Word(x), Word(y)); got != want {
			t.Errorf("Mul(%d, %d) = %d, want %d", x, y, got, want)
		}

		wide := mulWide(Word(x), Word(y))
		if wide != uint64(x)*uint64(y) {
			t.Errorf("mulWide(%d, %d) = %d, want %d", x, y, wide, uint64(x)*uint64(y))
		}
	})
}
