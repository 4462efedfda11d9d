package cqt

import (
	"math"
	"testing"
)

func TestCacheFreqRatio(t *testing.T) {
	if got := derived.getFreqRatio(5); got != math.Pow(2, 1.0/5) {
		t.Fatalf("got %v, want 2^(1/5)", got)
	}
	if got := derived.getFreqRatio(10); got != math.Pow(2, 1.0/10) {
		t.Fatalf("got %v, want 2^(1/10)", got)
	}
}

func TestCacheQFactor(t *testing.T) {
	for _, bins := range []int{1, 12, 24, 48} {
		want := 1 / (math.Pow(2, 1/float64(bins)) - 1)
		if got := derived.getQFactor(bins); math.Abs(got-want) > 1e-12 {
			t.Fatalf("bins=%d: got %v, want %v", bins, got, want)
		}
	}
}

func TestCachePhaseFactors(t *testing.T) {
	const length = 256
	const rate = 44100.0

	phase := derived.getPhaseFactors(length, rate)
	if len(phase) != length {
		t.Fatalf("len=%d, want %d", len(phase), length)
	}
	if phase[0] != 0 {
		t.Fatalf("phase[0]=%v, want 0", phase[0])
	}
	for n, v := range phase {
		want := -2 * math.Pi * float64(n) / rate
		if v != want {
			t.Fatalf("phase[%d]=%v, want %v", n, v, want)
		}
	}
}

func TestCacheIdempotence(t *testing.T) {
	a := derived.getPhaseFactors(128, 22050)
	b := derived.getPhaseFactors(128, 22050)
	if &a[0] != &b[0] {
		t.Fatal("repeated phase factor lookups must return the identical slice")
	}

	ha := derived.getHann(512)
	hb := derived.getHann(512)
	if &ha.coeffs[0] != &hb.coeffs[0] {
		t.Fatal("repeated hann lookups must return the identical slice")
	}
	if ha.sumSquares != hb.sumSquares {
		t.Fatalf("sum of squares differs across lookups: %v != %v", ha.sumSquares, hb.sumSquares)
	}
}

func TestCacheDistinguishesSampleRates(t *testing.T) {
	a := derived.getPhaseFactors(64, 44100)
	b := derived.getPhaseFactors(64, 48000)
	if a[1] == b[1] {
		t.Fatal("phase factors for different sample rates must differ")
	}
}

func TestCacheHannSumSquares(t *testing.T) {
	h := derived.getHann(4)
	// Symmetric Hann of length 4: 0, 0.75, 0.75, 0.
	if math.Abs(h.sumSquares-1.125) > 1e-12 {
		t.Fatalf("sumSquares=%v, want 1.125", h.sumSquares)
	}
}
