package pass

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-figures/dsp/filter/biquad"
)

func TestButterworthLP_SectionCount(t *testing.T) {
	sr := 48000.0
	for order := 1; order <= 8; order++ {
		want := (order + 1) / 2
		got := ButterworthLP(1000, order, sr)
		if len(got) != want {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), want)
		}
	}
}

func TestButterworth_OddOrder_HasFirstOrderSection(t *testing.T) {
	sr := 48000.0
	for _, order := range []int{1, 3, 5, 7} {
		sections := ButterworthLP(1000, order, sr)
		last := sections[len(sections)-1]
		if last.B2 != 0 || last.A2 != 0 {
			t.Fatalf("order %d: last section is not first-order: %#v", order, last)
		}
	}
}

func TestButterworthLP_Minus3dBAtCutoff(t *testing.T) {
	// The noise filter of the zero-crossing figure: 10 MHz on a ~200 MHz grid.
	sr := 1 / (5.0 / 999 * 1e-6)
	for _, order := range []int{1, 2, 3, 4, 5, 6, 8} {
		chain := biquad.NewChain(ButterworthLP(10e6, order, sr))
		got := 20 * math.Log10(magChain(chain, 10e6, sr))
		if !almostEqual(got, -3.0103, 0.01) {
			t.Fatalf("order %d: |H(fc)| = %.4f dB, want -3.01 dB", order, got)
		}
		if dc := magChain(chain, 1e-3, sr); !almostEqual(dc, 1, 1e-9) {
			t.Fatalf("order %d: DC gain = %v, want 1", order, dc)
		}
	}
}

func TestButterworthLP_HigherOrderSteeperRolloff(t *testing.T) {
	sr := 48000.0
	prevAtten := 0.0
	for _, order := range []int{1, 2, 4, 6, 8} {
		chain := biquad.NewChain(ButterworthLP(1000, order, sr))
		atten := -chain.MagnitudeDB(4000, sr)
		if atten <= prevAtten {
			t.Fatalf("order %d: attenuation %.2f dB not above %.2f dB", order, atten, prevAtten)
		}
		prevAtten = atten
	}
}

func TestButterworth_AllSectionsStable(t *testing.T) {
	for _, sr := range []float64{48000, 10e6, 199.8e6} {
		for order := 1; order <= 8; order++ {
			for _, c := range ButterworthLP(sr/20, order, sr) {
				assertFiniteCoefficients(t, c)
				assertStableSection(t, c)
			}
		}
	}
}

func TestButterworth_InvalidInputs(t *testing.T) {
	if got := ButterworthLP(1000, -1, 48000); got != nil {
		t.Fatal("expected nil for negative order")
	}
	if got := ButterworthLP(1000, 0, 48000); got != nil {
		t.Fatal("expected nil for zero order")
	}
	for _, c := range ButterworthLP(30000, 4, 48000) {
		if c != (biquad.Coefficients{}) {
			t.Fatalf("expected zero coefficients above Nyquist, got %#v", c)
		}
	}
}

func TestLowpassRBJ_HalfBandKnownValues(t *testing.T) {
	// Second-order Butterworth at a quarter of the sample rate:
	// b = [0.29289322, 0.58578644, 0.29289322], a = [1, 0, 0.17157288].
	c := LowpassRBJ(12000, 1/math.Sqrt2, 48000)
	want := biquad.Coefficients{B0: 0.2928932188, B1: 0.5857864376, B2: 0.2928932188, A1: 0, A2: 0.1715728753}
	for i, pair := range [][2]float64{
		{c.B0, want.B0}, {c.B1, want.B1}, {c.B2, want.B2}, {c.A1, want.A1}, {c.A2, want.A2},
	} {
		if !almostEqual(pair[0], pair[1], 1e-9) {
			t.Fatalf("coefficient %d = %.10f, want %.10f", i, pair[0], pair[1])
		}
	}
}

func TestLowpassRBJ_DefaultQ(t *testing.T) {
	got := LowpassRBJ(1000, 0, 48000)
	want := LowpassRBJ(1000, 1/math.Sqrt2, 48000)
	if got != want {
		t.Fatalf("q=0 should fall back to 1/sqrt(2): %#v vs %#v", got, want)
	}
}
