package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-figures/dsp/core"
	"github.com/cwbudde/algo-figures/internal/testutil"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestTimeAxisMatchesArange(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(10e6))
	axis, err := g.TimeAxis(30e-6)
	if err != nil {
		t.Fatalf("TimeAxis() error = %v", err)
	}
	if len(axis) != 300 {
		t.Fatalf("len = %d, want 300", len(axis))
	}
	if axis[0] != 0 || math.Abs(axis[299]-299e-7) > 1e-18 {
		t.Fatalf("axis ends = %v, %v", axis[0], axis[299])
	}
}

func TestTimeAxisRejectsEmpty(t *testing.T) {
	if _, err := NewGenerator().TimeAxis(0); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestUniformNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.UniformNoise(1, 16)
	if err != nil {
		t.Fatalf("UniformNoise() error = %v", err)
	}
	n2, err := g2.UniformNoise(1, 16)
	if err != nil {
		t.Fatalf("UniformNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if n1[i] < -1 || n1[i] > 1 {
			t.Fatalf("n1[%d] = %v out of range", i, n1[i])
		}
	}
}

func TestNoiseStreamAdvances(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(7))
	a, _ := g.GaussianNoise(0, 1, 8)
	b, _ := g.GaussianNoise(0, 1, 8)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("consecutive draws returned identical noise")
	}

	g.SetSeed(7)
	c, _ := g.GaussianNoise(0, 1, 8)
	testutil.RequireSliceNearlyEqual(t, c, a, 0)
}

func TestGaussianNoiseZeroStdIsMean(t *testing.T) {
	g := NewGenerator()
	out, err := g.GaussianNoise(5, 0, 32)
	if err != nil {
		t.Fatalf("GaussianNoise() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, Fill(5, 32), 0)
}

func TestGaussianNoiseMoments(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(3))
	out, err := g.GaussianNoise(5.0, 0.2, 20000)
	if err != nil {
		t.Fatalf("GaussianNoise() error = %v", err)
	}
	var sum, sumSq float64
	for _, v := range out {
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(len(out))
	std := math.Sqrt(sumSq/float64(len(out)) - mean*mean)
	if math.Abs(mean-5) > 0.01 {
		t.Fatalf("mean = %v, want ~5", mean)
	}
	if math.Abs(std-0.2) > 0.01 {
		t.Fatalf("std = %v, want ~0.2", std)
	}
}

func TestNoiseRejectsInvalid(t *testing.T) {
	g := NewGenerator()
	if _, err := g.UniformNoise(-1, 4); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
	if _, err := g.GaussianNoise(0, -1, 4); err == nil {
		t.Fatal("expected error for negative std")
	}
	if _, err := g.UniformNoise(1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestBandLimitedUniformBounds(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(1))
	tAxis, err := Linspace(0, 20e-6, 10000)
	if err != nil {
		t.Fatal(err)
	}
	noise, err := g.BandLimitedUniform(tAxis, 2e6, 3, 0.5)
	if err != nil {
		t.Fatalf("BandLimitedUniform() error = %v", err)
	}
	if len(noise) != len(tAxis) {
		t.Fatalf("len = %d, want %d", len(noise), len(tAxis))
	}
	testutil.RequireFinite(t, noise)
	for i, v := range noise {
		if v < -0.25 || v > 0.25 {
			t.Fatalf("noise[%d] = %v outside +/-0.25", i, v)
		}
	}
}

func TestBandLimitedUniformZeroAmplitude(t *testing.T) {
	g := NewGenerator()
	tAxis, _ := Linspace(0, 1e-5, 100)
	noise, err := g.BandLimitedUniform(tAxis, 2e6, 3, 0)
	if err != nil {
		t.Fatalf("BandLimitedUniform() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, noise, make([]float64, 100), 0)
}

func TestBandLimitedUniformTooCoarse(t *testing.T) {
	g := NewGenerator()
	tAxis, _ := Linspace(0, 1e-9, 10)
	if _, err := g.BandLimitedUniform(tAxis, 1e3, 1, 1); err == nil {
		t.Fatal("expected error for a grid with fewer than 2 points")
	}
}
