package zerocross

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRisingSingleSignChange(t *testing.T) {
	tAxis := []float64{0, 1, 2, 3, 4}
	v := []float64{-3, -2, -0.5, 1.5, 2}

	got, err := Rising(tAxis, v)
	if err != nil {
		t.Fatalf("Rising error: %v", err)
	}
	// Root of the line through (2, -0.5) and (3, 1.5).
	want := []Crossing{{Index: 2, Time: 2.25}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("Rising mismatch (-want +got):\n%s", diff)
	}
}

func TestRisingIgnoresFallingEdges(t *testing.T) {
	tAxis := []float64{0, 1, 2, 3, 4, 5}
	v := []float64{1, -1, 0, 1, -1, 2}

	got, err := Rising(tAxis, v)
	if err != nil {
		t.Fatalf("Rising error: %v", err)
	}
	want := []Crossing{{Index: 1, Time: 2}, {Index: 4, Time: 4 + 1.0/3}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("Rising mismatch (-want +got):\n%s", diff)
	}
}

func TestRisingLengthMismatch(t *testing.T) {
	if _, err := Rising([]float64{0, 1}, []float64{1}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestInterpolateFlat(t *testing.T) {
	if got := Interpolate(3, 4, 0, 0); got != 3 {
		t.Fatalf("Interpolate flat = %v, want 3", got)
	}
}

func TestNearestPicksClosestCandidate(t *testing.T) {
	tAxis := make([]float64, 1000)
	v := make([]float64, 1000)
	for i := range tAxis {
		tAxis[i] = 2.5 + 5*float64(i)/999
		v[i] = 2.5 * math.Sin(2*math.Pi*0.1*(tAxis[i]-5.1))
	}
	// Spurious noise crossing near the start of the window.
	v[20], v[21] = -0.1, 0.1

	got, ok, err := Nearest(tAxis, v, 5.0)
	if err != nil {
		t.Fatalf("Nearest error: %v", err)
	}
	if !ok {
		t.Fatal("expected a crossing")
	}
	if math.Abs(got-5.1) > 1e-3 {
		t.Fatalf("Nearest = %v, want ~5.1", got)
	}
}

func TestNearestFallsBackToReference(t *testing.T) {
	got, ok, err := Nearest([]float64{0, 1, 2}, []float64{1, 2, 3}, 1.5)
	if err != nil {
		t.Fatalf("Nearest error: %v", err)
	}
	if ok || got != 1.5 {
		t.Fatalf("Nearest = %v, %v; want 1.5, false", got, ok)
	}
}
