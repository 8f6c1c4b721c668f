package engine

import (
	"math"
	"testing"
)

func TestTax_TierBoundary(t *testing.T) {
	// 1% below one million; boundary is inclusive at one million.
	if got := math.Round(Tax(999_999)); got != 10_000 {
		t.Fatalf("Tax(999999) rounded = %v, want 10000", got)
	}
	if got := Tax(1_000_000); got != 20_000 {
		t.Fatalf("Tax(1000000) = %v, want 20000", got)
	}
	if got := Tax(1_300_000); got != 26_000 {
		t.Fatalf("Tax(1300000) = %v, want 26000", got)
	}
}

func TestNetProceeds(t *testing.T) {
	cases := []struct {
		gross float64
		want  float64
	}{
		{0, 0},
		{100, 99},
		{500_000, 495_000},
		{1_000_000, 980_000},
		{1_300_000, 1_274_000},
		{2_000_000, 1_960_000},
	}
	for _, c := range cases {
		if got := NetProceeds(c.gross); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("NetProceeds(%v) = %v, want %v", c.gross, got, c.want)
		}
	}
}

func TestTax_PlusNetEqualsGross(t *testing.T) {
	for _, gross := range []float64{1, 999_999, 1_000_000, 123_456_789} {
		if got := Tax(gross) + NetProceeds(gross); math.Abs(got-gross) > 1e-6 {
			t.Errorf("Tax+NetProceeds for %v = %v, want %v", gross, got, gross)
		}
	}
}
