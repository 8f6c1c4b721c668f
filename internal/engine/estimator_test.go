package engine

import (
	"testing"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/hypixel"
)

func groupOf(prices ...float64) priceGroup {
	g := make(priceGroup, len(prices))
	for i, p := range prices {
		g[i] = hypixel.Auction{UUID: "a", ItemName: "Test Item", StartingBid: p, Bin: true}
	}
	return g
}

func estimate(t *testing.T, prices ...float64) (float64, bool) {
	t.Helper()
	ref, ok := estimateMarketPrice(groupOf(prices...), 8, 2.0)
	if !ok {
		return 0, false
	}
	return ref.StartingBid, true
}

func TestEstimate_WallJumpPicksClusterStart(t *testing.T) {
	// Candidates [105,110,500]: the 110→500 jump (~355%) exceeds 8%, so the
	// wall starts at 500.
	got, ok := estimate(t, 100, 105, 110, 500)
	if !ok || got != 500 {
		t.Fatalf("estimate = %v (ok=%v), want 500", got, ok)
	}
}

func TestEstimate_NoJumpReturnsCheapestCandidate(t *testing.T) {
	got, ok := estimate(t, 100, 102, 104, 106)
	if !ok || got != 102 {
		t.Fatalf("estimate = %v (ok=%v), want 102", got, ok)
	}
}

func TestEstimate_TwoListingsReturnsSecond(t *testing.T) {
	got, ok := estimate(t, 100, 150)
	if !ok || got != 150 {
		t.Fatalf("estimate = %v (ok=%v), want 150", got, ok)
	}
}

func TestEstimate_SingleListingIsInsufficient(t *testing.T) {
	if _, ok := estimate(t, 100); ok {
		t.Fatal("single listing should yield no estimate")
	}
	if _, ok := estimateMarketPrice(nil, 8, 2.0); ok {
		t.Fatal("empty group should yield no estimate")
	}
}

func TestEstimate_OutlierTrimmedBeforeWallScan(t *testing.T) {
	// Candidates [100,102,104,106,10000]: Q1=102, Q3=106, upper=114, so the
	// 10000 troll listing is trimmed and never read as a wall.
	got, ok := estimate(t, 90, 100, 102, 104, 106, 10000)
	if !ok || got != 100 {
		t.Fatalf("estimate = %v (ok=%v), want 100", got, ok)
	}
}

func TestEstimate_FirstGapWins(t *testing.T) {
	// Two qualifying gaps; the scan stops at the first one.
	got, ok := estimate(t, 100, 100, 120, 150)
	if !ok || got != 120 {
		t.Fatalf("estimate = %v (ok=%v), want 120 (first gap)", got, ok)
	}
}

func TestEstimate_ReferenceIsAlwaysACandidate(t *testing.T) {
	prices := [][]float64{
		{100, 105, 110, 500},
		{100, 102, 104, 106},
		{50, 60, 70, 80, 90, 5000},
		{1, 2, 3},
	}
	for _, ps := range prices {
		group := groupOf(ps...)
		ref, ok := estimateMarketPrice(group, 8, 2.0)
		if !ok {
			t.Fatalf("no estimate for %v", ps)
		}
		found := false
		for i := 1; i < len(group); i++ {
			if group[i].StartingBid == ref.StartingBid {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("estimate %v for %v is not a candidate", ref.StartingBid, ps)
		}
		if ref.StartingBid <= group[0].StartingBid && len(group) > 1 && group[1].StartingBid > group[0].StartingBid {
			t.Fatalf("estimate %v not above buy candidate for %v", ref.StartingBid, ps)
		}
	}
}
