package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/hypixel"
)

type stubValuer struct {
	v   Valuation
	err error
}

func (s *stubValuer) InferValue(_ context.Context, _, _, _ string, _ float64) (Valuation, error) {
	return s.v, s.err
}

func TestAppraise_ReturnsOracleValuation(t *testing.T) {
	want := Valuation{EstimatedValue: 5_000_000, ProfitAfterTax: 900_000, Rationale: "clean maxed stats"}
	got := Appraise(context.Background(), &stubValuer{v: want}, hypixel.Auction{ItemName: "Hyperion", StartingBid: 4_000_000})
	if got != want {
		t.Fatalf("Appraise = %+v, want %+v", got, want)
	}
}

func TestAppraise_FailureYieldsZeroSentinel(t *testing.T) {
	got := Appraise(context.Background(), &stubValuer{err: errors.New("rate limited")},
		hypixel.Auction{ItemName: "Hyperion", StartingBid: 4_000_000})
	if got != (Valuation{}) {
		t.Fatalf("failed appraisal should be the zero sentinel, got %+v", got)
	}
}

func TestAppraise_NilOracle(t *testing.T) {
	if got := Appraise(context.Background(), nil, hypixel.Auction{}); got != (Valuation{}) {
		t.Fatalf("nil oracle should be the zero sentinel, got %+v", got)
	}
}
