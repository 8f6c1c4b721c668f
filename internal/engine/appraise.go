package engine

import (
	"context"
	"log"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/hypixel"
)

// ValuationOracle gives a free-form valuation of one listing.
type ValuationOracle interface {
	InferValue(ctx context.Context, name, lore, tier string, currentPrice float64) (Valuation, error)
}

// Appraise asks the valuation oracle what a listing is worth at its current
// price. Oracle failure yields the zero-value sentinel, never an error: an
// appraisal is advisory and must not break the calling pass.
func Appraise(ctx context.Context, oracle ValuationOracle, listing hypixel.Auction) Valuation {
	if oracle == nil {
		return Valuation{}
	}
	v, err := oracle.InferValue(ctx, listing.ItemName, listing.ItemLore, listing.Tier, listing.StartingBid)
	if err != nil {
		log.Printf("[Engine] valuation oracle failed for %q: %v", listing.ItemName, err)
		return Valuation{}
	}
	return v
}
