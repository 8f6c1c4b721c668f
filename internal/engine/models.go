package engine

import (
	"context"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/hypixel"
)

// FlipKind tags the three flip variants. Each variant carries different
// derived fields, so results keep distinct types and the kind travels in
// the JSON for the presentation layer.
type FlipKind string

const (
	KindAuction FlipKind = "auction"
	KindBazaar  FlipKind = "bazaar"
	KindCraft   FlipKind = "craft"
)

// AuctionFlip is a BIN listing priced below the estimated market price.
type AuctionFlip struct {
	Kind           FlipKind `json:"kind"`
	UUID           string   `json:"uuid"`
	ItemName       string   `json:"item_name"` // raw display name of the buy candidate
	Identity       string   `json:"identity"`  // normalized grouping key
	Tier           string   `json:"tier"`
	BuyPrice       float64  `json:"buy_price"`       // lowest BIN in the group
	EstimatedPrice float64  `json:"estimated_price"` // market price from the wall estimate
	Profit         float64  `json:"profit"`          // NetProceeds(estimate) - buy
	Competitors    int      `json:"competitors"`     // listings in the group
}

// BazaarFlip is a per-unit arbitrage between instant-buy and instant-sell.
type BazaarFlip struct {
	Kind           FlipKind `json:"kind"`
	ProductID      string   `json:"product_id"`
	DisplayName    string   `json:"display_name"`
	InstantBuy     float64  `json:"instant_buy"`
	InstantSell    float64  `json:"instant_sell"`
	Profit         float64  `json:"profit"` // per unit
	BuyMovingWeek  float64  `json:"buy_moving_week"`
	SellMovingWeek float64  `json:"sell_moving_week"`
}

// Ingredient is one recipe line: a bazaar commodity and how many are needed
// per unit crafted. Produced by the recipe oracle.
type Ingredient struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// IngredientCost is an Ingredient priced against the live bazaar snapshot.
type IngredientCost struct {
	ProductID   string  `json:"product_id"`
	DisplayName string  `json:"display_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// CraftFlip is a finished good whose bazaar-sourced material cost sits below
// its tax-adjusted resale value. Carries the full ingredient breakdown.
type CraftFlip struct {
	Kind        FlipKind         `json:"kind"`
	ItemName    string           `json:"item_name"`
	ResalePrice float64          `json:"resale_price"`
	CraftCost   float64          `json:"craft_cost"`
	Profit      float64          `json:"profit"`
	Ingredients []IngredientCost `json:"ingredients"`
}

// CraftCandidate names a finished good and the resale price to judge it
// against. Callers typically derive resale from the auction market estimate.
type CraftCandidate struct {
	ItemName    string  `json:"item_name"`
	ResalePrice float64 `json:"resale_price"`
}

// Valuation is the valuation oracle's opinion of one listing. A zero value
// is the sentinel for "oracle unavailable".
type Valuation struct {
	EstimatedValue float64 `json:"estimated_value"`
	ProfitAfterTax float64 `json:"profit_after_tax"`
	Rationale      string  `json:"rationale"`
}

// DetectorParams holds the thresholds for one detection pass. Passed in
// explicitly so the detectors stay pure over a snapshot.
type DetectorParams struct {
	MinProfit        float64 // auction: minimum tax-adjusted profit
	MinPrice         float64 // auction: minimum buy price considered
	GapPercent       float64 // estimator: wall jump threshold, e.g. 8 for 8%
	SpreadMultiplier float64 // estimator: IQR multiplier, e.g. 2.0
	MinBazaarSpread  float64 // bazaar: minimum per-unit spread
	MinWeeklyVolume  float64 // bazaar: minimum weekly buy volume
	MinCraftProfit   float64 // craft: minimum profit after tax
}

// RecipeOracle infers the bazaar ingredient list for a named item.
// An empty list means "not craftable from tracked commodities".
type RecipeOracle interface {
	InferRecipe(ctx context.Context, itemName string) ([]Ingredient, error)
}

// priceGroup is an ascending price-sorted set of listings sharing one
// normalized identity. Invariant: non-empty.
type priceGroup []hypixel.Auction
