package engine

import (
	"log"
	"sort"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/hypixel"
)

// Detector runs the detection passes. It holds no snapshot state: every scan
// is a pure transform over the listings and quotes it is handed.
type Detector struct {
	Params DetectorParams
}

// NewDetector creates a Detector with the given thresholds.
func NewDetector(params DetectorParams) *Detector {
	return &Detector{Params: params}
}

// ScanAuctions finds BIN listings priced below the estimated market price of
// their identity group, net of claim tax. Deterministic given the snapshot;
// ranking is left to the presentation layer.
func (d *Detector) ScanAuctions(listings []hypixel.Auction) []AuctionFlip {
	groups := groupByIdentity(listings)

	var flips []AuctionFlip
	for identity, group := range groups {
		if len(group) < 2 {
			// A lone listing is no evidence of a resale price.
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			return group[i].StartingBid < group[j].StartingBid
		})

		cheapest := group[0]
		buyPrice := cheapest.StartingBid
		if buyPrice < d.Params.MinPrice {
			continue
		}

		estimate, ok := estimateMarketPrice(group, d.Params.GapPercent, d.Params.SpreadMultiplier)
		if !ok || estimate.StartingBid <= buyPrice {
			// No defensible estimate, or degenerate (estimate at or below
			// the floor). Frequent and expected; silently no candidate.
			continue
		}

		profit := NetProceeds(estimate.StartingBid) - buyPrice
		if profit <= d.Params.MinProfit {
			continue
		}

		flips = append(flips, AuctionFlip{
			Kind:           KindAuction,
			UUID:           cheapest.UUID,
			ItemName:       cheapest.ItemName,
			Identity:       identity,
			Tier:           cheapest.Tier,
			BuyPrice:       buyPrice,
			EstimatedPrice: estimate.StartingBid,
			Profit:         profit,
			Competitors:    len(group),
		})
	}

	log.Printf("[Engine] ScanAuctions: %d listings, %d groups, %d flips", len(listings), len(groups), len(flips))
	return flips
}

// groupByIdentity filters to fixed-price, unclaimed listings and buckets them
// by normalized identity.
func groupByIdentity(listings []hypixel.Auction) map[string]priceGroup {
	groups := make(map[string]priceGroup)
	for _, a := range listings {
		if !a.Bin || a.Claimed {
			continue
		}
		identity := Normalize(a.ItemName)
		if identity == "" {
			continue
		}
		groups[identity] = append(groups[identity], a)
	}
	return groups
}
