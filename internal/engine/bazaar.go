package engine

import (
	"log"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/hypixel"
)

// ScanBazaar computes per-unit arbitrage from instant buy/sell quote pairs.
// Both sides of the trade are directly quoted, so no estimation step is
// needed; the only guards are the spread floor and a weekly-volume liquidity
// floor, since an illiquid spread is not executable at scale.
func (d *Detector) ScanBazaar(quotes map[string]hypixel.Quote) []BazaarFlip {
	var flips []BazaarFlip
	for _, q := range quotes {
		profit := q.InstantSell - q.InstantBuy
		if profit <= d.Params.MinBazaarSpread {
			continue
		}
		if q.BuyMovingWeek <= d.Params.MinWeeklyVolume {
			continue
		}
		flips = append(flips, BazaarFlip{
			Kind:           KindBazaar,
			ProductID:      q.ProductID,
			DisplayName:    q.DisplayName,
			InstantBuy:     q.InstantBuy,
			InstantSell:    q.InstantSell,
			Profit:         profit,
			BuyMovingWeek:  q.BuyMovingWeek,
			SellMovingWeek: q.SellMovingWeek,
		})
	}
	log.Printf("[Engine] ScanBazaar: %d quotes, %d flips", len(quotes), len(flips))
	return flips
}
