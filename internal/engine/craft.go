package engine

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/hypixel"
)

// craftOracleConcurrency bounds concurrent recipe oracle calls per pass.
const craftOracleConcurrency = 4

// ScanCrafts prices each candidate finished good against the bazaar snapshot
// using an oracle-inferred recipe.
//
// Oracle calls are independent and run concurrently under a semaphore. A
// failed or empty recipe excludes that single candidate, never the batch.
// progress (optional) receives (resolved, total) after each candidate
// settles; the counter is incremented under the collect mutex, so the
// reported value is monotone regardless of completion order and reaches
// total exactly when every candidate has resolved.
func (d *Detector) ScanCrafts(
	ctx context.Context,
	candidates []CraftCandidate,
	oracle RecipeOracle,
	quotes map[string]hypixel.Quote,
	progress func(resolved, total int),
) []CraftFlip {
	if len(candidates) == 0 || oracle == nil {
		return nil
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		flips    []CraftFlip
		resolved int
	)
	sem := make(chan struct{}, craftOracleConcurrency)
	total := len(candidates)

	for _, cand := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(c CraftCandidate) {
			defer wg.Done()
			defer func() { <-sem }()

			flip, ok := d.craftProfit(ctx, c, oracle, quotes)

			mu.Lock()
			if ok {
				flips = append(flips, flip)
			}
			resolved++
			if progress != nil {
				// Invoked under the lock so the reported count can never
				// go backwards, whatever order the oracle calls finish in.
				progress(resolved, total)
			}
			mu.Unlock()
		}(cand)
	}
	wg.Wait()

	log.Printf("[Engine] ScanCrafts: %d candidates, %d craftable flips", total, len(flips))
	return flips
}

// CraftCandidatesFromAuctions derives oracle candidates from the auction
// snapshot: each identity with a defensible market estimate becomes a
// candidate whose resale price is that estimate. Sorted by resale descending
// and capped at limit, since every candidate costs one oracle call.
func (d *Detector) CraftCandidatesFromAuctions(listings []hypixel.Auction, limit int) []CraftCandidate {
	groups := groupByIdentity(listings)

	var candidates []CraftCandidate
	for identity, group := range groups {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			return group[i].StartingBid < group[j].StartingBid
		})
		estimate, ok := estimateMarketPrice(group, d.Params.GapPercent, d.Params.SpreadMultiplier)
		if !ok {
			continue
		}
		candidates = append(candidates, CraftCandidate{
			ItemName:    identity,
			ResalePrice: estimate.StartingBid,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ResalePrice > candidates[j].ResalePrice
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// craftProfit resolves one candidate: recipe, full ingredient pricing, tax-
// adjusted margin. Returns ok=false for anything that disqualifies the
// candidate (no recipe, unpriceable ingredient, thin margin).
func (d *Detector) craftProfit(
	ctx context.Context,
	cand CraftCandidate,
	oracle RecipeOracle,
	quotes map[string]hypixel.Quote,
) (CraftFlip, bool) {
	recipe, err := oracle.InferRecipe(ctx, cand.ItemName)
	if err != nil {
		log.Printf("[Engine] recipe oracle failed for %q: %v", cand.ItemName, err)
		return CraftFlip{}, false
	}
	if len(recipe) == 0 {
		// Not craftable from tracked commodities.
		return CraftFlip{}, false
	}

	var (
		cost        float64
		ingredients []IngredientCost
	)
	for _, ing := range recipe {
		if ing.Quantity <= 0 {
			return CraftFlip{}, false
		}
		q, ok := quotes[ing.ProductID]
		if !ok {
			// No partial-cost estimates: one unpriceable ingredient
			// disqualifies the whole candidate.
			return CraftFlip{}, false
		}
		total := q.InstantBuy * ing.Quantity
		cost += total
		ingredients = append(ingredients, IngredientCost{
			ProductID:   ing.ProductID,
			DisplayName: q.DisplayName,
			Quantity:    ing.Quantity,
			UnitPrice:   q.InstantBuy,
			TotalPrice:  total,
		})
	}
	if cost <= 0 {
		return CraftFlip{}, false
	}

	profit := NetProceeds(cand.ResalePrice) - cost
	if profit <= d.Params.MinCraftProfit {
		return CraftFlip{}, false
	}

	return CraftFlip{
		Kind:        KindCraft,
		ItemName:    cand.ItemName,
		ResalePrice: cand.ResalePrice,
		CraftCost:   cost,
		Profit:      profit,
		Ingredients: ingredients,
	}, true
}
