package engine

import "github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/hypixel"

// estimateMarketPrice picks the listing whose price best represents what the
// group actually resells at. group must be sorted ascending by StartingBid;
// group[0] is reserved as the buy candidate and never used as evidence.
//
// Listing floors are routinely dragged down by a single lowball seller, so
// the cheapest competitor is not trusted on its own. After trimming outliers
// by interquartile spread, the estimate is the first listing past a large
// relative price jump: the start of the dense "wall" where independent
// sellers cluster. With no jump, prices are already clustered and the
// cheapest trimmed competitor wins. Every edge case degrades to the best
// available evidence rather than failing.
func estimateMarketPrice(group priceGroup, gapPercent, spreadMultiplier float64) (*hypixel.Auction, bool) {
	if len(group) < 3 {
		if len(group) == 2 {
			return &group[1], true
		}
		return nil, false
	}

	candidates := group[1:]
	n := len(candidates)

	q1i, q3i := n/4, 3*n/4
	if q1i >= n || q3i >= n {
		return &candidates[0], true
	}
	q1 := candidates[q1i].StartingBid
	q3 := candidates[q3i].StartingBid
	upperBound := q3 + spreadMultiplier*(q3-q1)

	trimmed := candidates
	for i := n - 1; i >= 0; i-- {
		if candidates[i].StartingBid <= upperBound {
			trimmed = candidates[:i+1]
			break
		}
	}
	if len(trimmed) < 2 {
		// Trimming ate the group; fall back to the cheapest competitor.
		return &candidates[0], true
	}

	gap := gapPercent / 100
	for i := 0; i < len(trimmed)-1; i++ {
		cur := trimmed[i].StartingBid
		if cur <= 0 {
			continue
		}
		if (trimmed[i+1].StartingBid-cur)/cur > gap {
			return &trimmed[i+1], true
		}
	}

	return &trimmed[0], true
}
