package hypixel

import (
	"context"
	"fmt"
	"strings"
)

// Quote is one bazaar commodity snapshot. InstantBuy is the unit price paid
// to instantly buy from existing sell offers; InstantSell is the unit price
// received for instantly selling into existing buy orders.
type Quote struct {
	ProductID      string  `json:"product_id"`
	DisplayName    string  `json:"display_name"`
	InstantBuy     float64 `json:"instant_buy"`
	InstantSell    float64 `json:"instant_sell"`
	BuyMovingWeek  float64 `json:"buy_moving_week"`
	SellMovingWeek float64 `json:"sell_moving_week"`
}

type bazaarResponse struct {
	Success  bool `json:"success"`
	Products map[string]struct {
		QuickStatus struct {
			BuyPrice       float64 `json:"buyPrice"`
			SellPrice      float64 `json:"sellPrice"`
			BuyMovingWeek  float64 `json:"buyMovingWeek"`
			SellMovingWeek float64 `json:"sellMovingWeek"`
		} `json:"quick_status"`
	} `json:"products"`
}

// FetchBazaar fetches the current bazaar snapshot, keyed by product ID.
func (c *Client) FetchBazaar(ctx context.Context) (map[string]Quote, error) {
	var result bazaarResponse
	if err := c.GetJSON(ctx, c.baseURL+"/skyblock/bazaar", &result); err != nil {
		return nil, fmt.Errorf("fetch bazaar: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("fetch bazaar: success=false")
	}

	quotes := make(map[string]Quote, len(result.Products))
	for id, p := range result.Products {
		quotes[id] = Quote{
			ProductID:      id,
			DisplayName:    ProductDisplayName(id),
			InstantBuy:     p.QuickStatus.BuyPrice,
			InstantSell:    p.QuickStatus.SellPrice,
			BuyMovingWeek:  p.QuickStatus.BuyMovingWeek,
			SellMovingWeek: p.QuickStatus.SellMovingWeek,
		}
	}
	return quotes, nil
}

// ProductDisplayName turns a bazaar product ID like ENCHANTED_LAPIS_LAZULI
// into a human-readable name like "Enchanted Lapis Lazuli".
func ProductDisplayName(productID string) string {
	words := strings.Split(strings.ToLower(productID), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
