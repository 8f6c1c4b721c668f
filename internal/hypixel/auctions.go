package hypixel

import (
	"context"
	"fmt"
	"log"
)

// Auction mirrors one listing in the /skyblock/auctions response.
// An immutable snapshot from one fetch cycle; discarded after one pass.
type Auction struct {
	UUID        string  `json:"uuid"`
	ItemName    string  `json:"item_name"`
	Tier        string  `json:"tier"`
	ItemLore    string  `json:"item_lore"`
	StartingBid float64 `json:"starting_bid"`
	HighestBid  float64 `json:"highest_bid_amount"`
	Bin         bool    `json:"bin"`
	Claimed     bool    `json:"claimed"`
}

// auctionsPage mirrors one page of the paginated auctions endpoint.
type auctionsPage struct {
	Success       bool      `json:"success"`
	Page          int       `json:"page"`
	TotalPages    int       `json:"totalPages"`
	TotalAuctions int       `json:"totalAuctions"`
	Auctions      []Auction `json:"auctions"`
}

// FetchAuctions fetches every currently listed auction.
//
// Page 0 establishes the page count; the remaining pages are fetched
// concurrently under the client semaphore. A failed page is skipped so a
// single flaky response degrades to a partial snapshot instead of killing
// the whole pass. Only a page-0 failure is a hard error, since then there
// is no snapshot at all.
func (c *Client) FetchAuctions(ctx context.Context) ([]Auction, error) {
	first, err := c.fetchAuctionPage(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch auctions page 0: %w", err)
	}

	totalPages := first.TotalPages
	if totalPages <= 1 {
		return first.Auctions, nil
	}

	type pageResult struct {
		auctions []Auction
		err      error
	}

	results := make(chan pageResult, totalPages-1)
	for p := 1; p < totalPages; p++ {
		go func(pageNum int) {
			page, err := c.fetchAuctionPage(ctx, pageNum)
			if err != nil {
				results <- pageResult{err: err}
				return
			}
			results <- pageResult{auctions: page.Auctions}
		}(p)
	}

	all := make([]Auction, 0, len(first.Auctions)*totalPages)
	all = append(all, first.Auctions...)
	failed := 0
	for i := 0; i < totalPages-1; i++ {
		r := <-results
		if r.err != nil {
			failed++
			continue
		}
		all = append(all, r.auctions...)
	}
	if failed > 0 {
		log.Printf("[Hypixel] FetchAuctions: %d/%d pages failed, continuing with %d listings", failed, totalPages, len(all))
	}
	return all, nil
}

func (c *Client) fetchAuctionPage(ctx context.Context, page int) (*auctionsPage, error) {
	url := fmt.Sprintf("%s/skyblock/auctions?page=%d", c.baseURL, page)
	var result auctionsPage
	if err := c.GetJSON(ctx, url, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("hypixel auctions page %d: success=false", page)
	}
	return &result, nil
}
