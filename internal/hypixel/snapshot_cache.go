package hypixel

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Hypixel refreshes the auction snapshot roughly once a minute; the bazaar
// quick_status aggregates update on a similar cadence.
const (
	auctionsTTL = 60 * time.Second
	bazaarTTL   = 60 * time.Second
)

// SnapshotCache is a thread-safe TTL cache for the two bulk snapshots.
// A singleflight.Group coalesces concurrent fetches so parallel detection
// passes share one in-flight request per snapshot.
type SnapshotCache struct {
	client *Client

	mu              sync.RWMutex
	auctions        []Auction
	auctionsFetched time.Time
	quotes          map[string]Quote
	quotesFetched   time.Time

	group singleflight.Group
}

// NewSnapshotCache creates a cache backed by the given client.
func NewSnapshotCache(client *Client) *SnapshotCache {
	return &SnapshotCache{client: client}
}

// Auctions returns the cached auction snapshot, fetching if stale.
func (sc *SnapshotCache) Auctions(ctx context.Context) ([]Auction, error) {
	sc.mu.RLock()
	if sc.auctions != nil && time.Since(sc.auctionsFetched) < auctionsTTL {
		cached := sc.auctions
		sc.mu.RUnlock()
		return cached, nil
	}
	sc.mu.RUnlock()

	result, err, shared := sc.group.Do("auctions", func() (interface{}, error) {
		auctions, err := sc.client.FetchAuctions(ctx)
		if err != nil {
			return nil, err
		}
		sc.mu.Lock()
		sc.auctions = auctions
		sc.auctionsFetched = time.Now()
		sc.mu.Unlock()
		return auctions, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Printf("[Hypixel] Auctions fetch coalesced across concurrent passes")
	}
	return result.([]Auction), nil
}

// Bazaar returns the cached bazaar snapshot, fetching if stale.
func (sc *SnapshotCache) Bazaar(ctx context.Context) (map[string]Quote, error) {
	sc.mu.RLock()
	if sc.quotes != nil && time.Since(sc.quotesFetched) < bazaarTTL {
		cached := sc.quotes
		sc.mu.RUnlock()
		return cached, nil
	}
	sc.mu.RUnlock()

	result, err, _ := sc.group.Do("bazaar", func() (interface{}, error) {
		quotes, err := sc.client.FetchBazaar(ctx)
		if err != nil {
			return nil, err
		}
		sc.mu.Lock()
		sc.quotes = quotes
		sc.quotesFetched = time.Now()
		sc.mu.Unlock()
		return quotes, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(map[string]Quote), nil
}

// Invalidate drops both cached snapshots, forcing the next read to refetch.
func (sc *SnapshotCache) Invalidate() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auctions = nil
	sc.quotes = nil
}
