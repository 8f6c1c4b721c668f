package hypixel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestAuction_UnmarshalJSON(t *testing.T) {
	raw := `{"uuid":"abc123","item_name":"§6Hyperion","tier":"LEGENDARY","item_lore":"§7Damage: +260","starting_bid":850000000,"bin":true,"claimed":false}`
	var a Auction
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if a.UUID != "abc123" || a.ItemName != "§6Hyperion" || a.Tier != "LEGENDARY" {
		t.Errorf("Auction = %+v", a)
	}
	if a.StartingBid != 850_000_000 || !a.Bin || a.Claimed {
		t.Errorf("StartingBid/Bin/Claimed = %v/%v/%v", a.StartingBid, a.Bin, a.Claimed)
	}
}

func auctionServer(t *testing.T, totalPages int, failPages map[int]bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/skyblock/auctions" {
			http.NotFound(w, r)
			return
		}
		page := 0
		fmt.Sscanf(r.URL.Query().Get("page"), "%d", &page)
		if failPages[page] {
			w.WriteHeader(500)
			return
		}
		resp := auctionsPage{
			Success:    true,
			Page:       page,
			TotalPages: totalPages,
			Auctions: []Auction{
				{UUID: fmt.Sprintf("p%d-a", page), ItemName: "Hyperion", StartingBid: float64(1000 * (page + 1)), Bin: true},
				{UUID: fmt.Sprintf("p%d-b", page), ItemName: "Valkyrie", StartingBid: float64(2000 * (page + 1)), Bin: true},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestFetchAuctions_AllPages(t *testing.T) {
	srv := auctionServer(t, 3, nil)
	defer srv.Close()

	c := NewClient("")
	c.baseURL = srv.URL
	auctions, err := c.FetchAuctions(context.Background())
	if err != nil {
		t.Fatalf("FetchAuctions: %v", err)
	}
	if len(auctions) != 6 {
		t.Fatalf("auctions = %d, want 6 (3 pages * 2)", len(auctions))
	}
}

func TestFetchAuctions_PartialPagesTolerated(t *testing.T) {
	srv := auctionServer(t, 4, map[int]bool{2: true})
	defer srv.Close()

	c := NewClient("")
	c.baseURL = srv.URL
	auctions, err := c.FetchAuctions(context.Background())
	if err != nil {
		t.Fatalf("a failed inner page must not fail the snapshot: %v", err)
	}
	if len(auctions) != 6 {
		t.Fatalf("auctions = %d, want 6 (3 good pages * 2)", len(auctions))
	}
}

func TestFetchAuctions_FirstPageFailureIsHard(t *testing.T) {
	srv := auctionServer(t, 4, map[int]bool{0: true})
	defer srv.Close()

	c := NewClient("")
	c.baseURL = srv.URL
	if _, err := c.FetchAuctions(context.Background()); err == nil {
		t.Fatal("page-0 failure should be a hard error")
	}
}

func TestFetchBazaar_MapsQuickStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/skyblock/bazaar" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"success":true,"products":{
			"ENCHANTED_LAPIS_LAZULI":{"quick_status":{"buyPrice":310.5,"sellPrice":288.2,"buyMovingWeek":5400000,"sellMovingWeek":4900000}}
		}}`)
	}))
	defer srv.Close()

	c := NewClient("")
	c.baseURL = srv.URL
	quotes, err := c.FetchBazaar(context.Background())
	if err != nil {
		t.Fatalf("FetchBazaar: %v", err)
	}
	q, ok := quotes["ENCHANTED_LAPIS_LAZULI"]
	if !ok {
		t.Fatalf("missing product, got %v", quotes)
	}
	if q.InstantBuy != 310.5 || q.InstantSell != 288.2 {
		t.Errorf("InstantBuy/InstantSell = %v/%v", q.InstantBuy, q.InstantSell)
	}
	if q.BuyMovingWeek != 5_400_000 {
		t.Errorf("BuyMovingWeek = %v", q.BuyMovingWeek)
	}
	if q.DisplayName != "Enchanted Lapis Lazuli" {
		t.Errorf("DisplayName = %q", q.DisplayName)
	}
}

func TestProductDisplayName(t *testing.T) {
	cases := map[string]string{
		"ENCHANTED_DIAMOND": "Enchanted Diamond",
		"WHEAT":             "Wheat",
		"INK_SACK:3":        "Ink Sack:3",
	}
	for id, want := range cases {
		if got := ProductDisplayName(id); got != want {
			t.Errorf("ProductDisplayName(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestSnapshotCache_ServesCachedWithinTTL(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, `{"success":true,"totalPages":1,"auctions":[{"uuid":"x","item_name":"Hyperion","starting_bid":1,"bin":true}]}`)
	}))
	defer srv.Close()

	c := NewClient("")
	c.baseURL = srv.URL
	cache := NewSnapshotCache(c)

	for i := 0; i < 3; i++ {
		auctions, err := cache.Auctions(context.Background())
		if err != nil {
			t.Fatalf("Auctions: %v", err)
		}
		if len(auctions) != 1 {
			t.Fatalf("auctions = %d, want 1", len(auctions))
		}
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("upstream hits = %d, want 1 (cached)", got)
	}

	cache.Invalidate()
	if _, err := cache.Auctions(context.Background()); err != nil {
		t.Fatalf("Auctions after invalidate: %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("upstream hits = %d, want 2 after invalidate", got)
	}
}

func TestNewClient_NonNil(t *testing.T) {
	if NewClient("") == nil {
		t.Fatal("NewClient returned nil")
	}
}
