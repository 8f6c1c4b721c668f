// Package api exposes the detection engine over a local HTTP JSON API.
// Long scans stream NDJSON progress lines so the table layer can render
// progress without waiting for the whole pass.
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/config"
	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/db"
	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/engine"
	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/hypixel"
	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/oracle"
	"github.com/dustin/go-humanize"
)

// Server connects the Hypixel snapshot cache, the detection engine, the
// inference oracle, and the database.
type Server struct {
	mu        sync.RWMutex
	cfg       *config.Config
	client    *hypixel.Client
	snapshots *hypixel.SnapshotCache
	db        *db.DB
	oracle    *oracle.Client
}

// NewServer creates a Server with the given config, client, database, and oracle.
func NewServer(cfg *config.Config, client *hypixel.Client, database *db.DB, oracleClient *oracle.Client) *Server {
	return &Server{
		cfg:       cfg,
		client:    client,
		snapshots: hypixel.NewSnapshotCache(client),
		db:        database,
		oracle:    oracleClient,
	}
}

// Handler returns the HTTP handler with all API routes and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/config", s.handleGetConfig)
	mux.HandleFunc("POST /api/config", s.handleSetConfig)
	mux.HandleFunc("POST /api/scan/auctions", s.handleScanAuctions)
	mux.HandleFunc("POST /api/scan/bazaar", s.handleScanBazaar)
	mux.HandleFunc("POST /api/scan/crafts", s.handleScanCrafts)
	mux.HandleFunc("POST /api/appraise", s.handleAppraise)
	mux.HandleFunc("GET /api/scan/history", s.handleGetHistory)
	return corsMiddleware(mux)
}

// detectorParams materializes the current config into engine thresholds.
func (s *Server) detectorParams() engine.DetectorParams {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return engine.DetectorParams{
		MinProfit:        s.cfg.MinProfit,
		MinPrice:         s.cfg.MinPrice,
		GapPercent:       s.cfg.GapPercent,
		SpreadMultiplier: s.cfg.SpreadMultiplier,
		MinBazaarSpread:  s.cfg.MinBazaarSpread,
		MinWeeklyVolume:  s.cfg.MinWeeklyVolume,
		MinCraftProfit:   s.cfg.MinCraftProfit,
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"hypixel_ok": s.client.HealthCheck(),
		"oracle_ok":  s.oracle != nil,
	})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	writeJSON(w, s.cfg)
}

func (s *Server) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	var patch map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, 400, "invalid json")
		return
	}

	s.mu.Lock()
	if v, ok := patch["min_profit"]; ok {
		json.Unmarshal(v, &s.cfg.MinProfit)
	}
	if v, ok := patch["min_price"]; ok {
		json.Unmarshal(v, &s.cfg.MinPrice)
	}
	if v, ok := patch["gap_percent"]; ok {
		json.Unmarshal(v, &s.cfg.GapPercent)
	}
	if v, ok := patch["spread_multiplier"]; ok {
		json.Unmarshal(v, &s.cfg.SpreadMultiplier)
	}
	if v, ok := patch["min_bazaar_spread"]; ok {
		json.Unmarshal(v, &s.cfg.MinBazaarSpread)
	}
	if v, ok := patch["min_weekly_volume"]; ok {
		json.Unmarshal(v, &s.cfg.MinWeeklyVolume)
	}
	if v, ok := patch["min_craft_profit"]; ok {
		json.Unmarshal(v, &s.cfg.MinCraftProfit)
	}
	if v, ok := patch["craft_candidates"]; ok {
		json.Unmarshal(v, &s.cfg.CraftCandidates)
	}
	if v, ok := patch["max_results"]; ok {
		json.Unmarshal(v, &s.cfg.MaxResults)
	}
	if v, ok := patch["opacity"]; ok {
		json.Unmarshal(v, &s.cfg.Opacity)
	}

	// Validate bounds.
	if s.cfg.MinProfit < 0 {
		s.cfg.MinProfit = 0
	}
	if s.cfg.MinPrice < 0 {
		s.cfg.MinPrice = 0
	}
	if s.cfg.GapPercent <= 0 {
		s.cfg.GapPercent = config.Default().GapPercent
	}
	if s.cfg.SpreadMultiplier <= 0 {
		s.cfg.SpreadMultiplier = config.Default().SpreadMultiplier
	}
	if s.cfg.CraftCandidates <= 0 {
		s.cfg.CraftCandidates = config.Default().CraftCandidates
	}
	cfg := *s.cfg
	s.mu.Unlock()

	if s.db != nil {
		if err := s.db.SaveConfig(&cfg); err != nil {
			log.Printf("[API] SaveConfig: %v", err)
		}
	}
	writeJSON(w, cfg)
}

// progressStream prepares an NDJSON response and returns an emit function.
func progressStream(w http.ResponseWriter) (func(v interface{}), bool) {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, 500, "streaming not supported")
		return nil, false
	}
	return func(v interface{}) {
		line, _ := json.Marshal(v)
		fmt.Fprintf(w, "%s\n", line)
		flusher.Flush()
	}, true
}

func (s *Server) handleScanAuctions(w http.ResponseWriter, r *http.Request) {
	emit, ok := progressStream(w)
	if !ok {
		return
	}

	started := time.Now()
	emit(map[string]string{"type": "progress", "message": "Fetching auction snapshot..."})

	listings, err := s.snapshots.Auctions(r.Context())
	if err != nil {
		log.Printf("[API] ScanAuctions fetch: %v", err)
		emit(map[string]string{"type": "error", "message": err.Error()})
		return
	}
	emit(map[string]string{"type": "progress", "message": fmt.Sprintf("Scanning %s listings...", humanize.Comma(int64(len(listings))))})

	detector := engine.NewDetector(s.detectorParams())
	flips := detector.ScanAuctions(listings)

	topProfit := 0.0
	for _, f := range flips {
		if f.Profit > topProfit {
			topProfit = f.Profit
		}
	}
	var scanID int64
	if s.db != nil {
		scanID = s.db.InsertHistory("auction", len(flips), topProfit)
		go s.db.InsertFlipResults(scanID, flips)
	}

	log.Printf("[API] ScanAuctions: %d flips in %dms", len(flips), time.Since(started).Milliseconds())
	emit(map[string]interface{}{"type": "result", "data": flips, "count": len(flips), "scan_id": scanID})
}

func (s *Server) handleScanBazaar(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.snapshots.Bazaar(r.Context())
	if err != nil {
		log.Printf("[API] ScanBazaar fetch: %v", err)
		writeError(w, 502, err.Error())
		return
	}

	detector := engine.NewDetector(s.detectorParams())
	flips := detector.ScanBazaar(quotes)

	topProfit := 0.0
	for _, f := range flips {
		if f.Profit > topProfit {
			topProfit = f.Profit
		}
	}
	if s.db != nil {
		s.db.InsertHistory("bazaar", len(flips), topProfit)
	}

	writeJSON(w, map[string]interface{}{"data": flips, "count": len(flips)})
}

func (s *Server) handleScanCrafts(w http.ResponseWriter, r *http.Request) {
	if s.oracle == nil {
		writeError(w, 503, "recipe oracle not configured")
		return
	}
	emit, ok := progressStream(w)
	if !ok {
		return
	}

	emit(map[string]string{"type": "progress", "message": "Fetching snapshots..."})
	listings, err := s.snapshots.Auctions(r.Context())
	if err != nil {
		emit(map[string]string{"type": "error", "message": err.Error()})
		return
	}
	quotes, err := s.snapshots.Bazaar(r.Context())
	if err != nil {
		emit(map[string]string{"type": "error", "message": err.Error()})
		return
	}

	s.mu.RLock()
	limit := s.cfg.CraftCandidates
	s.mu.RUnlock()

	detector := engine.NewDetector(s.detectorParams())
	candidates := detector.CraftCandidatesFromAuctions(listings, limit)
	emit(map[string]interface{}{"type": "progress", "message": fmt.Sprintf("Pricing %d craft candidates...", len(candidates)), "percent": 0})

	flips := detector.ScanCrafts(r.Context(), candidates, s.oracle, quotes,
		func(resolved, total int) {
			percent := 100 * resolved / total
			emit(map[string]interface{}{"type": "progress", "percent": percent,
				"message": fmt.Sprintf("Resolved %d/%d recipes", resolved, total)})
		})

	topProfit := 0.0
	for _, f := range flips {
		if f.Profit > topProfit {
			topProfit = f.Profit
		}
	}
	if s.db != nil {
		s.db.InsertHistory("craft", len(flips), topProfit)
	}

	emit(map[string]interface{}{"type": "result", "data": flips, "count": len(flips)})
}

func (s *Server) handleAppraise(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemName string  `json:"item_name"`
		ItemLore string  `json:"item_lore"`
		Tier     string  `json:"tier"`
		Price    float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	if req.ItemName == "" {
		writeError(w, 400, "item_name is required")
		return
	}

	var valuer engine.ValuationOracle
	if s.oracle != nil {
		valuer = s.oracle
	}
	v := engine.Appraise(r.Context(), valuer, hypixel.Auction{
		ItemName:    req.ItemName,
		ItemLore:    req.ItemLore,
		Tier:        req.Tier,
		StartingBid: req.Price,
	})
	writeJSON(w, v)
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, []db.ScanRecord{})
		return
	}
	writeJSON(w, s.db.GetHistory(20))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
