package db

import (
	"log"
	"time"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/engine"
)

// ScanRecord is one row of per-pass scan history.
type ScanRecord struct {
	ID        int64   `json:"id"`
	Timestamp string  `json:"timestamp"`
	Kind      string  `json:"kind"`
	Count     int     `json:"count"`
	TopProfit float64 `json:"top_profit"`
}

// InsertHistory records a completed detection pass and returns its ID.
func (d *DB) InsertHistory(kind string, count int, topProfit float64) int64 {
	res, err := d.sql.Exec(
		"INSERT INTO scan_history (timestamp, kind, count, top_profit) VALUES (?, ?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), kind, count, topProfit,
	)
	if err != nil {
		log.Printf("[DB] InsertHistory: %v", err)
		return 0
	}
	id, _ := res.LastInsertId()
	return id
}

// GetHistory returns the most recent scan records, newest first.
func (d *DB) GetHistory(limit int) []ScanRecord {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.sql.Query(
		"SELECT id, timestamp, kind, count, top_profit FROM scan_history ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		log.Printf("[DB] GetHistory: %v", err)
		return nil
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		var r ScanRecord
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Kind, &r.Count, &r.TopProfit); err != nil {
			continue
		}
		records = append(records, r)
	}
	return records
}

// InsertFlipResults bulk-inserts auction flips linked to a scan record.
func (d *DB) InsertFlipResults(scanID int64, flips []engine.AuctionFlip) {
	if scanID == 0 || len(flips) == 0 {
		return
	}

	tx, err := d.sql.Begin()
	if err != nil {
		log.Printf("[DB] InsertFlipResults begin tx: %v", err)
		return
	}

	stmt, err := tx.Prepare(`INSERT INTO flip_results (
		scan_id, uuid, item_name, identity, tier,
		buy_price, estimated_price, profit, competitors
	) VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		log.Printf("[DB] InsertFlipResults prepare: %v", err)
		return
	}
	defer stmt.Close()

	for _, f := range flips {
		stmt.Exec(scanID, f.UUID, f.ItemName, f.Identity, f.Tier,
			f.BuyPrice, f.EstimatedPrice, f.Profit, f.Competitors)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("[DB] InsertFlipResults commit: %v", err)
	}
}

// GetFlipResults retrieves the auction flips stored for a scan.
func (d *DB) GetFlipResults(scanID int64) []engine.AuctionFlip {
	rows, err := d.sql.Query(`
		SELECT uuid, item_name, identity, tier, buy_price, estimated_price, profit, competitors
		FROM flip_results WHERE scan_id = ?`, scanID)
	if err != nil {
		log.Printf("[DB] GetFlipResults: %v", err)
		return nil
	}
	defer rows.Close()

	var flips []engine.AuctionFlip
	for rows.Next() {
		f := engine.AuctionFlip{Kind: engine.KindAuction}
		if err := rows.Scan(&f.UUID, &f.ItemName, &f.Identity, &f.Tier,
			&f.BuyPrice, &f.EstimatedPrice, &f.Profit, &f.Competitors); err != nil {
			continue
		}
		flips = append(flips, f)
	}
	return flips
}
