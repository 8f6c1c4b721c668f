package db

import (
	"fmt"
	"strconv"

	"github.com/Fyrebreeze/skyblock-ah-flipper.github.io/internal/config"
)

// LoadConfig reads config from SQLite. If empty, returns defaults.
func (d *DB) LoadConfig() *config.Config {
	cfg := config.Default()

	rows, err := d.sql.Query("SELECT key, value FROM config")
	if err != nil {
		return cfg
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var k, v string
		rows.Scan(&k, &v)
		m[k] = v
	}

	if len(m) == 0 {
		return cfg
	}

	if v, ok := m["min_profit"]; ok {
		cfg.MinProfit, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["min_price"]; ok {
		cfg.MinPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["gap_percent"]; ok {
		cfg.GapPercent, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["spread_multiplier"]; ok {
		cfg.SpreadMultiplier, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["min_bazaar_spread"]; ok {
		cfg.MinBazaarSpread, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["min_weekly_volume"]; ok {
		cfg.MinWeeklyVolume, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["min_craft_profit"]; ok {
		cfg.MinCraftProfit, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["craft_candidates"]; ok {
		cfg.CraftCandidates, _ = strconv.Atoi(v)
	}
	if v, ok := m["max_results"]; ok {
		cfg.MaxResults, _ = strconv.Atoi(v)
	}
	if v, ok := m["opacity"]; ok {
		cfg.Opacity, _ = strconv.Atoi(v)
	}
	if v, ok := m["window_x"]; ok {
		cfg.WindowX, _ = strconv.Atoi(v)
	}
	if v, ok := m["window_y"]; ok {
		cfg.WindowY, _ = strconv.Atoi(v)
	}
	if v, ok := m["window_w"]; ok {
		cfg.WindowW, _ = strconv.Atoi(v)
	}
	if v, ok := m["window_h"]; ok {
		cfg.WindowH, _ = strconv.Atoi(v)
	}

	return cfg
}

// SaveConfig writes config to SQLite (upsert all fields).
func (d *DB) SaveConfig(cfg *config.Config) error {
	pairs := map[string]string{
		"min_profit":        fmt.Sprintf("%g", cfg.MinProfit),
		"min_price":         fmt.Sprintf("%g", cfg.MinPrice),
		"gap_percent":       fmt.Sprintf("%g", cfg.GapPercent),
		"spread_multiplier": fmt.Sprintf("%g", cfg.SpreadMultiplier),
		"min_bazaar_spread": fmt.Sprintf("%g", cfg.MinBazaarSpread),
		"min_weekly_volume": fmt.Sprintf("%g", cfg.MinWeeklyVolume),
		"min_craft_profit":  fmt.Sprintf("%g", cfg.MinCraftProfit),
		"craft_candidates":  strconv.Itoa(cfg.CraftCandidates),
		"max_results":       strconv.Itoa(cfg.MaxResults),
		"opacity":           strconv.Itoa(cfg.Opacity),
		"window_x":          strconv.Itoa(cfg.WindowX),
		"window_y":          strconv.Itoa(cfg.WindowY),
		"window_w":          strconv.Itoa(cfg.WindowW),
		"window_h":          strconv.Itoa(cfg.WindowH),
	}

	tx, err := d.sql.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT OR REPLACE INTO config (key, value) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for k, v := range pairs {
		if _, err := stmt.Exec(k, v); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
