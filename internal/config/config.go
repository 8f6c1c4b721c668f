package config

// Config holds application settings (in-memory representation).
// Persistence is handled by internal/db package. Detection thresholds are
// explicit fields rather than ambient constants so every detector stays pure
// and testable with arbitrary values.
type Config struct {
	// Auction flip thresholds.
	MinProfit float64 `json:"min_profit"` // minimum tax-adjusted profit to report a flip
	MinPrice  float64 `json:"min_price"`  // ignore groups whose cheapest BIN is below this

	// Market price estimator tuning.
	GapPercent       float64 `json:"gap_percent"`       // relative jump that marks the start of the sell wall
	SpreadMultiplier float64 `json:"spread_multiplier"` // IQR multiplier for outlier trimming

	// Bazaar flip thresholds.
	MinBazaarSpread float64 `json:"min_bazaar_spread"` // minimum per-unit spread in coins
	MinWeeklyVolume float64 `json:"min_weekly_volume"` // minimum weekly buy volume (liquidity floor)

	// Crafting pipeline.
	MinCraftProfit  float64 `json:"min_craft_profit"`
	CraftCandidates int     `json:"craft_candidates"` // max finished goods sent to the recipe oracle per pass

	// Presentation hints persisted for the external table layer.
	MaxResults int `json:"max_results"`
	Opacity    int `json:"opacity"`
	WindowX    int `json:"window_x"`
	WindowY    int `json:"window_y"`
	WindowW    int `json:"window_w"`
	WindowH    int `json:"window_h"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		MinProfit:        100_000,
		MinPrice:         10_000,
		GapPercent:       8,
		SpreadMultiplier: 2.0,
		MinBazaarSpread:  100,
		MinWeeklyVolume:  250_000,
		MinCraftProfit:   100_000,
		CraftCandidates:  25,
		MaxResults:       100,
		Opacity:          230,
		WindowW:          800,
		WindowH:          600,
	}
}
