package config

import (
	"testing"
)

func TestDefault_Values(t *testing.T) {
	c := Default()
	if c == nil {
		t.Fatal("Default() returned nil")
	}
	if c.MinProfit != 100_000 {
		t.Errorf("MinProfit = %v, want 100000", c.MinProfit)
	}
	if c.MinPrice != 10_000 {
		t.Errorf("MinPrice = %v, want 10000", c.MinPrice)
	}
	if c.GapPercent != 8 {
		t.Errorf("GapPercent = %v, want 8", c.GapPercent)
	}
	if c.SpreadMultiplier != 2.0 {
		t.Errorf("SpreadMultiplier = %v, want 2.0", c.SpreadMultiplier)
	}
	if c.MinWeeklyVolume != 250_000 {
		t.Errorf("MinWeeklyVolume = %v, want 250000", c.MinWeeklyVolume)
	}
	if c.Opacity != 230 {
		t.Errorf("Opacity = %v, want 230", c.Opacity)
	}
	if c.WindowW != 800 || c.WindowH != 600 {
		t.Errorf("Window = %dx%d, want 800x600", c.WindowW, c.WindowH)
	}
}
