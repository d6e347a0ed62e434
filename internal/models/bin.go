package models

import (
	"fmt"
	"time"
)

// BinStatusLevel is the coarse classification derived from a bin's fill levels.
type BinStatusLevel string

const (
	StatusLow      BinStatusLevel = "LOW"
	StatusMedium   BinStatusLevel = "MEDIUM"
	StatusHigh     BinStatusLevel = "HIGH"
	StatusCritical BinStatusLevel = "CRITICAL"
)

// BinReading is a single fill-level report from an IoT device.
type BinReading struct {
	BinID           string  `json:"bin_id"`
	OrganicLevel    float64 `json:"organic_level"`
	RecyclableLevel float64 `json:"recyclable_level"`
	HazardousLevel  float64 `json:"hazardous_level"`
}

// Validate checks the reading against the device contract: bin_id between
// 3 and 50 characters, every level within [0, 100].
func (r *BinReading) Validate() error {
	if len(r.BinID) < 3 || len(r.BinID) > 50 {
		return fmt.Errorf("bin_id must be between 3 and 50 characters")
	}

	levels := []struct {
		name  string
		value float64
	}{
		{"organic_level", r.OrganicLevel},
		{"recyclable_level", r.RecyclableLevel},
		{"hazardous_level", r.HazardousLevel},
	}
	for _, l := range levels {
		if l.value < 0.0 || l.value > 100.0 {
			return fmt.Errorf("%s must be between 0.0 and 100.0, got %g", l.name, l.value)
		}
	}

	return nil
}

// BinRecord is the stored state for a bin: the latest reading plus the
// status and alerts derived from it. Overwritten wholesale on every new
// reading for the same bin_id.
type BinRecord struct {
	BinID           string         `json:"bin_id"`
	OrganicLevel    float64        `json:"organic_level"`
	RecyclableLevel float64        `json:"recyclable_level"`
	HazardousLevel  float64        `json:"hazardous_level"`
	LastUpdated     time.Time      `json:"last_updated"`
	Status          BinStatusLevel `json:"status"`
	Alerts          []string       `json:"alerts"`
}
