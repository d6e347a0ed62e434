package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinReadingValidate(t *testing.T) {
	valid := BinReading{BinID: "BIN-001", OrganicLevel: 50, RecyclableLevel: 0, HazardousLevel: 100}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		reading BinReading
		wantErr string
	}{
		{"bin_id too short", BinReading{BinID: "AB"}, "bin_id"},
		{"bin_id too long", BinReading{BinID: strings.Repeat("X", 51)}, "bin_id"},
		{"organic below range", BinReading{BinID: "BIN-001", OrganicLevel: -0.1}, "organic_level"},
		{"recyclable above range", BinReading{BinID: "BIN-001", RecyclableLevel: 100.1}, "recyclable_level"},
		{"hazardous above range", BinReading{BinID: "BIN-001", HazardousLevel: 150}, "hazardous_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reading.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	// Boundary lengths are accepted.
	assert.NoError(t, (&BinReading{BinID: "ABC"}).Validate())
	assert.NoError(t, (&BinReading{BinID: strings.Repeat("X", 50)}).Validate())
}
