// Package store holds the authoritative in-memory state for bin fill
// levels. State lives for the process lifetime only; a restart discards it.
package store

import (
	"log"
	"sync"
	"time"

	"wastesense-backend/internal/alerts"
	"wastesense-backend/internal/models"
)

// BinStore maps bin IDs to their latest record. Safe for concurrent use.
type BinStore struct {
	mu   sync.RWMutex
	bins map[string]models.BinRecord
}

// NewBinStore creates an empty store.
func NewBinStore() *BinStore {
	log.Println("✅ Initialized in-memory bin status store")
	return &BinStore{
		bins: make(map[string]models.BinRecord),
	}
}

// Store overwrites the record for the reading's bin with freshly derived
// status, alerts and timestamp, and returns the new record. The reading is
// expected to be validated at the boundary before it reaches the store.
func (s *BinStore) Store(reading models.BinReading) models.BinRecord {
	record := models.BinRecord{
		BinID:           reading.BinID,
		OrganicLevel:    reading.OrganicLevel,
		RecyclableLevel: reading.RecyclableLevel,
		HazardousLevel:  reading.HazardousLevel,
		LastUpdated:     time.Now(),
		Status:          alerts.Classify(reading.OrganicLevel, reading.RecyclableLevel, reading.HazardousLevel),
		Alerts:          alerts.ForLevels(reading.OrganicLevel, reading.RecyclableLevel, reading.HazardousLevel),
	}

	s.mu.Lock()
	s.bins[reading.BinID] = record
	s.mu.Unlock()

	log.Printf("📥 Stored data for bin %s with status: %s", record.BinID, record.Status)
	return record
}

// Get returns the latest record for a bin, if one exists.
func (s *BinStore) Get(binID string) (models.BinRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.bins[binID]
	return record, ok
}

// All returns a snapshot of every record. The snapshot does not reflect
// writes that happen after it is taken.
func (s *BinStore) All() map[string]models.BinRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]models.BinRecord, len(s.bins))
	for id, record := range s.bins {
		snapshot[id] = record
	}
	return snapshot
}

// Count returns the number of bins currently monitored.
func (s *BinStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bins)
}
