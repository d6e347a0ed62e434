// Package alerts holds the pure classification logic shared by the bin
// store and the notification path. No state, no side effects.
package alerts

import (
	"fmt"

	"wastesense-backend/internal/models"
)

// Fill-level thresholds for status banding.
const (
	criticalThreshold = 90.0
	highThreshold     = 80.0
	mediumThreshold   = 60.0
)

// AlertThreshold is the level at or above which a stored alert is generated
// for a category. Outbound notifications fire strictly above this value;
// that asymmetry is intentional and must not be unified.
const AlertThreshold = 80.0

// Classify derives a bin's status band from its three fill levels.
// The highest level wins: CRITICAL >= 90, HIGH >= 80, MEDIUM >= 60, else LOW.
func Classify(organic, recyclable, hazardous float64) models.BinStatusLevel {
	maxLevel := organic
	if recyclable > maxLevel {
		maxLevel = recyclable
	}
	if hazardous > maxLevel {
		maxLevel = hazardous
	}

	switch {
	case maxLevel >= criticalThreshold:
		return models.StatusCritical
	case maxLevel >= highThreshold:
		return models.StatusHigh
	case maxLevel >= mediumThreshold:
		return models.StatusMedium
	default:
		return models.StatusLow
	}
}

// ForLevels returns the stored alert messages, one per category at or above
// the alert threshold, in organic/recyclable/hazardous order.
func ForLevels(organic, recyclable, hazardous float64) []string {
	alerts := []string{}

	if organic >= AlertThreshold {
		alerts = append(alerts, fmt.Sprintf("Organic waste level critical: %g%%", organic))
	}
	if recyclable >= AlertThreshold {
		alerts = append(alerts, fmt.Sprintf("Recyclable waste level critical: %g%%", recyclable))
	}
	if hazardous >= AlertThreshold {
		alerts = append(alerts, fmt.Sprintf("Hazardous waste level critical: %g%%", hazardous))
	}

	return alerts
}

// Notifications returns the outbound messages for the municipal notification
// path. Levels must be strictly above the threshold here (a reading at
// exactly 80% produces a stored alert but no notification). Hazardous
// messages carry CRITICAL severity so downstream consumers can escalate.
func Notifications(reading models.BinReading) []string {
	notifications := []string{}

	if reading.OrganicLevel > AlertThreshold {
		notifications = append(notifications, fmt.Sprintf(
			"ALERT: Bin %s - Organic waste level is %g%% (exceeds %g%%)",
			reading.BinID, reading.OrganicLevel, AlertThreshold))
	}
	if reading.RecyclableLevel > AlertThreshold {
		notifications = append(notifications, fmt.Sprintf(
			"ALERT: Bin %s - Recyclable waste level is %g%% (exceeds %g%%)",
			reading.BinID, reading.RecyclableLevel, AlertThreshold))
	}
	if reading.HazardousLevel > AlertThreshold {
		notifications = append(notifications, fmt.Sprintf(
			"CRITICAL ALERT: Bin %s - Hazardous waste level is %g%% (exceeds %g%%)",
			reading.BinID, reading.HazardousLevel, AlertThreshold))
	}

	return notifications
}
