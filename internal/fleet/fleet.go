// Package fleet is a stub data provider for the dispatch map: fixed bins,
// drivers and stations for the Bhubaneswar pilot deployment. There is no
// state machine behind dispatch; trips are acknowledged, not tracked.
package fleet

import "wastesense-backend/internal/models"

// Bins returns the mapped city bins.
func Bins() []models.FleetBin {
	return []models.FleetBin{
		{ID: "BIN-BBSR-001", Location: "Master Canteen Square", Lat: 20.27, Lon: 85.84, Fill: 78, Type: "Recyclable", Updated: "09:05"},
		{ID: "BIN-BBSR-002", Location: "Saheed Nagar Market", Lat: 20.2962, Lon: 85.849, Fill: 83, Type: "Organic", Updated: "09:12"},
		{ID: "BIN-BBSR-003", Location: "Rasulgarh Square", Lat: 20.3005, Lon: 85.8535, Fill: 65, Type: "Recyclable", Updated: "09:07"},
		{ID: "BIN-BBSR-004", Location: "Jaydev Vihar", Lat: 20.3058, Lon: 85.82, Fill: 72, Type: "Recyclable", Updated: "09:02"},
		{ID: "BIN-BBSR-005", Location: "Kharvel Nagar", Lat: 20.2735, Lon: 85.842, Fill: 58, Type: "Organic", Updated: "08:59"},
		{ID: "BIN-BBSR-006", Location: "Chandrasekharpur - Infocity", Lat: 20.317, Lon: 85.8235, Fill: 91, Type: "Hazardous", Updated: "09:10"},
		{ID: "BIN-BBSR-007", Location: "Patia Big Bazaar", Lat: 20.3187, Lon: 85.8269, Fill: 68, Type: "Recyclable", Updated: "09:11"},
		{ID: "BIN-BBSR-008", Location: "Khandagiri Square", Lat: 20.2625, Lon: 85.7805, Fill: 86, Type: "Organic", Updated: "09:14"},
		{ID: "BIN-BBSR-009", Location: "Ekamra Kanan Gate", Lat: 20.2968, Lon: 85.8197, Fill: 41, Type: "Organic", Updated: "08:49"},
		{ID: "BIN-BBSR-010", Location: "Unit 1 Market", Lat: 20.2665, Lon: 85.8393, Fill: 74, Type: "Recyclable", Updated: "09:03"},
		{ID: "BIN-BBSR-011", Location: "Old Town - Lingaraj", Lat: 20.2414, Lon: 85.8399, Fill: 67, Type: "Organic", Updated: "09:08"},
		{ID: "BIN-BBSR-012", Location: "Railway Station (Platform Road)", Lat: 20.269, Lon: 85.8445, Fill: 92, Type: "Hazardous", Updated: "09:15"},
	}
}

// Drivers returns the collection vehicle drivers.
func Drivers() []models.Driver {
	return []models.Driver{
		{ID: "DRV-BBSR-01", Name: "Prakash Mohanty", Phone: "+91 94370 10001", Lat: 20.28, Lon: 85.84, Status: "Available"},
		{ID: "DRV-BBSR-02", Name: "Ananya Sahu", Phone: "+91 98530 10002", Lat: 20.3, Lon: 85.83, Status: "Available"},
		{ID: "DRV-BBSR-03", Name: "Bikash Swain", Phone: "+91 99370 10003", Lat: 20.32, Lon: 85.82, Status: "On Trip"},
		{ID: "DRV-BBSR-04", Name: "Sabita Das", Phone: "+91 98610 10004", Lat: 20.26, Lon: 85.79, Status: "Available"},
		{ID: "DRV-BBSR-05", Name: "Amit Patra", Phone: "+91 93480 10005", Lat: 20.31, Lon: 85.84, Status: "Available"},
	}
}

// Stations returns the drop-off facilities grouped by waste stream.
func Stations() map[string][]models.Station {
	return map[string][]models.Station{
		"Recyclable": {
			{ID: "REC-BBSR-1", Name: "BMC MRF - Chandrasekharpur", Lat: 20.3178, Lon: 85.825, CapacityKg: 12000},
			{ID: "REC-BBSR-2", Name: "Khurda MRF - Industrial Area", Lat: 20.154, Lon: 85.666, CapacityKg: 20000},
		},
		"Organic": {
			{ID: "ORG-BBSR-1", Name: "BMC Compost Yard - Palasuni", Lat: 20.2995, Lon: 85.8695, CapacityKg: 10000},
			{ID: "ORG-BBSR-2", Name: "Community Compost - Unit 6", Lat: 20.2652, Lon: 85.8258, CapacityKg: 6000},
		},
		"Hazardous": {
			{ID: "HAZ-BBSR-1", Name: "Authorized Hazardous Facility - Khurda", Lat: 20.121, Lon: 85.674, CapacityKg: 15000},
		},
	}
}

// DriverName looks up a driver's display name, falling back to the ID for
// unknown drivers (dispatch requests are not validated against the roster).
func DriverName(driverID string) string {
	for _, d := range Drivers() {
		if d.ID == driverID {
			return d.Name
		}
	}
	return driverID
}

// StationName looks up a station's display name, falling back to the ID.
func StationName(stationID string) string {
	for _, group := range Stations() {
		for _, s := range group {
			if s.ID == stationID {
				return s.Name
			}
		}
	}
	return stationID
}
