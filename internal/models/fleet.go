package models

// FleetBin is a mapped city bin as shown on the dispatch map.
type FleetBin struct {
	ID       string  `json:"id"`
	Location string  `json:"location"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Fill     int     `json:"fill"`
	Type     string  `json:"type"`
	Updated  string  `json:"updated"`
}

// Driver is a collection vehicle driver available for dispatch.
type Driver struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Status string  `json:"status"`
}

// Station is a drop-off facility for a specific waste stream.
type Station struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	CapacityKg int     `json:"capacityKg"`
}

// TripParty is the embedded driver/station summary on a trip.
type TripParty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Trip is a dispatched collection run.
type Trip struct {
	ID        string    `json:"id"`
	BinID     string    `json:"binId"`
	Location  string    `json:"location"`
	DriverID  string    `json:"driverId"`
	Driver    TripParty `json:"driver"`
	StationID string    `json:"stationId"`
	Station   TripParty `json:"station"`
	Status    string    `json:"status"`
	CreatedAt int64     `json:"createdAt"`
}

// DispatchRequest is the request body for POST /api/dispatch.
type DispatchRequest struct {
	BinID     string `json:"binId"`
	DriverID  string `json:"driverId"`
	StationID string `json:"stationId"`
}

// UpdateTripRequest is the request body for PATCH /api/trips/{id}.
type UpdateTripRequest struct {
	Status string `json:"status"`
}
