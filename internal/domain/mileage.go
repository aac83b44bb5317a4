package domain

// StateMileage is the total distance attributed to one jurisdiction across
// one or more crossing intervals. It is derived on read and never persisted.
type StateMileage struct {
	State     string
	StateName string
	Miles     int64
}

// MileageExportRow is a single row in a mileage export: one row per state.
// TripID is the trip's UUID string, or "all" for the all-time summary.
type MileageExportRow struct {
	TripID    string
	State     string
	StateName string
	Miles     int64
}

// AllTripsExportID is the TripID used on export rows of the all-time summary.
const AllTripsExportID = "all"
