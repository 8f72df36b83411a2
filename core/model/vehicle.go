package model

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Vehicle represents one physical truck as seen by the scheduling pipeline.
// The table is rebuilt from the telemetry and job-history feeds on every run;
// nothing persists across runs.
type Vehicle struct {
	ID       string
	Position *Coordinates // nil when the telemetry feed carried no usable fix

	Address       string
	Locality      string
	DisplayStatus string

	// Material currently aboard. Empty string means the truck is unloaded;
	// QuantityRemaining is 0 whenever Material is empty, but a loaded truck
	// can report a near-zero remainder with the material tag still set.
	Material          string
	QuantityRemaining float64 // yards
}

// Empty reports whether the truck carries no material.
func (v Vehicle) Empty() bool { return v.Material == "" }
