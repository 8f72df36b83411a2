package model

// Job is one unscheduled work order from the job board. Jobs without both
// coordinates never reach this type; the normalizer drops them because they
// cannot be matched.
type Job struct {
	Name        string
	Client      string
	Status      string
	Material    string
	JobType     string
	Address     string
	BidQuantity float64 // yards, 0 when the source field was missing or blank
	Position    Coordinates
	NightAccess bool
}

// Candidate is a job that passed the distance and material filters for one
// specific vehicle. It only lives for the duration of a matching pass.
type Candidate struct {
	Job
	DistanceMiles float64 // great-circle distance to the vehicle, 2 decimals
}
