package model

// SelectedJob is one assignment inside an oracle recommendation. The JSON
// tags are the wire schema the oracle is instructed to reply with.
type SelectedJob struct {
	JobName     string  `json:"job_name"`
	Material    string  `json:"material"`
	BidQuantity float64 `json:"bid_qty"`
	StartTime   string  `json:"start_time"`
	Address     string  `json:"address"`
}

// Recommendation is the oracle's per-vehicle job selection. SelectedJobs is
// nil only while decoding a reply that lacked the recommended_jobs key;
// everywhere else an empty selection is an empty, non-nil slice.
type Recommendation struct {
	VehicleID    string        `json:"truck"`
	SelectedJobs []SelectedJob `json:"recommended_jobs"`
}

// EmptyRecommendation is the fallback value for a vehicle whose oracle call
// failed or produced an unreadable reply.
func EmptyRecommendation(vehicleID string) Recommendation {
	return Recommendation{VehicleID: vehicleID, SelectedJobs: []SelectedJob{}}
}
