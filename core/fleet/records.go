package fleet

// Wire types for the three raw feeds. Field names and tags follow the board
// and telemetry APIs exactly; the normalizer is the only place that reads
// them, everything downstream works on core/model types.

// telemetryStatusOK is the only status code accepted from the telemetry
// feed. Entries with any other code carry no usable position and are
// dropped before normalization.
const telemetryStatusOK = 200

// TelemetrySnapshot is one per-vehicle entry from the telemetry feed.
type TelemetrySnapshot struct {
	StatusCode      int    `json:"StatusCode"`
	VehicleNumber   string `json:"VehicleNumber"`
	ContentResource struct {
		Value struct {
			Latitude     float64 `json:"Latitude"`
			Longitude    float64 `json:"Longitude"`
			DisplayState string  `json:"DisplayState"`
			Address      struct {
				AddressLine1 string `json:"AddressLine1"`
				Locality     string `json:"Locality"`
			} `json:"Address"`
		} `json:"Value"`
	} `json:"ContentResource"`
}

// productionReviewGroup is the job-history category whose entries record the
// material left on a vehicle after each job.
const productionReviewGroup = "Production Review"

// HistoryGroup is one vehicle's slice of the job-history feed.
type HistoryGroup struct {
	Group   string         `json:"group"`
	Vehicle string         `json:"vehicle"`
	Data    []HistoryEntry `json:"data"`
}

// HistoryEntry is a single job-history row. Only the material fields matter
// here; the feed carries many more columns that the pipeline ignores.
type HistoryEntry struct {
	Material     string     `json:"Material"`
	QuantityLeft FlexString `json:"Quantity Left on Truck"`
}

// JobBoard is the top-level shape of the unscheduled-job feed.
type JobBoard struct {
	Jobs []JobListing `json:"Jobs to be Scheduled"`
}

// JobListing is one unscheduled work order as published on the board.
// Latitude/Longitude are pointers because the board omits them for jobs
// that were never geocoded.
type JobListing struct {
	Name      string     `json:"Name"`
	Client    string     `json:"Client"`
	Status    string     `json:"Status"`
	Material  string     `json:"Material"`
	BidQty    FlexFloat  `json:"Bid Qty"`
	Address   string     `json:"Job Address"`
	JobType   string     `json:"Job Type"`
	Latitude  *float64   `json:"Latitude"`
	Longitude *float64   `json:"Longitude"`
	Night     FlexString `json:"Night?"`
}
