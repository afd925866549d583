package geocode

// Coordinates is the resolved location for a country lookup. Accuracy is
// tier-dependent: the API tier returns locality-level matches, the static
// fallback returns fixed per-country centroids, and unknown countries
// resolve to (0, 0).
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Formatted string  `json:"formatted"`
}

// Match is a single geocoding result from the API tier.
type Match struct {
	Latitude  float64
	Longitude float64
	Formatted string
}

// openCageResponse mirrors the relevant parts of the OpenCage JSON payload.
type openCageResponse struct {
	Results []openCageResult `json:"results"`
	Status  openCageStatus   `json:"status"`
}

type openCageResult struct {
	Geometry  openCageGeometry `json:"geometry"`
	Formatted string           `json:"formatted"`
}

type openCageGeometry struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type openCageStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
