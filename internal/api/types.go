package api

// PrefixEntry is one consolidated prefix in an API response.
type PrefixEntry struct {
	Network  string   `json:"network"`
	Region   string   `json:"region"`
	Services []string `json:"services"`
}

// PrefixesResponse is the response of GET /api/v1/prefixes.
type PrefixesResponse struct {
	Serial   string        `json:"serial"`
	Count    int           `json:"count"`
	Prefixes []PrefixEntry `json:"prefixes"`
}

// SerialResponse is the response of GET /api/v1/serial.
type SerialResponse struct {
	Serial string `json:"serial"`
}

// RefreshResponse is the response of POST /api/v1/refresh.
type RefreshResponse struct {
	Serial   string `json:"serial"`
	Prefixes int    `json:"prefixes"`
}
