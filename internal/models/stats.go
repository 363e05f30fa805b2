package models

// Stats holds the aggregate counts shown on the admin dashboard. Every value
// is computed fresh per request and defaults to zero when nothing matches.
type Stats struct {
	TotalListings  int64 `json:"totalListings"`
	ActiveListings int64 `json:"activeListings"`
	TotalMessages  int64 `json:"totalMessages"`
	TotalChickens  int64 `json:"totalChickens"` // sum of quantity over active chicken listings
	TotalGoats     int64 `json:"totalGoats"`    // sum of quantity over active goat listings
}
