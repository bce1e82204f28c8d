package domain

import "time"

// CatalogStatus describes the rate snapshot currently served.
type CatalogStatus struct {
	// Loaded is false until the first successful load.
	Loaded bool `json:"loaded"`
	// LoadedAt is when the current snapshot was built.
	LoadedAt time.Time `json:"loaded_at,omitempty"`
	// Counts holds the row count per table.
	Counts map[Table]int `json:"counts"`
	// Missing lists tables that are absent or empty.
	Missing []Table `json:"missing"`
}
