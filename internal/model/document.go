package model

// SyncDocument is the envelope written to the published output file.
// In daily mode Today/Yesterday are set and History is empty; in
// historical mode it is the other way around.
type SyncDocument struct {
	LastSync  string           `json:"last_sync"` // RFC3339
	Mode      string           `json:"mode"`      // daily | historical
	StartDate string           `json:"start_date,omitempty"`
	EndDate   string           `json:"end_date,omitempty"`
	Today     *HealthSnapshot  `json:"today"`
	Yesterday *HealthSnapshot  `json:"yesterday"`
	History   []HealthSnapshot `json:"history"`
}

const (
	ModeDaily      = "daily"
	ModeHistorical = "historical"
)
