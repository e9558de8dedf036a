package models

// ActivityEntry is one record in the bounded, most-recent-first activity log.
type ActivityEntry struct {
	Ref     string `json:"ref"`
	Type    string `json:"type"`
	User    string `json:"user"`
	Date    string `json:"date"`
	Details string `json:"details"`
}
