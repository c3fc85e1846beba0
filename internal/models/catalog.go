package models

// ConferenceEvent is one card on the conferences dashboard.
type ConferenceEvent struct {
	ID           string   `json:"_id,omitempty"`
	Icon         string   `json:"icon"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	People       int      `json:"people"`
	Date         string   `json:"date"`
	Participants string   `json:"participants"`
	DueDate      string   `json:"dueDate"`
	Tags         []string `json:"tags"`
	CreatedAt    string   `json:"createdAt"`
}
