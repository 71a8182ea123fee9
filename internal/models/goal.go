package models

// Goal represents a savings goal owned by a single user.
type Goal struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	DurationMonths int    `json:"duration_months"`
	Frequency      string `json:"frequency"` // e.g. Weekly, Biweekly, Monthly
	Privacy        string `json:"privacy"`   // e.g. Private, Public
	CreatedAt      string `json:"created_at,omitempty"`
}
