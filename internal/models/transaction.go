package models

// Transaction is a single contribution recorded against a goal. It is
// stamped with the owning user id so later reads and deletes can be scoped
// without joining back through the goal.
type Transaction struct {
	ID        string  `json:"id"`
	GoalID    string  `json:"goal_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at,omitempty"`
}
