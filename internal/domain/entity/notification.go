package entity

// Notification is a single entry in a user's append-only notification log,
// stored under users/{uid}/notifications/{key}.
type Notification struct {
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	Timestamp  int64   `json:"timestamp"` // Epoch milliseconds.
	ActionType *string `json:"actionType,omitempty"`
	ActionLink *string `json:"actionLink,omitempty"`
}
