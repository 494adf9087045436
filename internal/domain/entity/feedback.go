package entity

// Feedbacker is the denormalized identity of the user who left feedback,
// copied into the record so reads never need a join.
type Feedbacker struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Feedback is a single feedback entry under users/{uid}/feedback/{key}.
type Feedback struct {
	Message    string     `json:"message"`
	Feedbacker Feedbacker `json:"feedbacker"`
	Timestamp  int64      `json:"timestamp"` // Epoch milliseconds.
}
