package models

import "time"

// CreateBookingInput holds the customer's service request details.
type CreateBookingInput struct {
	CustomerID    string    `json:"-"`
	CustomerName  string    `json:"-"`
	CustomerPhone string    `json:"-"`
	ServiceType   string    `json:"serviceType" binding:"required"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
	Urgency       string    `json:"urgency"`
	Budget        float64   `json:"budget"`
	WorkerID      string    `json:"workerId"` // optional explicit selection
}

// Worker response actions.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// RespondInput is a worker's answer to a pending booking.
type RespondInput struct {
	BookingID string `json:"-"`
	WorkerID  string `json:"-"`
	Action    string `json:"action" binding:"required,oneof=accept reject"`
	Note      string `json:"note"`
}

// BookingDetailsPatch updates editable booking fields. Nil fields are
// left untouched.
type BookingDetailsPatch struct {
	Description   *string    `json:"description"`
	Address       *string    `json:"address"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	Urgency       *string    `json:"urgency"`
}

// MatchRequest asks the matcher to resolve a worker for a service request.
type MatchRequest struct {
	ServiceType string
	Budget      float64
	WorkerID    string // optional explicit selection
}

// MatchResult is the matcher's outcome. Assigned is false when no
// eligible worker exists, which is a valid outcome rather than an error.
type MatchResult struct {
	Assigned bool
	Worker   *WorkerCandidate
	Price    float64
}
