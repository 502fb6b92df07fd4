package bookingRepo

import (
	"errors"

	"taskturf/models"
)

// ErrNoMatch is returned by conditional writes when no document satisfies
// the expected state. Callers translate it into their own typed failures.
var ErrNoMatch = errors.New("no booking matched the expected state")

// Timestamp fields stamped on transitions.
const (
	StampAccepted  = "accepted_at"
	StampRejected  = "rejected_at"
	StampStarted   = "started_at"
	StampCompleted = "completed_at"
	StampCancelled = "cancelled_at"
)

// TransitionExpect describes the state a booking must be in for a
// conditional transition to apply. Empty fields are not checked.
type TransitionExpect struct {
	Statuses   []models.BookingStatus // any-of; required
	WorkerID   string
	CustomerID string
}

// TransitionPatch describes the new state written by a transition. The
// write is a single conditional update, so two racing callers cannot
// both succeed.
type TransitionPatch struct {
	Status         models.BookingStatus
	Stamp          string // one of the Stamp* constants, or empty
	ClearWorker    bool
	SetWorkerID    string
	PaymentStatus  string
	EstimatedPrice *float64
	FinalAmount    *float64
	WorkerNote     string
	CancelReason   string
}

// BookingRepository owns booking persistence. Documents are never
// deleted; terminal states end the lifecycle.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByCustomer(customerID string, status models.BookingStatus) ([]models.Booking, error)
	ListByWorker(workerID string, status models.BookingStatus) ([]models.Booking, error)

	// ApplyTransition performs the conditional state write and returns
	// the updated document, or ErrNoMatch when the expectation fails.
	ApplyTransition(id string, expect TransitionExpect, patch TransitionPatch) (*models.Booking, error)

	// UpdateDetails patches editable fields, conditional on the booking
	// still being in one of the given statuses. Returns ErrNoMatch when
	// the condition fails.
	UpdateDetails(id, customerID string, editable []models.BookingStatus, patch models.BookingDetailsPatch, finalAmount *float64) (*models.Booking, error)

	// SetPaymentStatus flips the payment status, conditional on the
	// current value. Returns ErrNoMatch when the condition fails.
	SetPaymentStatus(id, from, to string) (*models.Booking, error)

	// AggregateByStatus groups the actor's bookings by status with
	// per-bucket counts and final-amount sums. field is "customer_id"
	// or "worker_id".
	AggregateByStatus(field, actorID string) ([]models.StatusCount, error)
}
