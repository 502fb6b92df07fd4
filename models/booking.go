package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusLookingForWorker BookingStatus = "looking_for_worker"
	StatusPending          BookingStatus = "pending"
	StatusAccepted         BookingStatus = "accepted"
	StatusRejected         BookingStatus = "rejected"
	StatusInProgress       BookingStatus = "in_progress"
	StatusCompleted        BookingStatus = "completed"
	StatusCancelled        BookingStatus = "cancelled"
)

// IsTerminal reports whether no further lifecycle transitions are legal.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Urgency tiers and their price multipliers.
const (
	UrgencyUrgent   = "urgent"
	UrgencyStandard = "standard"
	UrgencyFlexible = "flexible"
)

// Payment statuses.
const (
	PaymentPending        = "pending"
	PaymentPendingPayment = "pending_payment"
	PaymentPaid           = "paid"
	PaymentRefunded       = "refunded"
)

// Booking represents a service request record. Bookings are never hard
// deleted; cancellation and rejection are terminal states.
type Booking struct {
	ID          string `bson:"id" json:"id"`
	CustomerID  string `bson:"customer_id" json:"customer_id"`
	WorkerID    string `bson:"worker_id,omitempty" json:"worker_id,omitempty"` // empty until assigned
	ServiceType string `bson:"service_type" json:"service_type"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Address     string `bson:"address,omitempty" json:"address,omitempty"`

	// Denormalized customer contact, used for notification payloads.
	CustomerName  string `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	CustomerPhone string `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`

	ScheduledDate time.Time `bson:"scheduled_date" json:"scheduled_date"`
	Urgency       string    `bson:"urgency" json:"urgency"`

	EstimatedPrice float64 `bson:"estimated_price" json:"estimated_price"`
	FinalAmount    float64 `bson:"final_amount,omitempty" json:"final_amount,omitempty"`
	PaymentStatus  string  `bson:"payment_status" json:"payment_status"`

	Status       BookingStatus `bson:"status" json:"status"`
	WorkerNote   string        `bson:"worker_note,omitempty" json:"worker_note,omitempty"`
	CancelReason string        `bson:"cancel_reason,omitempty" json:"cancel_reason,omitempty"`

	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
	AcceptedAt  *time.Time `bson:"accepted_at,omitempty" json:"accepted_at,omitempty"`
	RejectedAt  *time.Time `bson:"rejected_at,omitempty" json:"rejected_at,omitempty"`
	StartedAt   *time.Time `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
}
