package models

import "time"

// Notification types.
const (
	NotifyBookingRequest   = "booking_request"
	NotifyBookingResponse  = "booking_response"
	NotifyBookingStatus    = "booking_status"
	NotifyBookingCancelled = "booking_cancelled"
	NotifyPayment          = "payment"
)

// Notification is a pull-based message stored for a single recipient.
type Notification struct {
	ID          string            `bson:"id" json:"id"`
	RecipientID string            `bson:"recipient_id" json:"recipient_id"`
	Type        string            `bson:"type" json:"type"`
	Title       string            `bson:"title" json:"title"`
	Message     string            `bson:"message" json:"message"`
	Data        map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read        bool              `bson:"read" json:"read"`
	ReadAt      *time.Time        `bson:"read_at,omitempty" json:"read_at,omitempty"`
	CreatedAt   time.Time         `bson:"created_at" json:"created_at"`
	ExpiresAt   *time.Time        `bson:"expires_at,omitempty" json:"expires_at,omitempty"` // advisory only
}
