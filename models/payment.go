package models

import "time"

// Payment is a simulated payment record for a completed booking.
type Payment struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"booking_id" json:"booking_id"`
	CustomerID string    `bson:"customer_id" json:"customer_id"`
	WorkerID   string    `bson:"worker_id" json:"worker_id"`
	Amount     float64   `bson:"amount" json:"amount"`
	Method     string    `bson:"method" json:"method"` // e.g. "card", "cash"
	Status     string    `bson:"status" json:"status"`
	Receipt    string    `bson:"receipt" json:"receipt"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
