package models

// StatusCount is one aggregation bucket from the booking ledger.
type StatusCount struct {
	Status BookingStatus `bson:"_id" json:"status"`
	Count  int64         `bson:"count" json:"count"`
	Amount float64       `bson:"amount" json:"amount"` // sum of final_amount in the bucket
}

// DashboardStats holds per-actor counters, computed fresh on every call.
type DashboardStats struct {
	TotalBookings int64 `json:"total_bookings"`
	Pending       int64 `json:"pending"` // pending + looking_for_worker
	Active        int64 `json:"active"`  // accepted + in_progress
	Completed     int64 `json:"completed"`
	Cancelled     int64 `json:"cancelled"`
	Rejected      int64 `json:"rejected"`

	// Earnings for workers, spend for customers: sum of final_amount
	// over completed bookings.
	TotalAmount float64 `json:"total_amount"`
}
