package booking

import (
	"context"

	"taskturf/models"
)

// BookingService owns booking creation and every lifecycle transition.
// State writes are single conditional updates keyed on the expected
// current status, so concurrent callers race on the document and exactly
// one wins. Notification emission is synchronous but best effort: a
// fanout failure is logged and never rolls back the transition.
type BookingService interface {
	Create(ctx context.Context, in models.CreateBookingInput) (*models.Booking, error)
	WorkerRespond(ctx context.Context, in models.RespondInput) (*models.Booking, error)
	Start(ctx context.Context, bookingID, workerID string) (*models.Booking, error)
	Complete(ctx context.Context, bookingID, workerID string, finalAmount float64) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID, customerID, reason string) (*models.Booking, error)
	UpdateDetails(ctx context.Context, bookingID, customerID string, patch models.BookingDetailsPatch) (*models.Booking, error)
	AssignWorker(ctx context.Context, bookingID, workerID string) (*models.Booking, error)

	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListForCustomer(ctx context.Context, customerID string, status models.BookingStatus) ([]models.Booking, error)
	ListForWorker(ctx context.Context, workerID string, status models.BookingStatus) ([]models.Booking, error)
}
