package notification

import (
	"context"

	"taskturf/models"
)

// NotificationService persists pull-based notifications for booking
// lifecycle events and serves recipient queries. Emission is best
// effort: the triggering ledger transition never depends on it.
type NotificationService interface {
	// Lifecycle event emitters. Each stores exactly one notification.
	BookingRequested(ctx context.Context, b *models.Booking) error
	WorkerResponded(ctx context.Context, b *models.Booking, action string) error
	BookingStarted(ctx context.Context, b *models.Booking) error
	BookingCompleted(ctx context.Context, b *models.Booking) error
	BookingCancelled(ctx context.Context, b *models.Booking) error
	PaymentReceived(ctx context.Context, b *models.Booking, p *models.Payment) error

	// Recipient queries.
	List(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error)
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, id, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}
