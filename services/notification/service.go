package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "taskturf/database/repository/notification"
	"taskturf/models"

	"github.com/google/uuid"
)

// ErrNotFound means no notification matched id+recipient.
var ErrNotFound = fmt.Errorf("notification not found")

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository

	// TTL sets the advisory expires_at on stored notifications. Zero
	// means no expiry. Expired notifications are not swept.
	TTL time.Duration
}

func (s *DefaultNotificationService) store(recipientID, typ, title, message string, data map[string]string) error {
	n := &models.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		Type:        typ,
		Title:       title,
		Message:     message,
		Data:        data,
		CreatedAt:   time.Now(),
	}
	if s.TTL > 0 {
		exp := n.CreatedAt.Add(s.TTL)
		n.ExpiresAt = &exp
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("failed to store notification for %s: %w", recipientID, err)
	}
	return nil
}

// BookingRequested notifies the assigned worker about a new request.
func (s *DefaultNotificationService) BookingRequested(ctx context.Context, b *models.Booking) error {
	if b.WorkerID == "" {
		return nil
	}
	title := "New booking request"
	message := fmt.Sprintf("%s requested %s on %s (est. %.2f)",
		customerLabel(b), b.ServiceType, b.ScheduledDate.Format("Jan 2, 15:04"), b.EstimatedPrice)
	data := map[string]string{
		"booking_id": b.ID,
		"service":    b.ServiceType,
	}
	if b.CustomerPhone != "" {
		data["customer_phone"] = b.CustomerPhone
	}
	return s.store(b.WorkerID, models.NotifyBookingRequest, title, message, data)
}

// WorkerResponded notifies the customer about the worker's answer. A
// booking with no customer contact is a no-op, not an error.
func (s *DefaultNotificationService) WorkerResponded(ctx context.Context, b *models.Booking, action string) error {
	if b.CustomerID == "" {
		return nil
	}
	var title, message string
	if action == models.ActionAccept {
		title = "Booking accepted"
		message = fmt.Sprintf("Your %s booking was accepted", b.ServiceType)
	} else {
		title = "Booking declined"
		message = fmt.Sprintf("Your %s booking was declined; we are looking for another worker", b.ServiceType)
	}
	if b.WorkerNote != "" {
		message += ": " + b.WorkerNote
	}
	return s.store(b.CustomerID, models.NotifyBookingResponse, title, message, map[string]string{
		"booking_id": b.ID,
		"action":     action,
	})
}

// BookingStarted notifies the customer that work has begun.
func (s *DefaultNotificationService) BookingStarted(ctx context.Context, b *models.Booking) error {
	if b.CustomerID == "" {
		return nil
	}
	message := fmt.Sprintf("Work on your %s booking has started", b.ServiceType)
	return s.store(b.CustomerID, models.NotifyBookingStatus, "Work started", message, map[string]string{
		"booking_id": b.ID,
		"status":     string(b.Status),
	})
}

// BookingCompleted notifies the customer that work is done and payment
// is due.
func (s *DefaultNotificationService) BookingCompleted(ctx context.Context, b *models.Booking) error {
	if b.CustomerID == "" {
		return nil
	}
	message := fmt.Sprintf("Your %s booking is complete; %.2f is due", b.ServiceType, b.FinalAmount)
	return s.store(b.CustomerID, models.NotifyBookingStatus, "Work completed", message, map[string]string{
		"booking_id": b.ID,
		"status":     string(b.Status),
	})
}

// BookingCancelled notifies the assigned worker, if any.
func (s *DefaultNotificationService) BookingCancelled(ctx context.Context, b *models.Booking) error {
	if b.WorkerID == "" {
		return nil
	}
	message := fmt.Sprintf("The %s booking on %s was cancelled", b.ServiceType, b.ScheduledDate.Format("Jan 2"))
	if b.CancelReason != "" {
		message += ": " + b.CancelReason
	}
	return s.store(b.WorkerID, models.NotifyBookingCancelled, "Booking cancelled", message, map[string]string{
		"booking_id": b.ID,
	})
}

// PaymentReceived notifies the worker that the customer paid.
func (s *DefaultNotificationService) PaymentReceived(ctx context.Context, b *models.Booking, p *models.Payment) error {
	if b.WorkerID == "" {
		return nil
	}
	message := fmt.Sprintf("Payment of %.2f received for your %s booking", p.Amount, b.ServiceType)
	return s.store(b.WorkerID, models.NotifyPayment, "Payment received", message, map[string]string{
		"booking_id": b.ID,
		"payment_id": p.ID,
		"receipt":    p.Receipt,
	})
}

// List returns the recipient's notifications, newest first.
func (s *DefaultNotificationService) List(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error) {
	return s.Repo.ListByRecipient(recipientID, limit)
}

// UnreadCount returns the recipient's unread notification count.
func (s *DefaultNotificationService) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	return s.Repo.CountUnread(recipientID)
}

// MarkRead acknowledges one notification. Re-acknowledging is a no-op
// success.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id, recipientID string) error {
	found, err := s.Repo.MarkRead(id, recipientID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead acknowledges every unread notification for the recipient.
func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	return s.Repo.MarkAllRead(recipientID)
}

func customerLabel(b *models.Booking) string {
	if b.CustomerName != "" {
		return b.CustomerName
	}
	return "A customer"
}
