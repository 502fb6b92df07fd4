package payment

import (
	"context"
	"fmt"
	"strings"

	bookingRepo "taskturf/database/repository/booking"
	paymentRepo "taskturf/database/repository/payment"
	"taskturf/models"
	"taskturf/services/booking"
	"taskturf/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentError is a typed failure from the payment simulator.
type PaymentError struct {
	Code    string
	Message string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrNotPayable means the booking is not awaiting payment.
var ErrNotPayable = &PaymentError{Code: "notPayable", Message: "booking is not awaiting payment"}

// PaymentService simulates payment for completed bookings. No real
// gateway is involved; success is deterministic.
type PaymentService interface {
	Pay(ctx context.Context, bookingID, customerID, method string) (*models.Payment, error)
	GetForBooking(ctx context.Context, bookingID string) (*models.Payment, error)
	ListForCustomer(ctx context.Context, customerID string) ([]models.Payment, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Bookings        bookingRepo.BookingRepository
	Payments        paymentRepo.PaymentRepository
	NotificationSvc notification.NotificationService
	Logger          *zap.Logger
}

func (s *DefaultPaymentService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// Pay settles a completed booking. The payment-status flip is a single
// conditional write on pending_payment, so paying twice cannot succeed
// twice.
func (s *DefaultPaymentService) Pay(ctx context.Context, bookingID, customerID, method string) (*models.Payment, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil || b.CustomerID != customerID {
		return nil, booking.ErrNotFound
	}
	if b.Status != models.StatusCompleted || b.PaymentStatus != models.PaymentPendingPayment {
		return nil, ErrNotPayable
	}

	updated, err := s.Bookings.SetPaymentStatus(bookingID, models.PaymentPendingPayment, models.PaymentPaid)
	if err != nil {
		if err == bookingRepo.ErrNoMatch {
			return nil, ErrNotPayable
		}
		return nil, err
	}

	if method == "" {
		method = "card"
	}
	p := &models.Payment{
		ID:         uuid.New().String(),
		BookingID:  updated.ID,
		CustomerID: updated.CustomerID,
		WorkerID:   updated.WorkerID,
		Amount:     updated.FinalAmount,
		Method:     method,
		Status:     models.PaymentPaid,
		Receipt:    receiptCode(),
	}
	if err := s.Payments.Create(p); err != nil {
		return nil, err
	}

	if err := s.NotificationSvc.PaymentReceived(ctx, updated, p); err != nil {
		s.logger().Warn("payment notification fanout failed",
			zap.String("bookingID", updated.ID),
			zap.Error(err))
	}
	return p, nil
}

// GetForBooking returns the payment record for a booking, if any.
func (s *DefaultPaymentService) GetForBooking(ctx context.Context, bookingID string) (*models.Payment, error) {
	return s.Payments.GetByBooking(bookingID)
}

// ListForCustomer returns a customer's payments, newest first.
func (s *DefaultPaymentService) ListForCustomer(ctx context.Context, customerID string) ([]models.Payment, error) {
	return s.Payments.ListByCustomer(customerID)
}

// receiptCode builds a short human-readable receipt reference.
func receiptCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "TT-" + raw[:10]
}
