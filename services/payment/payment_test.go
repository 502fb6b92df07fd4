package payment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	bookingRepo "taskturf/database/repository/booking"
	"taskturf/models"
	"taskturf/services/booking"
	"taskturf/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingStore holds a handful of bookings and honors the
// conditional payment-status flip under a lock.
type fakeBookingStore struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingStore(bs ...*models.Booking) *fakeBookingStore {
	s := &fakeBookingStore{bookings: make(map[string]*models.Booking)}
	for _, b := range bs {
		cp := *b
		s.bookings[b.ID] = &cp
	}
	return s
}

func (s *fakeBookingStore) Create(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *b
	s.bookings[b.ID] = &cp
	return nil
}

func (s *fakeBookingStore) GetByID(id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (s *fakeBookingStore) ListByCustomer(customerID string, status models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}

func (s *fakeBookingStore) ListByWorker(workerID string, status models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}

func (s *fakeBookingStore) ApplyTransition(id string, expect bookingRepo.TransitionExpect, patch bookingRepo.TransitionPatch) (*models.Booking, error) {
	return nil, bookingRepo.ErrNoMatch
}

func (s *fakeBookingStore) UpdateDetails(id, customerID string, editable []models.BookingStatus, patch models.BookingDetailsPatch, finalAmount *float64) (*models.Booking, error) {
	return nil, bookingRepo.ErrNoMatch
}

func (s *fakeBookingStore) SetPaymentStatus(id, from, to string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok || b.PaymentStatus != from {
		return nil, bookingRepo.ErrNoMatch
	}
	b.PaymentStatus = to
	cp := *b
	return &cp, nil
}

func (s *fakeBookingStore) AggregateByStatus(field, actorID string) ([]models.StatusCount, error) {
	return nil, nil
}

// fakePaymentStore is an append-only in-memory payment log.
type fakePaymentStore struct {
	mu       sync.Mutex
	payments []models.Payment
}

func (s *fakePaymentStore) Create(p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.payments = append(s.payments, *p)
	return nil
}

func (s *fakePaymentStore) GetByBooking(bookingID string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.BookingID == bookingID {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakePaymentStore) ListByCustomer(customerID string) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Payment
	for _, p := range s.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeNotifRepo records notifications for fanout assertions.
type fakeNotifRepo struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (m *fakeNotifRepo) Create(n *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m *fakeNotifRepo) ListByRecipient(recipientID string, limit int64) ([]models.Notification, error) {
	return nil, nil
}

func (m *fakeNotifRepo) CountUnread(recipientID string) (int64, error) { return 0, nil }

func (m *fakeNotifRepo) MarkRead(id, recipientID string) (bool, error) { return false, nil }

func (m *fakeNotifRepo) MarkAllRead(recipientID string) (int64, error) { return 0, nil }

func payableBooking() *models.Booking {
	return &models.Booking{
		ID:            "b-1",
		CustomerID:    "cust-1",
		WorkerID:      "w-1",
		ServiceType:   "Plumbing",
		Status:        models.StatusCompleted,
		PaymentStatus: models.PaymentPendingPayment,
		FinalAmount:   1200,
	}
}

func newPaymentEnv(bs ...*models.Booking) (*DefaultPaymentService, *fakeBookingStore, *fakePaymentStore, *fakeNotifRepo) {
	bookings := newFakeBookingStore(bs...)
	payments := &fakePaymentStore{}
	notifs := &fakeNotifRepo{}
	svc := &DefaultPaymentService{
		Bookings:        bookings,
		Payments:        payments,
		NotificationSvc: &notification.DefaultNotificationService{Repo: notifs},
	}
	return svc, bookings, payments, notifs
}

func TestPaySettlesCompletedBooking(t *testing.T) {
	svc, bookings, _, notifs := newPaymentEnv(payableBooking())

	p, err := svc.Pay(context.Background(), "b-1", "cust-1", "cash")
	require.NoError(t, err)

	assert.Equal(t, "b-1", p.BookingID)
	assert.Equal(t, "cust-1", p.CustomerID)
	assert.Equal(t, "w-1", p.WorkerID)
	assert.Equal(t, 1200.0, p.Amount)
	assert.Equal(t, "cash", p.Method)
	assert.Equal(t, models.PaymentPaid, p.Status)
	assert.True(t, strings.HasPrefix(p.Receipt, "TT-"))

	b, err := bookings.GetByID("b-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, b.PaymentStatus)

	notifs.mu.Lock()
	defer notifs.mu.Unlock()
	require.Len(t, notifs.notifications, 1)
	assert.Equal(t, "w-1", notifs.notifications[0].RecipientID)
	assert.Equal(t, models.NotifyPayment, notifs.notifications[0].Type)
}

func TestPayDefaultsToCard(t *testing.T) {
	svc, _, _, _ := newPaymentEnv(payableBooking())

	p, err := svc.Pay(context.Background(), "b-1", "cust-1", "")
	require.NoError(t, err)
	assert.Equal(t, "card", p.Method)
}

func TestPayTwiceFailsSecondTime(t *testing.T) {
	svc, _, payments, _ := newPaymentEnv(payableBooking())
	ctx := context.Background()

	_, err := svc.Pay(ctx, "b-1", "cust-1", "card")
	require.NoError(t, err)

	_, err = svc.Pay(ctx, "b-1", "cust-1", "card")
	assert.ErrorIs(t, err, ErrNotPayable)

	payments.mu.Lock()
	defer payments.mu.Unlock()
	assert.Len(t, payments.payments, 1)
}

func TestPayRequiresCompletedPendingPayment(t *testing.T) {
	inProgress := payableBooking()
	inProgress.ID = "b-2"
	inProgress.Status = models.StatusInProgress
	inProgress.PaymentStatus = models.PaymentPending

	svc, _, _, _ := newPaymentEnv(inProgress)

	_, err := svc.Pay(context.Background(), "b-2", "cust-1", "card")
	assert.ErrorIs(t, err, ErrNotPayable)
}

func TestPayChecksOwnership(t *testing.T) {
	svc, _, _, _ := newPaymentEnv(payableBooking())
	ctx := context.Background()

	_, err := svc.Pay(ctx, "b-1", "someone-else", "card")
	assert.ErrorIs(t, err, booking.ErrNotFound)

	_, err = svc.Pay(ctx, "no-such-booking", "cust-1", "card")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestConcurrentPaymentsSettleOnce(t *testing.T) {
	svc, _, payments, _ := newPaymentEnv(payableBooking())

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Pay(context.Background(), "b-1", "cust-1", "card")
		}(i)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrNotPayable):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, losses)

	payments.mu.Lock()
	defer payments.mu.Unlock()
	assert.Len(t, payments.payments, 1)
}

func TestGetForBookingAndListForCustomer(t *testing.T) {
	svc, _, _, _ := newPaymentEnv(payableBooking())
	ctx := context.Background()

	created, err := svc.Pay(ctx, "b-1", "cust-1", "card")
	require.NoError(t, err)

	got, err := svc.GetForBooking(ctx, "b-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	list, err := svc.ListForCustomer(ctx, "cust-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	missing, err := svc.GetForBooking(ctx, "b-404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
