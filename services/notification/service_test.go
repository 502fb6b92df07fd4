package notification

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"taskturf/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (m *memRepo) Create(n *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m *memRepo) ListByRecipient(recipientID string, limit int64) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Notification
	for _, n := range m.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) CountUnread(recipientID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, n := range m.notifications {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *memRepo) MarkRead(id, recipientID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, n := range m.notifications {
		if n.ID == id && n.RecipientID == recipientID {
			if !n.Read {
				now := time.Now()
				m.notifications[i].Read = true
				m.notifications[i].ReadAt = &now
			}
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) MarkAllRead(recipientID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var updated int64
	now := time.Now()
	for i, n := range m.notifications {
		if n.RecipientID == recipientID && !n.Read {
			m.notifications[i].Read = true
			m.notifications[i].ReadAt = &now
			updated++
		}
	}
	return updated, nil
}

func booking() *models.Booking {
	return &models.Booking{
		ID:             "b-1",
		CustomerID:     "cust-1",
		CustomerName:   "Jane",
		WorkerID:       "w-1",
		ServiceType:    "Cleaning",
		ScheduledDate:  time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		EstimatedPrice: 450,
		Status:         models.StatusPending,
	}
}

func TestBookingRequestedTargetsWorker(t *testing.T) {
	repo := &memRepo{}
	svc := &DefaultNotificationService{Repo: repo}

	require.NoError(t, svc.BookingRequested(context.Background(), booking()))

	list, err := svc.List(context.Background(), "w-1", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotifyBookingRequest, list[0].Type)
	assert.Equal(t, "b-1", list[0].Data["booking_id"])
	assert.False(t, list[0].Read)

	// nothing for the customer on a request event
	list, err = svc.List(context.Background(), "cust-1", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUnassignedBookingEventsAreNoOps(t *testing.T) {
	repo := &memRepo{}
	svc := &DefaultNotificationService{Repo: repo}

	b := booking()
	b.WorkerID = ""
	require.NoError(t, svc.BookingRequested(context.Background(), b))
	require.NoError(t, svc.BookingCancelled(context.Background(), b))
	assert.Empty(t, repo.notifications)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	repo := &memRepo{}
	svc := &DefaultNotificationService{Repo: repo}
	ctx := context.Background()

	require.NoError(t, svc.BookingRequested(ctx, booking()))
	list, err := svc.List(ctx, "w-1", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	require.NoError(t, svc.MarkRead(ctx, id, "w-1"))
	require.NoError(t, svc.MarkRead(ctx, id, "w-1")) // second ack succeeds

	count, err := svc.UnreadCount(ctx, "w-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	// wrong recipient or unknown id is not found
	assert.ErrorIs(t, svc.MarkRead(ctx, id, "cust-1"), ErrNotFound)
	assert.ErrorIs(t, svc.MarkRead(ctx, "nope", "w-1"), ErrNotFound)
}

func TestMarkAllRead(t *testing.T) {
	repo := &memRepo{}
	svc := &DefaultNotificationService{Repo: repo}
	ctx := context.Background()

	b := booking()
	require.NoError(t, svc.BookingRequested(ctx, b))
	require.NoError(t, svc.BookingCancelled(ctx, b))
	require.NoError(t, svc.BookingStarted(ctx, b)) // goes to the customer

	updated, err := svc.MarkAllRead(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	count, err := svc.UnreadCount(ctx, "w-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = svc.UnreadCount(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestWorkerRespondedMessageIncludesNote(t *testing.T) {
	repo := &memRepo{}
	svc := &DefaultNotificationService{Repo: repo}
	ctx := context.Background()

	b := booking()
	b.WorkerNote = "see you at 10"
	require.NoError(t, svc.WorkerResponded(ctx, b, models.ActionAccept))

	list, err := svc.List(ctx, "cust-1", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotifyBookingResponse, list[0].Type)
	assert.Equal(t, "Booking accepted", list[0].Title)
	assert.Contains(t, list[0].Message, "see you at 10")
	assert.Equal(t, models.ActionAccept, list[0].Data["action"])
}

func TestTTLSetsAdvisoryExpiry(t *testing.T) {
	repo := &memRepo{}
	svc := &DefaultNotificationService{Repo: repo, TTL: 48 * time.Hour}

	require.NoError(t, svc.BookingRequested(context.Background(), booking()))
	require.Len(t, repo.notifications, 1)
	n := repo.notifications[0]
	require.NotNil(t, n.ExpiresAt)
	assert.Equal(t, n.CreatedAt.Add(48*time.Hour), *n.ExpiresAt)
}

func TestPaymentReceivedTargetsWorker(t *testing.T) {
	repo := &memRepo{}
	svc := &DefaultNotificationService{Repo: repo}

	p := &models.Payment{ID: "p-1", BookingID: "b-1", Amount: 1200, Receipt: "TT-abc123"}
	require.NoError(t, svc.PaymentReceived(context.Background(), booking(), p))

	list, err := svc.List(context.Background(), "w-1", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotifyPayment, list[0].Type)
	assert.Equal(t, "TT-abc123", list[0].Data["receipt"])
}
