package stats

import (
	"context"
	"testing"

	bookingRepo "taskturf/database/repository/booking"
	"taskturf/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledgerFake aggregates a fixed booking slice the way the Mongo pipeline
// does: group by status, count, sum final_amount.
type ledgerFake struct {
	bookings []models.Booking
}

func (f *ledgerFake) Create(b *models.Booking) error             { return nil }
func (f *ledgerFake) GetByID(id string) (*models.Booking, error) { return nil, nil }

func (f *ledgerFake) ListByCustomer(customerID string, status models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}

func (f *ledgerFake) ListByWorker(workerID string, status models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}

func (f *ledgerFake) ApplyTransition(id string, expect bookingRepo.TransitionExpect, patch bookingRepo.TransitionPatch) (*models.Booking, error) {
	return nil, bookingRepo.ErrNoMatch
}

func (f *ledgerFake) UpdateDetails(id, customerID string, editable []models.BookingStatus, patch models.BookingDetailsPatch, finalAmount *float64) (*models.Booking, error) {
	return nil, bookingRepo.ErrNoMatch
}

func (f *ledgerFake) SetPaymentStatus(id, from, to string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNoMatch
}

func (f *ledgerFake) AggregateByStatus(field, actorID string) ([]models.StatusCount, error) {
	buckets := map[models.BookingStatus]*models.StatusCount{}
	for _, b := range f.bookings {
		key := b.CustomerID
		if field == "worker_id" {
			key = b.WorkerID
		}
		if key != actorID {
			continue
		}
		c, ok := buckets[b.Status]
		if !ok {
			c = &models.StatusCount{Status: b.Status}
			buckets[b.Status] = c
		}
		c.Count++
		c.Amount += b.FinalAmount
	}
	out := []models.StatusCount{}
	for _, c := range buckets {
		out = append(out, *c)
	}
	return out, nil
}

func b(customer, worker string, status models.BookingStatus, amount float64) models.Booking {
	return models.Booking{
		CustomerID:  customer,
		WorkerID:    worker,
		Status:      status,
		FinalAmount: amount,
	}
}

func testLedger() *ledgerFake {
	return &ledgerFake{bookings: []models.Booking{
		b("cust-1", "w-1", models.StatusCompleted, 1200),
		b("cust-1", "w-1", models.StatusCompleted, 800),
		b("cust-1", "w-2", models.StatusInProgress, 0),
		b("cust-1", "", models.StatusLookingForWorker, 0),
		b("cust-1", "w-1", models.StatusPending, 0),
		b("cust-1", "w-2", models.StatusCancelled, 0),
		b("cust-2", "w-1", models.StatusCompleted, 500),
		b("cust-2", "w-1", models.StatusRejected, 0),
		b("cust-2", "w-2", models.StatusAccepted, 0),
	}}
}

func TestDashboardForCustomer(t *testing.T) {
	svc := &DefaultDashboardService{Repo: testLedger()}

	got, err := svc.Dashboard(context.Background(), "cust-1", models.RoleCustomer)
	require.NoError(t, err)

	assert.Equal(t, int64(6), got.TotalBookings)
	assert.Equal(t, int64(2), got.Pending) // pending + looking_for_worker
	assert.Equal(t, int64(1), got.Active)
	assert.Equal(t, int64(2), got.Completed)
	assert.Equal(t, int64(1), got.Cancelled)
	assert.Zero(t, got.Rejected)
	assert.Equal(t, 2000.0, got.TotalAmount) // completed spend only
}

func TestDashboardForWorker(t *testing.T) {
	svc := &DefaultDashboardService{Repo: testLedger()}

	got, err := svc.Dashboard(context.Background(), "w-1", models.RoleWorker)
	require.NoError(t, err)

	assert.Equal(t, int64(5), got.TotalBookings)
	assert.Equal(t, int64(1), got.Pending)
	assert.Zero(t, got.Active)
	assert.Equal(t, int64(3), got.Completed)
	assert.Equal(t, int64(1), got.Rejected)
	assert.Equal(t, 2500.0, got.TotalAmount) // earnings across customers
}

func TestDashboardUnknownRole(t *testing.T) {
	svc := &DefaultDashboardService{Repo: testLedger()}

	_, err := svc.Dashboard(context.Background(), "cust-1", "admin")
	assert.Error(t, err)
}

func TestDashboardEmptyLedger(t *testing.T) {
	svc := &DefaultDashboardService{Repo: &ledgerFake{}}

	got, err := svc.Dashboard(context.Background(), "cust-1", models.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{}, got)
}

// TestFoldMatchesDirectScan cross-checks the bucketed fold against a
// from-scratch pass over the same bookings.
func TestFoldMatchesDirectScan(t *testing.T) {
	ledger := testLedger()
	counts, err := ledger.AggregateByStatus("customer_id", "cust-1")
	require.NoError(t, err)
	folded := Fold(counts)

	want := &models.DashboardStats{}
	for _, bk := range ledger.bookings {
		if bk.CustomerID != "cust-1" {
			continue
		}
		want.TotalBookings++
		switch bk.Status {
		case models.StatusPending, models.StatusLookingForWorker:
			want.Pending++
		case models.StatusAccepted, models.StatusInProgress:
			want.Active++
		case models.StatusCompleted:
			want.Completed++
			want.TotalAmount += bk.FinalAmount
		case models.StatusCancelled:
			want.Cancelled++
		case models.StatusRejected:
			want.Rejected++
		}
	}
	assert.Equal(t, want, folded)
}
