package stats

import (
	"context"
	"fmt"

	bookingRepo "taskturf/database/repository/booking"
	"taskturf/models"
)

// DashboardService derives per-actor counters from the booking ledger.
// Every call aggregates the ledger afresh; there is no materialized
// view, so the counters can never drift from the bookings themselves.
type DashboardService interface {
	Dashboard(ctx context.Context, actorID, role string) (*models.DashboardStats, error)
}

// DefaultDashboardService implements DashboardService.
type DefaultDashboardService struct {
	Repo bookingRepo.BookingRepository
}

// Dashboard computes the actor's counters. Workers are keyed by the
// booking's worker_id, customers by customer_id; the amount is earnings
// for workers and spend for customers, both summed over completed
// bookings only.
func (s *DefaultDashboardService) Dashboard(ctx context.Context, actorID, role string) (*models.DashboardStats, error) {
	var field string
	switch role {
	case models.RoleWorker:
		field = "worker_id"
	case models.RoleCustomer:
		field = "customer_id"
	default:
		return nil, fmt.Errorf("unknown actor role %q", role)
	}

	counts, err := s.Repo.AggregateByStatus(field, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings: %w", err)
	}

	return Fold(counts), nil
}

// Fold collapses per-status buckets into dashboard counters.
func Fold(counts []models.StatusCount) *models.DashboardStats {
	out := &models.DashboardStats{}
	for _, c := range counts {
		out.TotalBookings += c.Count
		switch c.Status {
		case models.StatusPending, models.StatusLookingForWorker:
			out.Pending += c.Count
		case models.StatusAccepted, models.StatusInProgress:
			out.Active += c.Count
		case models.StatusCompleted:
			out.Completed += c.Count
			out.TotalAmount += c.Amount
		case models.StatusCancelled:
			out.Cancelled += c.Count
		case models.StatusRejected:
			out.Rejected += c.Count
		}
	}
	return out
}
