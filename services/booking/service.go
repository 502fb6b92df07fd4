package booking

import (
	"context"
	"fmt"

	bookingRepo "taskturf/database/repository/booking"
	userRepo "taskturf/database/repository/user"
	"taskturf/models"
	"taskturf/services/matching"
	"taskturf/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo            bookingRepo.BookingRepository
	UserRepo        userRepo.UserRepository
	MatchingSvc     matching.MatchingService
	NotificationSvc notification.NotificationService
	Logger          *zap.Logger
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// notify runs a fanout emitter and swallows its failure. Booking
// correctness takes priority over notification delivery.
func (s *DefaultBookingService) notify(event string, bookingID string, emit func() error) {
	if err := emit(); err != nil {
		s.logger().Warn("notification fanout failed",
			zap.String("event", event),
			zap.String("bookingID", bookingID),
			zap.Error(err))
	}
}

// Create resolves a worker for the request and persists the booking in
// its initial state: pending when a worker was assigned, otherwise
// looking_for_worker. An empty candidate pool is a valid outcome, not
// an error.
func (s *DefaultBookingService) Create(ctx context.Context, in models.CreateBookingInput) (*models.Booking, error) {
	urgency := in.Urgency
	if urgency == "" {
		urgency = models.UrgencyStandard
	}
	if !ValidUrgency(urgency) {
		return nil, fmt.Errorf("unknown urgency tier %q", in.Urgency)
	}

	match, err := s.MatchingSvc.Resolve(ctx, models.MatchRequest{
		ServiceType: in.ServiceType,
		Budget:      in.Budget,
		WorkerID:    in.WorkerID,
	})
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		ServiceType:   in.ServiceType,
		Description:   in.Description,
		Address:       in.Address,
		ScheduledDate: in.ScheduledDate,
		Urgency:       urgency,
		PaymentStatus: models.PaymentPending,
	}

	if match.Assigned {
		b.Status = models.StatusPending
		b.WorkerID = match.Worker.ID
		b.EstimatedPrice = match.Price
	} else {
		b.Status = models.StatusLookingForWorker
		b.EstimatedPrice = in.Budget
	}

	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	if b.WorkerID != "" {
		s.notify("booking_request", b.ID, func() error {
			return s.NotificationSvc.BookingRequested(ctx, b)
		})
	}
	return b, nil
}

// WorkerRespond applies the worker's accept/reject answer to a pending
// booking. The write is conditional on id+worker+pending, so of two
// concurrent responses exactly one succeeds and the other observes
// ErrAlreadyResolved. Rejection clears the assignment so the booking
// can be re-matched.
func (s *DefaultBookingService) WorkerRespond(ctx context.Context, in models.RespondInput) (*models.Booking, error) {
	var act Action
	switch in.Action {
	case models.ActionAccept:
		act = ActionAccept
	case models.ActionReject:
		act = ActionReject
	default:
		return nil, fmt.Errorf("unknown response action %q", in.Action)
	}

	next, ok := NextStatus(models.StatusPending, act)
	if !ok {
		return nil, ErrInvalidTransition
	}

	patch := bookingRepo.TransitionPatch{
		Status:     next,
		WorkerNote: in.Note,
	}
	if act == ActionAccept {
		patch.Stamp = bookingRepo.StampAccepted
	} else {
		patch.Stamp = bookingRepo.StampRejected
		patch.ClearWorker = true
	}

	expect := bookingRepo.TransitionExpect{
		Statuses: []models.BookingStatus{models.StatusPending},
		WorkerID: in.WorkerID,
	}
	updated, err := s.Repo.ApplyTransition(in.BookingID, expect, patch)
	if err != nil {
		return nil, s.classifyNoMatch(in.BookingID, err, ErrAlreadyResolved)
	}

	s.notify("booking_response", updated.ID, func() error {
		return s.NotificationSvc.WorkerResponded(ctx, updated, in.Action)
	})
	return updated, nil
}

// Start marks an accepted booking as in progress.
func (s *DefaultBookingService) Start(ctx context.Context, bookingID, workerID string) (*models.Booking, error) {
	next, _ := NextStatus(models.StatusAccepted, ActionStart)

	expect := bookingRepo.TransitionExpect{
		Statuses: []models.BookingStatus{models.StatusAccepted},
		WorkerID: workerID,
	}
	patch := bookingRepo.TransitionPatch{
		Status: next,
		Stamp:  bookingRepo.StampStarted,
	}
	updated, err := s.Repo.ApplyTransition(bookingID, expect, patch)
	if err != nil {
		return nil, s.classifyNoMatch(bookingID, err, ErrInvalidTransition)
	}

	s.notify("booking_started", updated.ID, func() error {
		return s.NotificationSvc.BookingStarted(ctx, updated)
	})
	return updated, nil
}

// Complete finishes an in-progress booking: stamps completion, sets the
// final amount (falling back to the estimate), flips payment status to
// pending_payment and bumps the worker's completed count and earnings.
func (s *DefaultBookingService) Complete(ctx context.Context, bookingID, workerID string, finalAmount float64) (*models.Booking, error) {
	current, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}
	if finalAmount <= 0 {
		finalAmount = current.EstimatedPrice
	}

	next, _ := NextStatus(models.StatusInProgress, ActionComplete)
	expect := bookingRepo.TransitionExpect{
		Statuses: []models.BookingStatus{models.StatusInProgress},
		WorkerID: workerID,
	}
	patch := bookingRepo.TransitionPatch{
		Status:        next,
		Stamp:         bookingRepo.StampCompleted,
		PaymentStatus: models.PaymentPendingPayment,
		FinalAmount:   &finalAmount,
	}
	updated, err := s.Repo.ApplyTransition(bookingID, expect, patch)
	if err != nil {
		return nil, s.classifyNoMatch(bookingID, err, ErrInvalidTransition)
	}

	if err := s.UserRepo.IncrementWorkerStats(workerID, 1, finalAmount); err != nil {
		// The transition is committed; counter drift is repairable and
		// must not fail the completion.
		s.logger().Error("failed to increment worker stats",
			zap.String("workerID", workerID),
			zap.String("bookingID", bookingID),
			zap.Error(err))
	}

	s.notify("booking_completed", updated.ID, func() error {
		return s.NotificationSvc.BookingCompleted(ctx, updated)
	})
	return updated, nil
}

// Cancel is customer-initiated and legal only before work starts.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, customerID, reason string) (*models.Booking, error) {
	expect := bookingRepo.TransitionExpect{
		Statuses:   cancellableStatuses,
		CustomerID: customerID,
	}
	patch := bookingRepo.TransitionPatch{
		Status:       models.StatusCancelled,
		Stamp:        bookingRepo.StampCancelled,
		CancelReason: reason,
	}
	updated, err := s.Repo.ApplyTransition(bookingID, expect, patch)
	if err != nil {
		return nil, s.classifyNoMatch(bookingID, err, ErrNotCancellable)
	}

	s.notify("booking_cancelled", updated.ID, func() error {
		return s.NotificationSvc.BookingCancelled(ctx, updated)
	})
	return updated, nil
}

// UpdateDetails patches schedule, description, address or urgency while
// the booking is still editable. An urgency change recomputes the final
// amount from the estimated price.
func (s *DefaultBookingService) UpdateDetails(ctx context.Context, bookingID, customerID string, patch models.BookingDetailsPatch) (*models.Booking, error) {
	current, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if current == nil || current.CustomerID != customerID {
		return nil, ErrNotFound
	}
	if !CanEdit(current.Status) {
		return nil, ErrNotEditable
	}

	var finalAmount *float64
	if patch.Urgency != nil {
		if !ValidUrgency(*patch.Urgency) {
			return nil, fmt.Errorf("unknown urgency tier %q", *patch.Urgency)
		}
		amount := ApplyUrgency(current.EstimatedPrice, *patch.Urgency)
		finalAmount = &amount
	}

	updated, err := s.Repo.UpdateDetails(bookingID, customerID, editableStatuses, patch, finalAmount)
	if err != nil {
		if err == bookingRepo.ErrNoMatch {
			// State moved between the read and the conditional write.
			return nil, ErrNotEditable
		}
		return nil, err
	}
	return updated, nil
}

// AssignWorker resolves a deferred booking: looking_for_worker becomes
// pending once an eligible worker is attached out of band.
func (s *DefaultBookingService) AssignWorker(ctx context.Context, bookingID, workerID string) (*models.Booking, error) {
	current, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	worker, err := s.UserRepo.GetWorker(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, matching.ErrWorkerNotFound
	}
	if !worker.Available || !models.SkillMatches(worker.Skills, current.ServiceType) {
		return nil, matching.ErrWorkerUnavailable
	}

	next, _ := NextStatus(models.StatusLookingForWorker, ActionAssign)
	expect := bookingRepo.TransitionExpect{
		Statuses: []models.BookingStatus{models.StatusLookingForWorker},
	}
	rate := worker.HourlyRate
	patch := bookingRepo.TransitionPatch{
		Status:         next,
		SetWorkerID:    worker.ID,
		EstimatedPrice: &rate,
	}
	updated, err := s.Repo.ApplyTransition(bookingID, expect, patch)
	if err != nil {
		return nil, s.classifyNoMatch(bookingID, err, ErrInvalidTransition)
	}

	s.notify("booking_request", updated.ID, func() error {
		return s.NotificationSvc.BookingRequested(ctx, updated)
	})
	return updated, nil
}

// GetByID fetches one booking.
func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// ListForCustomer returns a customer's bookings, newest first.
func (s *DefaultBookingService) ListForCustomer(ctx context.Context, customerID string, status models.BookingStatus) ([]models.Booking, error) {
	return s.Repo.ListByCustomer(customerID, status)
}

// ListForWorker returns a worker's bookings, newest first.
func (s *DefaultBookingService) ListForWorker(ctx context.Context, workerID string, status models.BookingStatus) ([]models.Booking, error) {
	return s.Repo.ListByWorker(workerID, status)
}

// classifyNoMatch turns the repository's conditional-write miss into the
// caller-facing failure: unknown id reads as ErrNotFound, anything else
// means the booking was in the wrong state.
func (s *DefaultBookingService) classifyNoMatch(bookingID string, err error, stateErr *LedgerError) error {
	if err != bookingRepo.ErrNoMatch {
		return err
	}
	b, lookupErr := s.Repo.GetByID(bookingID)
	if lookupErr != nil {
		return lookupErr
	}
	if b == nil {
		return ErrNotFound
	}
	return stateErr
}
