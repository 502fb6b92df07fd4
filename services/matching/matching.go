package matching

import (
	"context"
	"fmt"
	"sort"

	userRepo "taskturf/database/repository/user"
	"taskturf/models"
)

// MatchError is a typed failure from worker resolution.
type MatchError struct {
	Code    string
	Message string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrWorkerNotFound means the explicitly requested worker id is unknown.
	ErrWorkerNotFound = &MatchError{Code: "workerNotFound", Message: "worker not found"}

	// ErrWorkerUnavailable means the explicitly requested worker exists
	// but fails eligibility (unavailable or no matching skill).
	ErrWorkerUnavailable = &MatchError{Code: "workerUnavailable", Message: "worker is unavailable or does not offer this service"}
)

// budgetHeadroom widens the customer's budget ceiling when searching for
// candidates, so slightly pricier workers are still considered.
const budgetHeadroom = 1.2

// MatchingService resolves zero or one worker for a service request.
type MatchingService interface {
	Resolve(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error)
	TopCandidates(ctx context.Context, serviceType string, budget float64, limit int) ([]models.WorkerCandidate, error)
}

// DefaultMatchingService implements MatchingService. It never mutates
// worker records; availability toggling is a separate worker operation.
type DefaultMatchingService struct {
	UserRepo userRepo.UserRepository
}

// Resolve picks a worker for the request. With an explicit worker id the
// worker must be eligible or the call fails; otherwise the best-ranked
// candidate is chosen, and an empty candidate set yields an unassigned
// result rather than an error.
func (s *DefaultMatchingService) Resolve(ctx context.Context, req models.MatchRequest) (*models.MatchResult, error) {
	if req.WorkerID != "" {
		return s.resolveExplicit(req)
	}
	return s.resolveAuto(req)
}

func (s *DefaultMatchingService) resolveExplicit(req models.MatchRequest) (*models.MatchResult, error) {
	worker, err := s.UserRepo.GetWorker(req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch worker %s: %w", req.WorkerID, err)
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}
	if !worker.Available || !models.SkillMatches(worker.Skills, req.ServiceType) {
		return nil, ErrWorkerUnavailable
	}
	return &models.MatchResult{
		Assigned: true,
		Worker:   worker,
		Price:    worker.HourlyRate,
	}, nil
}

func (s *DefaultMatchingService) resolveAuto(req models.MatchRequest) (*models.MatchResult, error) {
	candidates, err := s.rankedCandidates(req.ServiceType, req.Budget)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return &models.MatchResult{Assigned: false}, nil
	}
	best := candidates[0]
	return &models.MatchResult{
		Assigned: true,
		Worker:   &best,
		Price:    best.HourlyRate,
	}, nil
}

// rankedCandidates queries eligible workers and orders them with a total,
// deterministic ranking: rating descending, completed jobs descending,
// then id ascending. Repeated runs over identical data always agree.
func (s *DefaultMatchingService) rankedCandidates(serviceType string, budget float64) ([]models.WorkerCandidate, error) {
	workers, err := s.UserRepo.FindAvailableWorkers(serviceType, budget*budgetHeadroom)
	if err != nil {
		return nil, fmt.Errorf("failed to find available workers: %w", err)
	}

	// The store pre-filters, but eligibility is re-checked here so the
	// ranking never depends on store-side behavior.
	ranked := workers[:0:0]
	for _, w := range workers {
		if w.Available && models.SkillMatches(w.Skills, serviceType) {
			ranked = append(ranked, w)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		if ranked[i].CompletedJobs != ranked[j].CompletedJobs {
			return ranked[i].CompletedJobs > ranked[j].CompletedJobs
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked, nil
}

// TopCandidates returns the best-ranked eligible workers for browsing.
func (s *DefaultMatchingService) TopCandidates(ctx context.Context, serviceType string, budget float64, limit int) ([]models.WorkerCandidate, error) {
	ranked, err := s.rankedCandidates(serviceType, budget)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
