package matching

import (
	"context"
	"testing"

	"taskturf/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepo serves a fixed candidate pool. FindAvailableWorkers
// deliberately returns candidates in insertion order so the tests prove
// the matcher owns the ranking.
type stubUserRepo struct {
	workers []models.WorkerCandidate
}

func (s *stubUserRepo) Create(u *models.User) error                              { return nil }
func (s *stubUserRepo) Update(u *models.User) error                              { return nil }
func (s *stubUserRepo) UpdateFields(id string, f map[string]interface{}) error   { return nil }
func (s *stubUserRepo) GetByID(id string) (*models.User, error)                  { return nil, nil }
func (s *stubUserRepo) GetByEmail(email string) (*models.User, error)            { return nil, nil }
func (s *stubUserRepo) IncrementWorkerStats(id string, c int, e float64) error   { return nil }
func (s *stubUserRepo) SetAvailability(id string, available bool) error          { return nil }

func (s *stubUserRepo) GetWorker(id string) (*models.WorkerCandidate, error) {
	for _, w := range s.workers {
		if w.ID == id {
			cp := w
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) FindAvailableWorkers(serviceType string, maxRate float64) ([]models.WorkerCandidate, error) {
	var out []models.WorkerCandidate
	for _, w := range s.workers {
		if w.Available && w.HourlyRate <= maxRate && models.SkillMatches(w.Skills, serviceType) {
			out = append(out, w)
		}
	}
	return out, nil
}

func worker(id string, skills []string, rate, rating float64, completed int, available bool) models.WorkerCandidate {
	return models.WorkerCandidate{
		ID:            id,
		Name:          "Worker " + id,
		Skills:        skills,
		Available:     available,
		HourlyRate:    rate,
		Rating:        rating,
		CompletedJobs: completed,
	}
}

func TestResolvePicksHighestRated(t *testing.T) {
	repo := &stubUserRepo{workers: []models.WorkerCandidate{
		worker("w-low", []string{"cleaning"}, 300, 3.9, 40, true),
		worker("w-high", []string{"cleaning"}, 450, 4.8, 5, true),
		worker("w-mid", []string{"cleaning"}, 350, 4.2, 15, true),
	}}
	svc := &DefaultMatchingService{UserRepo: repo}

	res, err := svc.Resolve(context.Background(), models.MatchRequest{
		ServiceType: "Cleaning",
		Budget:      500,
	})
	require.NoError(t, err)
	require.True(t, res.Assigned)
	assert.Equal(t, "w-high", res.Worker.ID)
	assert.Equal(t, 450.0, res.Price)
}

func TestResolveIsDeterministic(t *testing.T) {
	repo := &stubUserRepo{workers: []models.WorkerCandidate{
		worker("w-b", []string{"cleaning"}, 300, 4.5, 10, true),
		worker("w-c", []string{"cleaning"}, 310, 4.5, 10, true),
		worker("w-a", []string{"cleaning"}, 320, 4.5, 10, true),
	}}
	svc := &DefaultMatchingService{UserRepo: repo}

	for i := 0; i < 50; i++ {
		res, err := svc.Resolve(context.Background(), models.MatchRequest{
			ServiceType: "Cleaning",
			Budget:      400,
		})
		require.NoError(t, err)
		require.True(t, res.Assigned)
		// rating and completed jobs tie, so the lowest id wins every run
		assert.Equal(t, "w-a", res.Worker.ID)
	}
}

func TestResolveTieBreakOrder(t *testing.T) {
	repo := &stubUserRepo{workers: []models.WorkerCandidate{
		worker("w-1", []string{"cleaning"}, 300, 4.5, 10, true),
		worker("w-2", []string{"cleaning"}, 300, 4.5, 25, true),
		worker("w-3", []string{"cleaning"}, 300, 4.9, 2, true),
	}}
	svc := &DefaultMatchingService{UserRepo: repo}

	ranked, err := svc.TopCandidates(context.Background(), "Cleaning", 400, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "w-3", ranked[0].ID) // highest rating first
	assert.Equal(t, "w-2", ranked[1].ID) // then more completed jobs
	assert.Equal(t, "w-1", ranked[2].ID)
}

func TestResolveBudgetHeadroom(t *testing.T) {
	repo := &stubUserRepo{workers: []models.WorkerCandidate{
		worker("w-over", []string{"cleaning"}, 650, 5.0, 50, true),
		worker("w-edge", []string{"cleaning"}, 600, 4.0, 1, true),
	}}
	svc := &DefaultMatchingService{UserRepo: repo}

	// Budget 500 searches up to 600: the 650 worker is out even with a
	// perfect rating, the 600 worker squeaks in.
	res, err := svc.Resolve(context.Background(), models.MatchRequest{
		ServiceType: "Cleaning",
		Budget:      500,
	})
	require.NoError(t, err)
	require.True(t, res.Assigned)
	assert.Equal(t, "w-edge", res.Worker.ID)
}

func TestResolveNoCandidatesIsUnassigned(t *testing.T) {
	repo := &stubUserRepo{workers: []models.WorkerCandidate{
		worker("w-1", []string{"plumbing"}, 300, 4.5, 10, true),
		worker("w-2", []string{"cleaning"}, 300, 4.5, 10, false),
	}}
	svc := &DefaultMatchingService{UserRepo: repo}

	res, err := svc.Resolve(context.Background(), models.MatchRequest{
		ServiceType: "Cleaning",
		Budget:      400,
	})
	require.NoError(t, err)
	assert.False(t, res.Assigned)
	assert.Nil(t, res.Worker)
}

func TestResolveExplicitWorker(t *testing.T) {
	repo := &stubUserRepo{workers: []models.WorkerCandidate{
		worker("w-best", []string{"cleaning"}, 300, 5.0, 90, true),
		worker("w-chosen", []string{"cleaning"}, 500, 3.8, 2, true),
		worker("w-busy", []string{"cleaning"}, 400, 4.7, 30, false),
		worker("w-other", []string{"plumbing"}, 350, 4.9, 12, true),
	}}
	svc := &DefaultMatchingService{UserRepo: repo}
	ctx := context.Background()

	// explicit selection bypasses the ranking entirely
	res, err := svc.Resolve(ctx, models.MatchRequest{
		ServiceType: "Cleaning", Budget: 500, WorkerID: "w-chosen",
	})
	require.NoError(t, err)
	require.True(t, res.Assigned)
	assert.Equal(t, "w-chosen", res.Worker.ID)
	assert.Equal(t, 500.0, res.Price)

	_, err = svc.Resolve(ctx, models.MatchRequest{
		ServiceType: "Cleaning", WorkerID: "w-busy",
	})
	assert.ErrorIs(t, err, ErrWorkerUnavailable)

	_, err = svc.Resolve(ctx, models.MatchRequest{
		ServiceType: "Cleaning", WorkerID: "w-other",
	})
	assert.ErrorIs(t, err, ErrWorkerUnavailable)

	_, err = svc.Resolve(ctx, models.MatchRequest{
		ServiceType: "Cleaning", WorkerID: "w-missing",
	})
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestTopCandidatesLimit(t *testing.T) {
	repo := &stubUserRepo{workers: []models.WorkerCandidate{
		worker("w-1", []string{"cleaning"}, 300, 4.1, 1, true),
		worker("w-2", []string{"cleaning"}, 300, 4.2, 1, true),
		worker("w-3", []string{"cleaning"}, 300, 4.3, 1, true),
	}}
	svc := &DefaultMatchingService{UserRepo: repo}

	ranked, err := svc.TopCandidates(context.Background(), "Cleaning", 400, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "w-3", ranked[0].ID)
	assert.Equal(t, "w-2", ranked[1].ID)
}

func TestSkillMatchingIsCaseInsensitiveSubstring(t *testing.T) {
	assert.True(t, models.SkillMatches([]string{"Deep Cleaning"}, "cleaning"))
	assert.True(t, models.SkillMatches([]string{"cleaning"}, "Deep Cleaning"))
	assert.True(t, models.SkillMatches([]string{"PLUMBING"}, "plumbing"))
	assert.False(t, models.SkillMatches([]string{"plumbing"}, "electrical"))
	assert.False(t, models.SkillMatches(nil, "cleaning"))
}
