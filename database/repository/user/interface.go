package userRepo

import "taskturf/models"

// UserRepository is the identity store. Customers and workers share one
// collection, distinguished by role.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateFields(id string, fields map[string]interface{}) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)

	// Worker-facing queries used by the matcher and the booking ledger.
	GetWorker(id string) (*models.WorkerCandidate, error)
	FindAvailableWorkers(serviceType string, maxRate float64) ([]models.WorkerCandidate, error)
	IncrementWorkerStats(id string, completedDelta int, earningsDelta float64) error
	SetAvailability(id string, available bool) error
}
