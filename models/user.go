package models

import (
	"strings"
	"time"
)

// User roles.
const (
	RoleCustomer = "customer"
	RoleWorker   = "worker"
)

// User represents a platform account. Customers and workers share one
// collection; worker-only fields are zero-valued on customer documents.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`

	// Worker profile.
	Skills        []string `bson:"skills,omitempty" json:"skills,omitempty"`
	Available     bool     `bson:"available" json:"available"`
	HourlyRate    float64  `bson:"hourly_rate,omitempty" json:"hourly_rate,omitempty"`
	Rating        float64  `bson:"rating,omitempty" json:"rating,omitempty"`
	RatingCount   int      `bson:"rating_count,omitempty" json:"rating_count,omitempty"`
	CompletedJobs int      `bson:"completed_jobs" json:"completed_jobs"`
	TotalEarnings float64  `bson:"total_earnings" json:"total_earnings"`
}

// IsWorker reports whether the account can take bookings.
func (u *User) IsWorker() bool {
	return u.Role == RoleWorker
}

// SkillMatches reports whether any skill tag matches the requested
// service type, case-insensitively, in either substring direction.
func SkillMatches(skills []string, serviceType string) bool {
	want := strings.ToLower(strings.TrimSpace(serviceType))
	if want == "" {
		return false
	}
	for _, s := range skills {
		have := strings.ToLower(strings.TrimSpace(s))
		if have == "" {
			continue
		}
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return true
		}
	}
	return false
}

// WorkerCandidate is the matcher's read-only projection of a worker record.
type WorkerCandidate struct {
	ID            string   `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Skills        []string `bson:"skills" json:"skills"`
	Available     bool     `bson:"available" json:"available"`
	HourlyRate    float64  `bson:"hourly_rate" json:"hourly_rate"`
	Rating        float64  `bson:"rating" json:"rating"`
	CompletedJobs int      `bson:"completed_jobs" json:"completed_jobs"`
}
