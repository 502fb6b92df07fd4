package user

import "taskturf/models"

// AuthResult bundles the account and its issued session token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages accounts and sessions for customers and workers.
type UserService interface {
	Register(in models.RegisterInput) (*AuthResult, error)
	Authenticate(in models.SigninInput) (*AuthResult, error)
	GetByID(id string) (*models.User, error)
	UpdateProfile(id string, patch models.ProfilePatch) (*models.User, error)
	ChangePassword(id, oldPassword, newPassword string) error
	SetAvailability(workerID string, available bool) error
	SignOut(id string) error
}
