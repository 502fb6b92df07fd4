package user

import (
	"fmt"
	"strings"
	"time"

	userRepo "taskturf/database/repository/user"
	"taskturf/models"
	"taskturf/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the session lifetime for issued JWTs.
const tokenTTL = 72 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}

// Register creates an account and opens a session.
func (s *DefaultUserService) Register(in models.RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if in.Role == models.RoleWorker {
		u.Skills = in.Skills
		u.HourlyRate = in.HourlyRate
		u.Available = true
	}

	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return s.openSession(u)
}

// Authenticate verifies credentials and opens a session.
func (s *DefaultUserService) Authenticate(in models.SigninInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.openSession(u)
}

// openSession issues a JWT and caches its hash for revocation checks.
func (s *DefaultUserService) openSession(u *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if s.AuthCache != nil {
		if err := utils.SaveAuthToken(s.AuthCache, u.ID, utils.HashToken(token), tokenTTL); err != nil {
			return nil, err
		}
	}
	return &AuthResult{User: u, Token: token}, nil
}

// GetByID fetches one account.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// UpdateProfile patches mutable account fields.
func (s *DefaultUserService) UpdateProfile(id string, patch models.ProfilePatch) (*models.User, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if u.IsWorker() {
		if patch.Skills != nil {
			fields["skills"] = *patch.Skills
		}
		if patch.HourlyRate != nil {
			fields["hourly_rate"] = *patch.HourlyRate
		}
	}
	if len(fields) == 0 {
		return u, nil
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// ChangePassword verifies the old password before setting the new one.
func (s *DefaultUserService) ChangePassword(id, oldPassword, newPassword string) error {
	u, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.Repo.UpdateFields(id, map[string]interface{}{"password_hash": string(hash)})
}

// SetAvailability toggles whether the worker receives new bookings. This
// is the only way availability changes; the matcher never mutates it.
func (s *DefaultUserService) SetAvailability(workerID string, available bool) error {
	u, err := s.GetByID(workerID)
	if err != nil {
		return err
	}
	if !u.IsWorker() {
		return ErrNotWorker
	}
	return s.Repo.SetAvailability(workerID, available)
}

// SignOut revokes the cached session token.
func (s *DefaultUserService) SignOut(id string) error {
	if s.AuthCache == nil {
		return nil
	}
	return utils.RevokeAuthToken(s.AuthCache, id)
}
