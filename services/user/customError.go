package user

import "errors"

var (
	// ErrEmailTaken means an account already exists for the email.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound means the account id is unknown.
	ErrNotFound = errors.New("user not found")

	// ErrNotWorker means a worker-only operation was attempted on a
	// customer account.
	ErrNotWorker = errors.New("account is not a worker")
)
