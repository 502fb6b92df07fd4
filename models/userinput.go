package models

// RegisterInput holds a new account's details.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=customer worker"`

	// Worker profile, ignored for customers.
	Skills     []string `json:"skills"`
	HourlyRate float64  `json:"hourlyRate"`
}

// SigninInput holds login credentials.
type SigninInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfilePatch updates mutable account fields. Nil fields are left
// untouched.
type ProfilePatch struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`

	// Worker profile.
	Skills     *[]string `json:"skills"`
	HourlyRate *float64  `json:"hourlyRate"`
}
