package validate

import (
	"regexp"
	"strings"

	"github.com/Deepak6204/schedular-server/internal/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,18}[0-9]$`)

	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasDigit   = regexp.MustCompile(`\d`)
	hasSpecial = regexp.MustCompile(`[@$!%*?&]`)
)

// SignupPayload is the request body for POST /api/auth/signup.
type SignupPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	Phone           string `json:"phone"`
	Organization    string `json:"organization"`
	Plan            string `json:"plan"`
}

// LoginPayload is the request body for POST /api/auth/login.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordPayload is the request body for POST /api/auth/forgot-password.
type ForgotPasswordPayload struct {
	Email string `json:"email"`
}

// ResetPasswordPayload is the request body for POST /api/auth/reset-password.
type ResetPasswordPayload struct {
	Token           string `json:"token"`
	NewPassword     string `json:"newPassword"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// UpdateProfilePayload is the request body for PUT /api/auth/profile.
type UpdateProfilePayload struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Organization *string `json:"organization"`
}

// Signup validates a registration request.
func Signup(p SignupPayload) error {
	return run(
		func(errs *Errors) {
			name := strings.TrimSpace(p.Name)
			if name == "" {
				errs.add(LocationBody, "name", "is required")
				return
			}
			if len(name) < 2 || len(name) > 50 {
				errs.add(LocationBody, "name", "must be between 2 and 50 characters")
			}
		},
		emailRule(p.Email),
		passwordRule(p.Password, "password"),
		confirmRule(p.Password, p.PasswordConfirm),
		func(errs *Errors) {
			if p.Phone != "" && !phonePattern.MatchString(strings.TrimSpace(p.Phone)) {
				errs.add(LocationBody, "phone", "invalid phone number")
			}
		},
		func(errs *Errors) {
			if len(strings.TrimSpace(p.Organization)) > 100 {
				errs.add(LocationBody, "organization", "must be at most 100 characters")
			}
		},
		func(errs *Errors) {
			if p.Plan == "" {
				errs.add(LocationBody, "plan", "is required")
				return
			}
			if p.Plan != models.PlanBasic && p.Plan != models.PlanPremium {
				errs.add(LocationBody, "plan", "must be either basic or premium")
			}
		},
	)
}

// Login validates a login request.
func Login(p LoginPayload) error {
	return run(
		emailRule(p.Email),
		func(errs *Errors) {
			if p.Password == "" {
				errs.add(LocationBody, "password", "is required")
			}
		},
	)
}

// ForgotPassword validates a reset-link request.
func ForgotPassword(p ForgotPasswordPayload) error {
	return run(emailRule(p.Email))
}

// ResetPassword validates a password reset request.
func ResetPassword(p ResetPasswordPayload) error {
	return run(
		func(errs *Errors) {
			if p.Token == "" {
				errs.add(LocationBody, "token", "is required")
			}
		},
		passwordRule(p.NewPassword, "newPassword"),
		confirmRule(p.NewPassword, p.PasswordConfirm),
	)
}

// UpdateProfile validates a profile update request.
func UpdateProfile(p UpdateProfilePayload) error {
	return run(
		func(errs *Errors) {
			if p.Name == nil {
				return
			}
			if n := len(strings.TrimSpace(*p.Name)); n < 2 || n > 50 {
				errs.add(LocationBody, "name", "must be between 2 and 50 characters")
			}
		},
		func(errs *Errors) {
			if p.Phone != nil && *p.Phone != "" && !phonePattern.MatchString(strings.TrimSpace(*p.Phone)) {
				errs.add(LocationBody, "phone", "invalid phone number")
			}
		},
		func(errs *Errors) {
			if p.Organization != nil && len(strings.TrimSpace(*p.Organization)) > 100 {
				errs.add(LocationBody, "organization", "must be at most 100 characters")
			}
		},
	)
}

// NormalizeEmail lowercases and trims an address for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emailRule(email string) Rule {
	return func(errs *Errors) {
		addr := strings.TrimSpace(email)
		if addr == "" {
			errs.add(LocationBody, "email", "is required")
			return
		}
		if !emailPattern.MatchString(addr) {
			errs.add(LocationBody, "email", "invalid email format")
		}
	}
}

func passwordRule(password, param string) Rule {
	return func(errs *Errors) {
		if password == "" {
			errs.add(LocationBody, param, "is required")
			return
		}
		if len(password) < 8 {
			errs.add(LocationBody, param, "must be at least 8 characters")
		}
		if !hasUpper.MatchString(password) {
			errs.add(LocationBody, param, "must contain at least one uppercase letter")
		}
		if !hasLower.MatchString(password) {
			errs.add(LocationBody, param, "must contain at least one lowercase letter")
		}
		if !hasDigit.MatchString(password) {
			errs.add(LocationBody, param, "must contain at least one number")
		}
		if !hasSpecial.MatchString(password) {
			errs.add(LocationBody, param, "must contain at least one special character (@$!%*?&)")
		}
	}
}

func confirmRule(password, confirm string) Rule {
	return func(errs *Errors) {
		if confirm == "" {
			errs.add(LocationBody, "passwordConfirm", "is required")
			return
		}
		if confirm != password {
			errs.add(LocationBody, "passwordConfirm", "passwords do not match")
		}
	}
}
