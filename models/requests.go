package models

import "strings"

// SignupRequest is the body of POST /api/user/signup.
type SignupRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest is the body of POST /api/user/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest is the body of POST /api/user/reset-password/{token}.
type ResetPasswordRequest struct {
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// PostInput carries the editable fields of a post for create and update.
type PostInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Normalize trims the name and trims and lower-cases the email.
// Passwords are kept verbatim.
func (r *SignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = NormalizeEmail(r.Email)
}

// Normalize trims and lower-cases the email.
func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

// Normalize trims and lower-cases the email.
func (r *ForgotPasswordRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

// Normalize trims title and content.
func (p *PostInput) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
}

// NormalizeEmail returns the canonical stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
