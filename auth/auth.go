// Package auth verifies login credentials and produces principals. The
// Verifier interface keeps the rest of the app independent of how
// accounts are checked, so a real identity provider can be swapped in
// later.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Afzal-gif888/campus-cafe-mate/models"
)

// ErrInvalidCredentials is returned for any failed verification. The
// reason is deliberately not more specific.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is a login attempt. Admins log in with username/password,
// students with roll number/password.
type Credentials struct {
	Role       string `json:"role" binding:"required,oneof=student admin"`
	Username   string `json:"username"`
	RollNumber string `json:"rollNumber"`
	Password   string `json:"password" binding:"required"`
}

// Verifier checks credentials and returns the authenticated user.
type Verifier interface {
	Verify(creds Credentials) (models.User, error)
}

// StaticVerifier holds the single admin account and accepts any student
// who presents a roll number and a password, matching the cafe's
// self-service kiosk setup.
type StaticVerifier struct {
	adminUsername     string
	adminPasswordHash []byte
}

func NewStaticVerifier(adminUsername, adminPassword string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticVerifier{
		adminUsername:     adminUsername,
		adminPasswordHash: hash,
	}, nil
}

func (v *StaticVerifier) Verify(creds Credentials) (models.User, error) {
	switch creds.Role {
	case models.RoleAdmin:
		if creds.Username != v.adminUsername {
			return models.User{}, ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword(v.adminPasswordHash, []byte(creds.Password)) != nil {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{ID: "admin", Name: "Admin", Role: models.RoleAdmin}, nil
	case models.RoleStudent:
		if creds.RollNumber == "" || creds.Password == "" {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{
			ID:         creds.RollNumber,
			Name:       "Student " + creds.RollNumber,
			Role:       models.RoleStudent,
			RollNumber: creds.RollNumber,
		}, nil
	}
	return models.User{}, ErrInvalidCredentials
}
