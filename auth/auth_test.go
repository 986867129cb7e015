package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Afzal-gif888/campus-cafe-mate/models"
)

func TestStaticVerifierAdmin(t *testing.T) {
	verifier, err := NewStaticVerifier("admin", "CBIT23")
	assert.NoError(t, err)

	user, err := verifier.Verify(Credentials{Role: "admin", Username: "admin", Password: "CBIT23"})
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "admin", user.ID)

	_, err = verifier.Verify(Credentials{Role: "admin", Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = verifier.Verify(Credentials{Role: "admin", Username: "root", Password: "CBIT23"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStaticVerifierStudent(t *testing.T) {
	verifier, err := NewStaticVerifier("admin", "CBIT23")
	assert.NoError(t, err)

	user, err := verifier.Verify(Credentials{Role: "student", RollNumber: "S123", Password: "anything"})
	assert.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "S123", user.ID)
	assert.Equal(t, "S123", user.RollNumber)
	assert.Equal(t, "Student S123", user.Name)

	_, err = verifier.Verify(Credentials{Role: "student", Password: "anything"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = verifier.Verify(Credentials{Role: "student", RollNumber: "S123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStaticVerifierUnknownRole(t *testing.T) {
	verifier, err := NewStaticVerifier("admin", "CBIT23")
	assert.NoError(t, err)

	_, err = verifier.Verify(Credentials{Role: "barista", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
