package services_test

import (
	"testing"

	"erp/internal/services"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticVerifier(t *testing.T) {
	users := map[string]string{
		"admin":   "admin123",
		"user":    "user123",
		"manager": "manager123",
	}
	verifier := services.NewStaticVerifier(users)

	// Every pair in the table authenticates.
	for username, password := range users {
		assert.True(t, verifier.Verify(username, password), "expected %s to authenticate", username)
	}

	// Anything else does not.
	assert.False(t, verifier.Verify("admin", "wrong"))
	assert.False(t, verifier.Verify("admin", "user123"))
	assert.False(t, verifier.Verify("nobody", "admin123"))
	assert.False(t, verifier.Verify("admin", ""))
	assert.False(t, verifier.Verify("", ""))
}

func TestStaticVerifier_CopiesTable(t *testing.T) {
	users := map[string]string{"admin": "admin123"}
	verifier := services.NewStaticVerifier(users)

	// Mutating the source map after construction must not affect the verifier.
	users["admin"] = "changed"
	users["intruder"] = "pw"

	assert.True(t, verifier.Verify("admin", "admin123"))
	assert.False(t, verifier.Verify("intruder", "pw"))
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	verifier := services.NewBcryptVerifier(map[string]string{"admin": string(hash)})

	assert.True(t, verifier.Verify("admin", "s3cret"))
	assert.False(t, verifier.Verify("admin", "wrong"))
	assert.False(t, verifier.Verify("admin", ""))
	assert.False(t, verifier.Verify("nobody", "s3cret"))
}
