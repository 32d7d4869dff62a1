package services

import (
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a username/password pair. The HTTP surface
// consults one on every authenticated request, so implementations must be
// safe for concurrent use.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier verifies credentials against a fixed in-memory table of
// cleartext passwords. It is read-only after construction.
type StaticVerifier struct {
	users map[string]string
}

// NewStaticVerifier creates a StaticVerifier from a username -> password map.
func NewStaticVerifier(users map[string]string) *StaticVerifier {
	table := make(map[string]string, len(users))
	for username, password := range users {
		table[username] = password
	}
	return &StaticVerifier{users: table}
}

// Verify reports whether the pair exactly matches an entry in the table.
func (v *StaticVerifier) Verify(username, password string) bool {
	want, ok := v.users[username]
	return ok && want == password
}

// BcryptVerifier verifies credentials against a table of bcrypt hashes.
// Deployments that cannot keep cleartext passwords swap this in behind the
// same CredentialVerifier interface.
type BcryptVerifier struct {
	hashes map[string]string
}

// NewBcryptVerifier creates a BcryptVerifier from a username -> bcrypt-hash map.
func NewBcryptVerifier(hashes map[string]string) *BcryptVerifier {
	table := make(map[string]string, len(hashes))
	for username, hash := range hashes {
		table[username] = hash
	}
	return &BcryptVerifier{hashes: table}
}

// Verify reports whether the password matches the stored hash for username.
func (v *BcryptVerifier) Verify(username, password string) bool {
	hash, ok := v.hashes[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
