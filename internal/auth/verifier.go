package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/johnzilla/woofstagram/internal/store"
)

// CredentialVerifier checks a login secret against a user record. The session
// state machine does not care which policy is plugged in.
type CredentialVerifier interface {
	Verify(user store.User, secret string) error
}

// AcceptAnyVerifier is the demo policy: once the email matched, any non-empty
// secret passes.
type AcceptAnyVerifier struct{}

func (AcceptAnyVerifier) Verify(_ store.User, secret string) error {
	if secret == "" {
		return ErrInvalidCredentials
	}
	return nil
}

// BcryptVerifier checks the secret against the user's stored hash. Drop-in
// replacement for AcceptAnyVerifier when real credentials are required; seed
// accounts carry no hash and fail closed under this policy.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(user store.User, secret string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}
