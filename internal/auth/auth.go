// Package auth implements the admin login check. The site has a single
// shared admin credential; the password lives in the document store so
// the hosted deployment can rotate it without a redeploy, with an env
// override for local development.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/gvsu-realestate/clubsite/internal/store"
)

// Collection and document id of the stored admin credential.
const (
	Collection = "userProfile"
	AccountID  = "adminAccount"
)

// ErrNoCredential is returned when no password is configured anywhere.
var ErrNoCredential = errors.New("no admin credential configured")

type adminAccount struct {
	Password string `json:"password"`
}

// Service verifies admin login attempts.
type Service struct {
	docs     store.DocumentStore
	override string
}

// NewService creates an auth service. A non-empty override takes
// precedence over the stored credential.
func NewService(docs store.DocumentStore, override string) *Service {
	return &Service{docs: docs, override: override}
}

// Verify reports whether the supplied password matches the admin
// credential. The comparison is constant-time; the boolean result is
// all a caller ever learns.
func (s *Service) Verify(ctx context.Context, password string) (bool, error) {
	expected := s.override
	if expected == "" {
		var acct adminAccount
		err := s.docs.Get(ctx, Collection, AccountID, &acct)
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrNoCredential
		}
		if err != nil {
			return false, fmt.Errorf("loading admin credential: %w", err)
		}
		expected = acct.Password
	}
	if expected == "" {
		return false, ErrNoCredential
	}

	match := subtle.ConstantTimeCompare([]byte(password), []byte(expected)) == 1
	return match, nil
}
