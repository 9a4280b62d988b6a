package signup

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/commit-history-app/internal/apiclient"
	"github.com/Kamar-Folarin/commit-history-app/internal/auth"
	"github.com/Kamar-Folarin/commit-history-app/internal/errors"
	"github.com/Kamar-Folarin/commit-history-app/internal/models"
)

const (
	usersPath = "/users"

	// WrongCredentialsNotice is shown when the API rejects the email/password pair
	WrongCredentialsNotice = "User or password are wrong"

	wrongCredentialsCode    = "INVALID_CREDENTIALS"
	wrongCredentialsMessage = "user or password wrong"
)

// AccountService defines the signup flow
type AccountService interface {
	Submit(ctx context.Context, form models.SignupForm) (*Result, error)
}

// Result is the outcome of an accepted signup. A nil Result with a nil error
// means the API accepted the request without returning a token.
type Result struct {
	CookieValue string
	Credential  auth.Credential
}

// Service implements the AccountService interface
type Service struct {
	clients apiclient.Provider
	logger  *logrus.Logger
	mu      sync.Mutex
	pending map[string]struct{}
}

// NewService creates a new signup service
func NewService(clients apiclient.Provider, logger *logrus.Logger) *Service {
	return &Service{
		clients: clients,
		logger:  logger,
		pending: make(map[string]struct{}),
	}
}

// Submit validates the form and registers the account. Errors are one of:
// validation (wrapping validation.Errors), pending, unauthorized (wrong
// credentials) or upstream.
func (s *Service) Submit(ctx context.Context, form models.SignupForm) (*Result, error) {
	if err := form.Validate(); err != nil {
		return nil, errors.NewValidationError("signup form is invalid", err)
	}

	key := strings.ToLower(strings.TrimSpace(form.Email))
	if !s.begin(key) {
		return nil, errors.NewPendingError("a signup for this email is already in progress")
	}
	defer s.end(key)

	logger := s.logger.WithField("email", form.Email)

	resp, err := s.clients.ForCredential(auth.Credential{}).Post(ctx, usersPath, form.Request())
	if err != nil {
		if isWrongCredentials(err) {
			logger.Info("Signup rejected: wrong credentials")
			return nil, errors.NewUnauthorizedError(WrongCredentialsNotice, err)
		}
		logger.WithError(err).Error("Signup request failed")
		return nil, errors.NewUpstreamError("signup request failed", err)
	}

	value, err := auth.EncodeCookieValue(resp.Data)
	if err != nil {
		if stderrors.Is(err, auth.ErrEmptyToken) {
			logger.Warn("Signup succeeded without a token body")
			return nil, nil
		}
		logger.WithError(err).Error("Failed to serialize signup response")
		return nil, errors.NewInternalError("failed to serialize signup response", err)
	}

	logger.Info("Signup succeeded")
	return &Result{
		CookieValue: value,
		Credential:  auth.ParseCookieValue(value),
	}, nil
}

func (s *Service) begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.pending[key]; busy {
		return false
	}
	s.pending[key] = struct{}{}
	return true
}

func (s *Service) end(key string) {
	s.mu.Lock()
	delete(s.pending, key)
	s.mu.Unlock()
}

// isWrongCredentials prefers the structured error code and falls back to the
// legacy exact message the API sends.
func isWrongCredentials(err error) bool {
	respErr, ok := apiclient.AsResponseError(err)
	if !ok || respErr.StatusCode == 0 {
		return false
	}
	return respErr.Code == wrongCredentialsCode || respErr.Message == wrongCredentialsMessage
}
