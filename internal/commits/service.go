package commits

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/commit-history-app/internal/apiclient"
	"github.com/Kamar-Folarin/commit-history-app/internal/auth"
	"github.com/Kamar-Folarin/commit-history-app/internal/config"
	"github.com/Kamar-Folarin/commit-history-app/internal/models"
)

// Service implements the HistoryService interface
type Service struct {
	clients      apiclient.Provider
	cache        *QueryCache
	renderWait   time.Duration
	fetchTimeout time.Duration
	logger       *logrus.Logger
}

// NewService creates a new commit-history service
func NewService(clients apiclient.Provider, cfg *config.QueryConfig, fetchTimeout time.Duration, logger *logrus.Logger) *Service {
	return &Service{
		clients:      clients,
		cache:        NewQueryCache(cfg.CacheTTL, cfg.CacheMaxEntries),
		renderWait:   cfg.RenderWait,
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

// Query returns the commit history for q, waiting at most the render wait for
// a fetch to finish. A fetch that outlives the wait keeps running and fills the
// cache, so the returned snapshot may be in the loading state. An error is
// returned once and then forgotten.
func (s *Service) Query(ctx context.Context, cred auth.Credential, q models.CommitQuery, refetch bool) *models.CommitHistory {
	key := QueryKey(cred, q)
	e, start := s.cache.acquire(key, q, refetch)
	if start {
		go s.fetch(e, cred, q)
	}

	timer := time.NewTimer(s.renderWait)
	defer timer.Stop()

	select {
	case <-e.done:
	case <-timer.C:
	case <-ctx.Done():
	}

	history := s.cache.snapshot(e)
	if history.State == models.QueryError {
		s.cache.release(e)
	}
	return history
}

// fetch runs detached from the page request so a slow API still populates the cache
func (s *Service) fetch(e *entry, cred auth.Credential, q models.CommitQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	logger := s.logger.WithFields(logrus.Fields{
		"username": q.Username,
		"repo":     q.Repo,
	})
	logger.Info("Fetching commit history")

	resp, err := s.clients.ForCredential(cred).Get(ctx, queryPath, q)
	var commits []models.Commit
	if err == nil {
		err = resp.Decode(&commits)
	}
	if err != nil {
		logger.WithError(err).Error("Failed to fetch commit history")
		s.cache.settle(e, nil, errorMessage(err), true)
		return
	}

	logger.WithField("commits_found", len(commits)).Info("Fetched commit history")
	s.cache.settle(e, commits, "", false)
}

func errorMessage(err error) string {
	respErr, ok := apiclient.AsResponseError(err)
	if !ok {
		return "unexpected error while loading commits"
	}
	if respErr.StatusCode == 0 {
		return "the commit history service is unreachable"
	}
	if respErr.Message != "" {
		return fmt.Sprintf("%s (status %d)", respErr.Message, respErr.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d", respErr.StatusCode)
}
