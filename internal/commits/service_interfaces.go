package commits

import (
	"context"

	"github.com/Kamar-Folarin/commit-history-app/internal/auth"
	"github.com/Kamar-Folarin/commit-history-app/internal/models"
)

// HistoryService defines the commit-history query flow
type HistoryService interface {
	// Query returns a snapshot of the query for q. A cached result is reused
	// unless refetch is set; a query already in flight is joined, never repeated.
	Query(ctx context.Context, cred auth.Credential, q models.CommitQuery, refetch bool) *models.CommitHistory
}
