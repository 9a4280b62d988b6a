package commits

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/Kamar-Folarin/commit-history-app/internal/auth"
	"github.com/Kamar-Folarin/commit-history-app/internal/models"
)

const queryPath = "/commit-history"

// QueryKey identifies a query by its serialized form values, scoped to the credential
func QueryKey(cred auth.Credential, q models.CommitQuery) string {
	values, _ := json.Marshal(q)
	return queryPath + "|" + string(values) + "|" + cred.Fingerprint()
}

type entry struct {
	key       string
	history   models.CommitHistory
	createdAt time.Time
	done      chan struct{}
}

// QueryCache holds query results keyed by QueryKey and tracks queries in flight
type QueryCache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewQueryCache creates a new query cache
func NewQueryCache(ttl time.Duration, maxEntries int) *QueryCache {
	return &QueryCache{
		entries:    make(map[string]*entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// acquire returns the entry to wait on for key. start is true when the caller
// owns a new loading entry and must fetch and settle it.
func (c *QueryCache) acquire(key string, q models.CommitQuery, refetch bool) (e *entry, start bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		if existing.history.State == models.QueryLoading {
			return existing, false
		}
		// A failure nobody has seen yet is shown once before a reload fetches again.
		if existing.history.State == models.QueryError && !refetch {
			return existing, false
		}
		if !refetch && c.fresh(existing) {
			return existing, false
		}
	}

	e = &entry{
		key: key,
		history: models.CommitHistory{
			Query: q,
			State: models.QueryLoading,
		},
		createdAt: c.now(),
		done:      make(chan struct{}),
	}
	c.entries[key] = e
	c.evict()

	return e, true
}

// settle records the outcome of a fetch and releases its waiters.
// Failed entries stay until release so a caller that gave up waiting can still read them.
func (c *QueryCache) settle(e *entry, commits []models.Commit, errMessage string, failed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e.history.FetchedAt = c.now()
	switch {
	case failed:
		e.history.State = models.QueryError
		e.history.Error = errMessage
	case len(commits) == 0:
		e.history.State = models.QueryEmpty
		e.history.Commits = []models.Commit{}
	default:
		e.history.State = models.QuerySuccess
		e.history.Commits = commits
	}
	close(e.done)
}

// snapshot returns a copy of the entry's current state
func (c *QueryCache) snapshot(e *entry) *models.CommitHistory {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := e.history
	if snapshot.Commits != nil {
		snapshot.Commits = append([]models.Commit(nil), snapshot.Commits...)
	}
	return &snapshot
}

// release drops a failed entry once its error has been returned to a caller
func (c *QueryCache) release(e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e.history.State == models.QueryError && c.entries[e.key] == e {
		delete(c.entries, e.key)
	}
}

// size returns the number of cached entries
func (c *QueryCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *QueryCache) fresh(e *entry) bool {
	if c.ttl <= 0 {
		return true
	}
	return c.now().Sub(e.history.FetchedAt) < c.ttl
}

// evict drops the oldest settled entries above maxEntries; loading entries are kept
func (c *QueryCache) evict() {
	if c.maxEntries <= 0 {
		return
	}
	for len(c.entries) > c.maxEntries {
		var oldest *entry
		for _, e := range c.entries {
			if !e.history.State.Settled() {
				continue
			}
			if oldest == nil || e.createdAt.Before(oldest.createdAt) {
				oldest = e
			}
		}
		if oldest == nil {
			return
		}
		delete(c.entries, oldest.key)
	}
}
