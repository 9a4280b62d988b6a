package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// QueryState is a step of the commit-history query lifecycle
type QueryState string

const (
	QueryIdle    QueryState = "idle"
	QueryLoading QueryState = "loading"
	QuerySuccess QueryState = "success"
	QueryEmpty   QueryState = "empty"
	QueryError   QueryState = "error"
)

// Settled reports whether the query has finished, successfully or not
func (s QueryState) Settled() bool {
	return s == QuerySuccess || s == QueryEmpty || s == QueryError
}

// CommitHistory is a snapshot of a commit-history query
type CommitHistory struct {
	Query     CommitQuery `json:"query"`
	State     QueryState  `json:"state"`
	Commits   []Commit    `json:"commits"`
	Error     string      `json:"error,omitempty"`
	FetchedAt time.Time   `json:"fetched_at,omitempty"`
}

// String returns the JSON string representation of the snapshot
func (h *CommitHistory) String() string {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal commit history: %v"}`, err)
	}
	return string(data)
}
