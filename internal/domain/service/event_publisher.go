package service

import (
	"context"
	"time"
)

// MatchSearchEvent records a completed match search for downstream consumers
// (analytics, matchmaker activity feeds).
type MatchSearchEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	ReferenceID    string    `json:"reference_id"`
	MatchCount     int       `json:"match_count"`
	ChangedFilters []string  `json:"changed_filters,omitempty"`
	SearchedAt     time.Time `json:"searched_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMatchSearch publishes a match-search event for async processing.
	// Failures are for the caller to log; a search result never depends on it.
	PublishMatchSearch(ctx context.Context, event *MatchSearchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
