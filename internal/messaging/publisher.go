package messaging

import (
	"context"

	"github.com/marcosboni7/backsleeping/internal/domain"
)

// Publisher defines the interface for mirroring chat traffic to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishChatMessage mirrors a delivered chat message to the broker
	PublishChatMessage(ctx context.Context, event *domain.ChatEvent) error
	// Close closes the connection
	Close()
}

// noopPublisher drops every event. Used when no broker is configured.
type noopPublisher struct{}

// NewNoopPublisher creates a publisher that discards all events
func NewNoopPublisher() Publisher {
	return &noopPublisher{}
}

func (noopPublisher) PublishChatMessage(ctx context.Context, event *domain.ChatEvent) error {
	return nil
}

func (noopPublisher) Close() {}
