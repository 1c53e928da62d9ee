package messaging

import (
	"context"

	"github.com/feral-file/ff-nft-issuer/internal/domain"
)

// Publisher defines the interface for publishing ownership events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes an event and waits for the broker acknowledgement.
	// Publishing the same event twice is de-duplicated by the broker using the event ID.
	PublishEvent(ctx context.Context, event *domain.Event) error
	// Close closes the connection
	Close()
}
