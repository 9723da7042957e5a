package ports

import (
	"context"

	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
)

// EventPublisher delivers ledger lifecycle events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.EntryEvent) error
	Close() error
}
