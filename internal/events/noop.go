// Package events holds EventPublisher implementations that do not need a broker.
package events

import (
	"context"

	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	"github.com/SscSPs/customer_ledger_app/internal/core/ports"
)

// NoopPublisher discards every event. It is used when no brokers are configured.
type NoopPublisher struct{}

var _ ports.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, domain.EntryEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
