package contracts

import (
	"context"
	"lifelink-service/internal/pkg/dto/requests"
)

// EventPublisher emits post-commit events to RabbitMQ. Callers invoke it
// only after the core transition is durably committed; failures are
// logged, never surfaced to the triggering caller.
type EventPublisher interface {
	PublishInventoryIncrement(ctx context.Context, event *requests.InventoryIncrementEvent) error
	PublishCertificateEmail(ctx context.Context, event *requests.CertificateEmailEvent) error
}
