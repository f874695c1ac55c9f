package outbox

import (
	"context"
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/pkg/constvars"
	"lifelink-service/internal/pkg/dto/requests"
	"lifelink-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type eventPublisher struct {
	Channel          *amqp091.Channel
	InventoryQueue   string
	CertificateQueue string
	Log              *zap.Logger
}

// NewEventPublisher declares both queues up front so a missing consumer
// does not drop post-commit events.
func NewEventPublisher(rabbitMQConnection *amqp091.Connection, inventoryQueue, certificateQueue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	for _, queue := range []string{inventoryQueue, certificateQueue} {
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			return nil, exceptions.ErrRabbitMQPublishMessage(err, queue)
		}
	}

	return &eventPublisher{
		Channel:          channel,
		InventoryQueue:   inventoryQueue,
		CertificateQueue: certificateQueue,
		Log:              logger,
	}, nil
}

func (p *eventPublisher) PublishInventoryIncrement(ctx context.Context, event *requests.InventoryIncrementEvent) error {
	return p.publish(ctx, p.InventoryQueue, event)
}

func (p *eventPublisher) PublishCertificateEmail(ctx context.Context, event *requests.CertificateEmailEvent) error {
	return p.publish(ctx, p.CertificateQueue, event)
}

func (p *eventPublisher) publish(ctx context.Context, queue string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = p.Channel.PublishWithContext(ctx, "", queue, false, false, message)
	if err != nil {
		p.Log.Error("failed to publish outbox event",
			zap.String(constvars.LoggingQueueNameKey, queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	p.Log.Info("outbox event published",
		zap.String(constvars.LoggingQueueNameKey, queue),
	)
	return nil
}
