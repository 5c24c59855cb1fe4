package producer

import (
	"context"
	"encoding/json"
	"strconv"

	"go-hris-admin/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter is the part of *kafkago.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() EventPublisher { return noopPublisher{} }

func (noopPublisher) PublishEmployeeCreated(context.Context, events.EmployeeCreatedEvent) error {
	return nil
}

// Publisher writes lifecycle events to Kafka. Messages that fail to write
// are parked in a pending queue that RunRetryWorker drains.
type Publisher struct {
	writer  MessageWriter
	pending *pendingQueue
	logger  *zap.Logger
}

func NewPublisher(writer MessageWriter, logger ...*zap.Logger) *Publisher {
	l := zap.L().Named("kafka.producer.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.producer.publisher")
	}
	return &Publisher{writer: writer, pending: newPendingQueue(defaultPendingLimit), logger: l}
}

func (p *Publisher) PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error {
	if event.EventType == "" {
		event.EventType = events.EventEmployeeCreated
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Topic: events.EmployeeCreatedTopic,
		Key:   []byte(strconv.FormatInt(event.EmployeeID, 10)),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "source", Value: []byte(event.Source)},
		},
	}
	if event.RequestID != "" {
		msg.Headers = append(msg.Headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		dropped := p.pending.push(msg)
		p.logger.Warn("publish employee_created failed, queued for retry",
			zap.Int64("employee_id", event.EmployeeID),
			zap.Int("pending", p.pending.len()),
			zap.Bool("dropped_oldest", dropped),
			zap.Error(err),
		)
		return err
	}

	p.logger.Debug("employee_created published", zap.Int64("employee_id", event.EmployeeID))
	return nil
}

// Pending reports how many messages wait for a retry.
func (p *Publisher) Pending() int {
	return p.pending.len()
}
