package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// DefaultCurrency is used for the salary created for a new employee.
const DefaultCurrency = "USD"

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// SalaryStore is the backend salaries collection.
type SalaryStore interface {
	Fetch(ctx context.Context) ([]domain.Salary, error)
	Create(ctx context.Context, item domain.Salary) (domain.Salary, error)
}

// ConsumeEmployeeLifecycle gives every newly created employee a zero salary
// effective on the day the event is handled. It returns when ctx is done.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	salaries SalaryStore,
	now func() time.Time,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")
	if now == nil {
		now = time.Now
	}

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if event.EventType != events.EventEmployeeCreated || event.EmployeeID <= 0 {
			log.Debug("ignoring lifecycle event",
				zap.String("event_type", event.EventType),
				zap.Int64("employee_id", event.EmployeeID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		created, err := EnsureDefaultSalary(ctx, salaries, event.EmployeeID, now())
		if err != nil {
			// left uncommitted so the group redelivers it after a restart
			log.Error("create default salary failed",
				zap.Int64("employee_id", event.EmployeeID),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		if created {
			log.Info("default salary created from employee_created event",
				zap.Int64("employee_id", event.EmployeeID),
				zap.String("source", event.Source),
			)
		} else {
			log.Warn("employee already has a salary, skipping", zap.Int64("employee_id", event.EmployeeID))
		}
	}
}

// EnsureDefaultSalary creates the zero salary unless employeeID already has
// one. It reports whether a salary was created.
func EnsureDefaultSalary(ctx context.Context, salaries SalaryStore, employeeID int64, today time.Time) (bool, error) {
	existing, err := salaries.Fetch(ctx)
	if err != nil {
		return false, fmt.Errorf("list salaries: %w", err)
	}
	for _, s := range existing {
		if s.EmployeeID == employeeID {
			return false, nil
		}
	}

	_, err = salaries.Create(ctx, domain.Salary{
		EmployeeID:    employeeID,
		Amount:        0,
		Currency:      DefaultCurrency,
		EffectiveDate: today.UTC().Format(domain.DateLayout),
	})
	if err != nil {
		return false, fmt.Errorf("create salary: %w", err)
	}
	return true, nil
}
