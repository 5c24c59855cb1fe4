package producer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"go-hris-admin/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	mu   sync.Mutex
	err  error
	sent []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.sent = append(w.sent, msgs...)
	return nil
}

func TestPublisher_PublishEmployeeCreated(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisher(w, zap.NewNop())

	err := p.PublishEmployeeCreated(context.Background(), events.EmployeeCreatedEvent{
		EmployeeID: 12,
		Email:      "jane@x.com",
		Source:     events.SourceCandidateHire,
		RequestID:  "rid-1",
	})

	require.NoError(t, err)
	require.Len(t, w.sent, 1)
	msg := w.sent[0]
	assert.Equal(t, events.EmployeeCreatedTopic, msg.Topic)
	assert.Equal(t, "12", string(msg.Key))

	var got events.EmployeeCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, events.EventEmployeeCreated, got.EventType)
	assert.Equal(t, int64(12), got.EmployeeID)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "rid-1", headers["request_id"])
	assert.Equal(t, events.SourceCandidateHire, headers["source"])
}

func TestPublisher_FailedWriteIsRetried(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := NewPublisher(w, zap.NewNop())

	err := p.PublishEmployeeCreated(context.Background(), events.EmployeeCreatedEvent{EmployeeID: 3})
	assert.Error(t, err)
	assert.Equal(t, 1, p.Pending())

	// still down: the batch goes back to the queue
	assert.Error(t, p.flushPending(context.Background()))
	assert.Equal(t, 1, p.Pending())

	w.err = nil
	require.NoError(t, p.flushPending(context.Background()))
	assert.Equal(t, 0, p.Pending())
	assert.Len(t, w.sent, 1)
}

func TestPendingQueue_DropsOldest(t *testing.T) {
	q := newPendingQueue(2)

	assert.False(t, q.push(kafkago.Message{Key: []byte("1")}))
	assert.False(t, q.push(kafkago.Message{Key: []byte("2")}))
	assert.True(t, q.push(kafkago.Message{Key: []byte("3")}))

	batch := q.take(10)
	require.Len(t, batch, 2)
	assert.Equal(t, "2", string(batch[0].Key))
	assert.Equal(t, "3", string(batch[1].Key))
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NewNoopPublisher().PublishEmployeeCreated(context.Background(), events.EmployeeCreatedEvent{}))
}
