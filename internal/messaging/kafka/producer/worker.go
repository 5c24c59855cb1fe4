package producer

import (
	"context"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	defaultPendingLimit = 500
	retryBatchSize      = 50
)

type pendingQueue struct {
	mu    sync.Mutex
	limit int
	items []kafkago.Message
}

func newPendingQueue(limit int) *pendingQueue {
	return &pendingQueue{limit: limit}
}

// push appends msg, dropping the oldest entry when full.
func (q *pendingQueue) push(msgs ...kafkago.Message) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, msgs...)
	if over := len(q.items) - q.limit; over > 0 {
		q.items = q.items[over:]
		return true
	}
	return false
}

func (q *pendingQueue) take(n int) []kafkago.Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n > len(q.items) {
		n = len(q.items)
	}
	batch := make([]kafkago.Message, n)
	copy(batch, q.items[:n])
	q.items = q.items[n:]
	return batch
}

func (q *pendingQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// RunRetryWorker re-sends queued messages every pollInterval until ctx is
// done.
func (p *Publisher) RunRetryWorker(ctx context.Context, pollInterval time.Duration) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := p.logger.Named("retry")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("publish retry worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("publish retry worker stopped", zap.Int("pending", p.pending.len()))
			return
		case <-ticker.C:
			if err := p.flushPending(ctx); err != nil {
				log.Error("retry pending events failed", zap.Error(err))
			}
		}
	}
}

func (p *Publisher) flushPending(ctx context.Context) error {
	batch := p.pending.take(retryBatchSize)
	if len(batch) == 0 {
		return nil
	}

	p.logger.Info("retrying pending events", zap.Int("count", len(batch)))
	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		p.pending.push(batch...)
		return err
	}
	return nil
}
