package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// CountsKey is where the redis store keeps the count baseline.
const CountsKey = "dashboard:counts"

// Counts are the headline collection sizes.
type Counts struct {
	Employees   int `json:"employees"`
	Departments int `json:"departments"`
	Companies   int `json:"companies"`
	Candidates  int `json:"candidates"`
}

// Baseline is the last observed counts and the ones before them. Previous is
// nil until the counts change for the first time.
type Baseline struct {
	Current  Counts  `json:"current"`
	Previous *Counts `json:"previous,omitempty"`
}

type SnapshotStore interface {
	// Load reports ok=false when nothing has been stored yet.
	Load(ctx context.Context) (Baseline, bool, error)
	Save(ctx context.Context, b Baseline) error
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) SnapshotStore {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Load(ctx context.Context) (Baseline, bool, error) {
	raw, err := s.rdb.Get(ctx, CountsKey).Result()
	if errors.Is(err, redis.Nil) {
		return Baseline{}, false, nil
	}
	if err != nil {
		return Baseline{}, false, fmt.Errorf("load dashboard baseline: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return Baseline{}, false, fmt.Errorf("decode dashboard baseline: %w", err)
	}
	return b, true, nil
}

func (s *redisStore) Save(ctx context.Context, b Baseline) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, CountsKey, string(raw), 0).Err(); err != nil {
		return fmt.Errorf("save dashboard baseline: %w", err)
	}
	return nil
}

type memoryStore struct {
	mu    sync.Mutex
	b     Baseline
	saved bool
}

// NewMemoryStore keeps the baseline in process memory.
func NewMemoryStore() SnapshotStore {
	return &memoryStore{}
}

func (s *memoryStore) Load(context.Context) (Baseline, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b, s.saved, nil
}

func (s *memoryStore) Save(_ context.Context, b Baseline) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b, s.saved = b, true
	return nil
}
