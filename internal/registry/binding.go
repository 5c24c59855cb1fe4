package registry

import (
	"context"
	"slices"

	"go-hris-admin/internal/domain"

	"go.uber.org/zap"
)

// Binding ties one snapshot collection to its remote. Writes go to the
// backend first; only a successful response is overlaid on the snapshot.
type Binding[T domain.Record] struct {
	reg    *Registry
	kind   domain.Kind
	remote Remote[T]

	get func(*Snapshot) []T
	set func(*Snapshot, []T)

	// afterDelete adjusts other collections in the same publish and
	// returns the kinds it changed.
	afterDelete func(s *Snapshot, id int64) []domain.Kind
}

func (b *Binding[T]) Kind() domain.Kind { return b.kind }

// Items returns a copy of the collection in backend order.
func (b *Binding[T]) Items() []T {
	return slices.Clone(b.get(b.reg.current.Load()))
}

func (b *Binding[T]) Find(id int64) (T, bool) {
	for _, it := range b.get(b.reg.current.Load()) {
		if it.Key() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (b *Binding[T]) Subscribe(fn func([]T)) func() {
	return b.reg.Subscribe(b.kind, func(s Snapshot) { fn(b.get(&s)) })
}

func (b *Binding[T]) Create(ctx context.Context, item T) (T, error) {
	created, err := b.remote.Create(ctx, item)
	if err != nil {
		return created, err
	}

	b.reg.publish(func(s *Snapshot) []domain.Kind {
		b.set(s, withAppended(b.get(s), created))
		return []domain.Kind{b.kind}
	})
	b.reg.logger.Debug("record added",
		zap.String("resource", string(b.kind)),
		zap.Int64("id", created.Key()),
	)
	return created, nil
}

func (b *Binding[T]) Update(ctx context.Context, item T) (T, error) {
	saved, err := b.remote.Update(ctx, item)
	if err != nil {
		return saved, err
	}

	b.reg.publish(func(s *Snapshot) []domain.Kind {
		items, ok := withReplaced(b.get(s), saved)
		if !ok {
			return nil
		}
		b.set(s, items)
		return []domain.Kind{b.kind}
	})
	return saved, nil
}

func (b *Binding[T]) Delete(ctx context.Context, id int64) error {
	if err := b.remote.Delete(ctx, id); err != nil {
		return err
	}

	b.reg.publish(func(s *Snapshot) []domain.Kind {
		var changed []domain.Kind
		if items, ok := withRemoved(b.get(s), id); ok {
			b.set(s, items)
			changed = append(changed, b.kind)
		}
		if b.afterDelete != nil {
			changed = append(changed, b.afterDelete(s, id)...)
		}
		return changed
	})
	b.reg.logger.Debug("record removed",
		zap.String("resource", string(b.kind)),
		zap.Int64("id", id),
	)
	return nil
}
