package mockapi

import (
	"context"
	"encoding/json"
	"errors"

	"go-hris-admin/internal/domain"
	mockapierrors "go-hris-admin/internal/mockapi/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// table is the typed storage of one collection.
type table interface {
	list(ctx context.Context, db *gorm.DB) ([]Document, error)
	get(ctx context.Context, db *gorm.DB, id int64) (Document, error)
	create(ctx context.Context, db *gorm.DB, doc Document) (Document, error)
	update(ctx context.Context, db *gorm.DB, id int64, doc Document) (Document, error)
	delete(ctx context.Context, db *gorm.DB, id int64) error
}

type gormTable[T domain.Record] struct{}

func (gormTable[T]) list(ctx context.Context, db *gorm.DB) ([]Document, error) {
	var items []T
	if err := db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, mapDBError(err)
	}
	docs := make([]Document, 0, len(items))
	for _, it := range items {
		doc, err := toDocument(it)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (t gormTable[T]) get(ctx context.Context, db *gorm.DB, id int64) (Document, error) {
	item, err := t.find(ctx, db, id)
	if err != nil {
		return nil, err
	}
	return toDocument(item)
}

func (gormTable[T]) find(ctx context.Context, db *gorm.DB, id int64) (T, error) {
	var items []T
	var zero T
	if err := db.WithContext(ctx).Where("id = ?", id).Find(&items).Error; err != nil {
		return zero, mapDBError(err)
	}
	if len(items) == 0 {
		return zero, mockapierrors.ErrRecordNotFound
	}
	return items[0], nil
}

func (gormTable[T]) create(ctx context.Context, db *gorm.DB, doc Document) (Document, error) {
	in := cloneDoc(doc)
	delete(in, "id")
	item, err := fromDocument[T](in)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, mapDBError(err)
	}
	return toDocument(item)
}

func (t gormTable[T]) update(ctx context.Context, db *gorm.DB, id int64, doc Document) (Document, error) {
	if _, err := t.find(ctx, db, id); err != nil {
		return nil, err
	}

	in := cloneDoc(doc)
	in["id"] = id
	item, err := fromDocument[T](in)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&item).Select("*").Omit("id").Updates(&item).Error; err != nil {
		return nil, mapDBError(err)
	}
	return toDocument(item)
}

func (gormTable[T]) delete(ctx context.Context, db *gorm.DB, id int64) error {
	var zero T
	if err := db.WithContext(ctx).Where("id = ?", id).Delete(&zero).Error; err != nil {
		return mapDBError(err)
	}
	return nil
}

type gormStore struct {
	db     *gorm.DB
	tables map[domain.Kind]table
	logger *zap.Logger
}

// NewGormStore serves the collections from postgres tables named after each
// resource. Ids come from the table sequences.
func NewGormStore(db *gorm.DB, logger ...*zap.Logger) Store {
	l := zap.L().Named("mockapi.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mockapi.store")
	}
	return &gormStore{
		db: db,
		tables: map[domain.Kind]table{
			domain.KindDepartments: gormTable[domain.Department]{},
			domain.KindEmployees:   gormTable[domain.Employee]{},
			domain.KindCandidates:  gormTable[domain.Candidate]{},
			domain.KindCompanies:   gormTable[domain.Company]{},
			domain.KindSalaries:    gormTable[domain.Salary]{},
		},
		logger: l,
	}
}

// Migrate creates or alters the tables for every collection.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&domain.Department{},
		&domain.Employee{},
		&domain.Candidate{},
		&domain.Company{},
		&domain.Salary{},
	)
}

func (s *gormStore) table(resource domain.Kind) (table, error) {
	t, ok := s.tables[resource]
	if !ok {
		return nil, mockapierrors.ErrUnknownResource
	}
	return t, nil
}

func (s *gormStore) List(ctx context.Context, resource domain.Kind) ([]Document, error) {
	t, err := s.table(resource)
	if err != nil {
		return nil, err
	}
	return t.list(ctx, s.db)
}

func (s *gormStore) Get(ctx context.Context, resource domain.Kind, id int64) (Document, error) {
	t, err := s.table(resource)
	if err != nil {
		return nil, err
	}
	return t.get(ctx, s.db, id)
}

func (s *gormStore) Create(ctx context.Context, resource domain.Kind, doc Document) (Document, error) {
	t, err := s.table(resource)
	if err != nil {
		return nil, err
	}
	created, err := t.create(ctx, s.db, doc)
	if err != nil {
		s.logger.Warn("insert failed", zap.String("resource", string(resource)), zap.Error(err))
	}
	return created, err
}

func (s *gormStore) Update(ctx context.Context, resource domain.Kind, id int64, doc Document) (Document, error) {
	t, err := s.table(resource)
	if err != nil {
		return nil, err
	}
	return t.update(ctx, s.db, id, doc)
}

func (s *gormStore) Delete(ctx context.Context, resource domain.Kind, id int64) error {
	t, err := s.table(resource)
	if err != nil {
		return err
	}
	return t.delete(ctx, s.db, id)
}

func mapDBError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return mockapierrors.ErrDuplicateRecord.WithCause(err)
		case "23502", "23514", "22P02":
			return mockapierrors.ErrInvalidDocument.WithCause(err)
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return mockapierrors.ErrRecordNotFound.WithCause(err)
	}
	return err
}

func toDocument(item any) (Document, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func fromDocument[T any](doc Document) (T, error) {
	var item T
	raw, err := json.Marshal(doc)
	if err != nil {
		return item, mockapierrors.ErrInvalidDocument.WithCause(err)
	}
	if err := json.Unmarshal(raw, &item); err != nil {
		return item, mockapierrors.ErrInvalidDocument.WithCause(err)
	}
	return item, nil
}
