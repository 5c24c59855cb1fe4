package mockapi_test

import (
	"context"
	"errors"
	"testing"

	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/mockapi"
	mockapierrors "go-hris-admin/internal/mockapi/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryStore_IDsAreMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	store := mockapi.NewMemoryStore()

	a, err := store.Create(ctx, domain.KindDepartments, mockapi.Document{"id": 99, "name": "Engineering"})
	require.NoError(t, err)
	b, err := store.Create(ctx, domain.KindDepartments, mockapi.Document{"name": "HR"})
	require.NoError(t, err)

	assert.EqualValues(t, 1, a["id"])
	assert.EqualValues(t, 2, b["id"])

	require.NoError(t, store.Delete(ctx, domain.KindDepartments, 2))
	c, err := store.Create(ctx, domain.KindDepartments, mockapi.Document{"name": "Finance"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, c["id"])
}

func TestMemoryStore_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := mockapi.NewMemoryStore()
	_, err := store.Create(ctx, domain.KindCandidates, mockapi.Document{"name": "Sara K", "status": "Applied", "phone": "+251911111111"})
	require.NoError(t, err)

	saved, err := store.Update(ctx, domain.KindCandidates, 1, mockapi.Document{"id": 7, "name": "Sara K", "status": "Interview"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, saved["id"])

	got, err := store.Get(ctx, domain.KindCandidates, 1)
	require.NoError(t, err)
	assert.Equal(t, "Interview", got["status"])
	_, hasPhone := got["phone"]
	assert.False(t, hasPhone, "update replaces the whole record")

	_, err = store.Update(ctx, domain.KindCandidates, 5, mockapi.Document{"name": "Ghost"})
	assert.True(t, errors.Is(err, mockapierrors.ErrRecordNotFound))

	assert.NoError(t, store.Delete(ctx, domain.KindCandidates, 5))
	assert.NoError(t, store.Delete(ctx, domain.KindCandidates, 1))
	docs, err := store.List(ctx, domain.KindCandidates)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := mockapi.NewMemoryStore()
	created, err := store.Create(ctx, domain.KindCompanies, mockapi.Document{"name": "XOKA Tech"})
	require.NoError(t, err)

	created["name"] = "mutated"

	got, err := store.Get(ctx, domain.KindCompanies, 1)
	require.NoError(t, err)
	assert.Equal(t, "XOKA Tech", got["name"])
}

func TestMemoryStore_UnknownResource(t *testing.T) {
	_, err := mockapi.NewMemoryStore().List(context.Background(), domain.Kind("upcoming"))

	assert.True(t, errors.Is(err, mockapierrors.ErrUnknownResource))
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := mockapi.NewMemoryStore()

	require.NoError(t, mockapi.Seed(ctx, store, zap.NewNop()))
	require.NoError(t, mockapi.Seed(ctx, store, zap.NewNop()))

	depts, _ := store.List(ctx, domain.KindDepartments)
	assert.Len(t, depts, 3)
	comps, _ := store.List(ctx, domain.KindCompanies)
	assert.Len(t, comps, 3)

	cands, _ := store.List(ctx, domain.KindCandidates)
	for _, c := range cands {
		assert.Contains(t, []any{"Applied", "Interview"}, c["status"])
	}
}
