package candidate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hris-admin/internal/candidate"
	candidateerrors "go-hris-admin/internal/candidate/errors"
	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/events"
	"go-hris-admin/internal/registry"
	"go-hris-admin/internal/registry/registrytest"
	"go-hris-admin/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClock struct{ now time.Time }

func (s stubClock) Now() time.Time { return s.now }

type recordingPublisher struct {
	events []events.EmployeeCreatedEvent
}

func (p *recordingPublisher) PublishEmployeeCreated(_ context.Context, ev events.EmployeeCreatedEvent) error {
	p.events = append(p.events, ev)
	return nil
}

type serviceDeps struct {
	backend   *registrytest.Backend
	reg       *registry.Registry
	publisher *recordingPublisher
	service   candidate.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	b := registrytest.NewBackend()
	b.Departments.Seed(domain.Department{ID: 1, Name: "Engineering"})
	b.Employees.Seed(domain.Employee{ID: 1, Name: "A", Email: "a@x.com"})
	b.Candidates.Seed(
		domain.Candidate{ID: 3, Name: "Helen M", Status: domain.StatusInterview},
		domain.Candidate{ID: 7, Name: "Abel", Email: "A@X.com", Status: domain.StatusInterview},
		domain.Candidate{ID: 9, Name: "Jane Doe", Email: "new@x.com", Status: domain.StatusApplied, DepartmentID: ptr(1)},
	)

	reg := b.Registry(t)
	pub := &recordingPublisher{}
	return &serviceDeps{
		backend:   b,
		reg:       reg,
		publisher: pub,
		service:   candidate.NewService(reg, pub, stubClock{now: today}, zap.NewNop()),
	}
}

func updateReq(c domain.Candidate, status domain.CandidateStatus) candidate.UpdateCandidateRequest {
	return candidate.UpdateCandidateRequest{Name: c.Name, Email: c.Email, DepartmentID: c.DepartmentID, Status: status}
}

func TestCandidateService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("hire dedups by email", func(t *testing.T) {
		d := setupServiceTest(t)
		c, _ := d.reg.Candidates().Find(7)

		resp, err := d.service.Update(ctx, 7, updateReq(c, domain.StatusHired))

		require.NoError(t, err)
		assert.Equal(t, candidate.OutcomeHired, resp.Outcome)
		assert.False(t, resp.EmployeeCreated)
		assert.True(t, resp.CandidateRemoved)
		require.NotNil(t, resp.Employee)
		assert.Equal(t, int64(1), resp.Employee.ID)

		assert.Len(t, d.reg.Employees().Items(), 1)
		_, stillThere := d.reg.Candidates().Find(7)
		assert.False(t, stillThere)
		assert.Empty(t, d.publisher.events)
	})

	t.Run("hire creates exactly one employee", func(t *testing.T) {
		d := setupServiceTest(t)
		c, _ := d.reg.Candidates().Find(9)

		resp, err := d.service.Update(ctx, 9, updateReq(c, domain.StatusHired))

		require.NoError(t, err)
		assert.True(t, resp.EmployeeCreated)
		assert.Contains(t, resp.Message, "Jane Doe was hired")

		employees := d.reg.Employees().Items()
		require.Len(t, employees, 2)
		hired := employees[1]
		assert.Equal(t, "Jane Doe", hired.Name)
		assert.Equal(t, "new@x.com", hired.Email)
		assert.Equal(t, "2026-03-14", hired.HireDate)
		assert.Equal(t, ptr(1), hired.DepartmentID)
		assert.Equal(t, "Engineering", resp.Employee.DepartmentName)

		_, stillThere := d.reg.Candidates().Find(9)
		assert.False(t, stillThere)
		assert.Len(t, d.backend.Candidates.Stored(), 2)

		require.Len(t, d.publisher.events, 1)
		assert.Equal(t, hired.ID, d.publisher.events[0].EmployeeID)
	})

	t.Run("reject removes only the candidate", func(t *testing.T) {
		d := setupServiceTest(t)
		c, _ := d.reg.Candidates().Find(3)

		resp, err := d.service.Update(ctx, 3, updateReq(c, domain.StatusRejected))

		require.NoError(t, err)
		assert.Equal(t, candidate.OutcomeRejected, resp.Outcome)
		assert.Len(t, d.reg.Employees().Items(), 1)
		_, stillThere := d.reg.Candidates().Find(3)
		assert.False(t, stillThere)
	})

	t.Run("interview is a plain save", func(t *testing.T) {
		d := setupServiceTest(t)
		c, _ := d.reg.Candidates().Find(9)
		req := updateReq(c, domain.StatusInterview)
		req.Name = "Jane D."

		resp, err := d.service.Update(ctx, 9, req)

		require.NoError(t, err)
		assert.Equal(t, candidate.OutcomeSaved, resp.Outcome)
		assert.Len(t, d.reg.Candidates().Items(), 3)
		assert.Len(t, d.reg.Employees().Items(), 1)
		got, _ := d.reg.Candidates().Find(9)
		assert.Equal(t, "Jane D.", got.Name)
		assert.Equal(t, domain.StatusInterview, got.Status)
	})

	t.Run("failed delete is an incomplete reconciliation", func(t *testing.T) {
		d := setupServiceTest(t)
		d.backend.Candidates.FailDelete(apperror.ErrBackendUnavailable)
		c, _ := d.reg.Candidates().Find(9)

		resp, err := d.service.Update(ctx, 9, updateReq(c, domain.StatusHired))

		require.Error(t, err)
		assert.True(t, errors.Is(err, candidateerrors.ErrIncompleteReconciliation))
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 502, httpErr.Status)
		assert.Equal(t, apperror.CodeIncompleteReconciliation, httpErr.Code)

		assert.True(t, resp.EmployeeCreated)
		assert.False(t, resp.CandidateRemoved)
		// the candidate stays so the save can be retried
		_, stillThere := d.reg.Candidates().Find(9)
		assert.True(t, stillThere)

		// retrying after recovery does not duplicate the employee
		d.backend.Candidates.FailDelete(nil)
		resp, err = d.service.Update(ctx, 9, updateReq(c, domain.StatusHired))
		require.NoError(t, err)
		assert.False(t, resp.EmployeeCreated)
		assert.Len(t, d.reg.Employees().Items(), 2)
	})

	t.Run("validation fails before any request", func(t *testing.T) {
		d := setupServiceTest(t)

		_, err := d.service.Update(ctx, 9, candidate.UpdateCandidateRequest{Name: "  ", Status: domain.StatusApplied})

		assert.Equal(t, apperror.CodeInvalidInput, apperror.ToHTTP(err).Code)
		got, _ := d.reg.Candidates().Find(9)
		assert.Equal(t, "Jane Doe", got.Name)
	})

	t.Run("hire into an unknown department is refused", func(t *testing.T) {
		d := setupServiceTest(t)
		c, _ := d.reg.Candidates().Find(9)
		req := updateReq(c, domain.StatusHired)
		req.DepartmentID = ptr(42)

		_, err := d.service.Update(ctx, 9, req)

		assert.True(t, errors.Is(err, candidateerrors.ErrUnknownDepartment))
		assert.Len(t, d.reg.Employees().Items(), 1)
		got, ok := d.reg.Candidates().Find(9)
		require.True(t, ok)
		assert.Equal(t, domain.StatusApplied, got.Status)
	})

	t.Run("unknown candidate", func(t *testing.T) {
		d := setupServiceTest(t)

		_, err := d.service.Update(ctx, 99, candidate.UpdateCandidateRequest{Name: "X", Status: domain.StatusApplied})

		assert.True(t, errors.Is(err, candidateerrors.ErrCandidateNotFound))
	})
}

func TestCandidateService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to Applied", func(t *testing.T) {
		d := setupServiceTest(t)

		resp, err := d.service.Create(ctx, candidate.CreateCandidateRequest{Name: " Sara K ", Email: "sara@x.com"})

		require.NoError(t, err)
		assert.Equal(t, "Sara K", resp.Candidate.Name)
		assert.Equal(t, domain.StatusApplied, resp.Candidate.Status)
		assert.Len(t, d.reg.Candidates().Items(), 4)
	})

	t.Run("created as hired goes straight to employees", func(t *testing.T) {
		d := setupServiceTest(t)

		resp, err := d.service.Create(ctx, candidate.CreateCandidateRequest{Name: "Biniam H", Email: "biniam@x.com", Status: domain.StatusHired})

		require.NoError(t, err)
		assert.True(t, resp.EmployeeCreated)
		assert.True(t, resp.CandidateRemoved)
		assert.Len(t, d.reg.Candidates().Items(), 3)
		assert.Len(t, d.reg.Employees().Items(), 2)
	})

	t.Run("unknown department", func(t *testing.T) {
		d := setupServiceTest(t)

		_, err := d.service.Create(ctx, candidate.CreateCandidateRequest{Name: "Sara K", DepartmentID: ptr(42)})

		assert.True(t, errors.Is(err, candidateerrors.ErrUnknownDepartment))
		assert.Len(t, d.reg.Candidates().Items(), 3)
	})

	t.Run("backend failure is returned", func(t *testing.T) {
		d := setupServiceTest(t)
		d.backend.Candidates.FailCreate(apperror.ErrBackendUnavailable)

		_, err := d.service.Create(ctx, candidate.CreateCandidateRequest{Name: "X"})

		assert.True(t, errors.Is(err, apperror.ErrBackendUnavailable))
	})
}

func TestCandidateService_DeleteAndRead(t *testing.T) {
	ctx := context.Background()
	d := setupServiceTest(t)

	row, err := d.service.GetByID(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Engineering", row.DepartmentName)

	require.NoError(t, d.service.Delete(ctx, 9))
	// deleting again is not an error
	require.NoError(t, d.service.Delete(ctx, 9))

	_, err = d.service.GetByID(ctx, 9)
	assert.True(t, errors.Is(err, candidateerrors.ErrCandidateNotFound))
	assert.Len(t, d.service.GetAll(ctx), 2)

	assert.True(t, errors.Is(d.service.Delete(ctx, 0), candidateerrors.ErrInvalidCandidateID))
}
