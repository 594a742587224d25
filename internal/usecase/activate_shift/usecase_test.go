package activate_shift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	shiftRepo "github.com/agendafacil/AF-SchedulingService/internal/infra/storage/shift"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

type fakeShiftRepo struct {
	shifts        map[int64]*domain.Shift
	statusUpdates []domain.ShiftStatus
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id int64) (*domain.Shift, error) {
	shift, ok := f.shifts[id]
	if !ok {
		return nil, shiftRepo.ErrShiftNotFound
	}
	copied := *shift
	return &copied, nil
}

func (f *fakeShiftRepo) ListByEstablishment(_ context.Context, establishmentID int64) ([]*domain.Shift, error) {
	result := make([]*domain.Shift, 0)
	for _, s := range f.shifts {
		if s.EstablishmentID == establishmentID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeShiftRepo) UpdateStatus(_ context.Context, id int64, status domain.ShiftStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	f.shifts[id].Status = status
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testShift(id int64, scope domain.Scope, weekdays domain.Weekdays, status domain.ShiftStatus) *domain.Shift {
	return &domain.Shift{
		ID:              id,
		EstablishmentID: 10,
		Scope:           scope,
		Name:            "Утро",
		Weekdays:        weekdays,
		StartTime:       types.TimeString("08:00"),
		EndTime:         types.TimeString("12:00"),
		Status:          status,
	}
}

func TestExecute_ActivatesWithoutConflict(t *testing.T) {
	repo := &fakeShiftRepo{shifts: map[int64]*domain.Shift{
		1: testShift(1, domain.EstablishmentScope(), domain.Weekdays{1, 2}, domain.ShiftStatusInactive),
		2: testShift(2, domain.EstablishmentScope(), domain.Weekdays{3, 4}, domain.ShiftStatusActive),
	}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ShiftID: 1})

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	assert.Equal(t, string(domain.ShiftStatusActive), resp.Status)
	assert.Equal(t, []domain.ShiftStatus{domain.ShiftStatusActive}, repo.statusUpdates)
}

func TestExecute_RefusalDoesNotPersist(t *testing.T) {
	repo := &fakeShiftRepo{shifts: map[int64]*domain.Shift{
		1: testShift(1, domain.EstablishmentScope(), domain.Weekdays{1, 2, 3, 4, 5}, domain.ShiftStatusInactive),
		2: testShift(2, domain.EstablishmentScope(), domain.Weekdays{5, 6}, domain.ShiftStatusActive),
	}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ShiftID: 1})

	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, []int{5}, resp.ConflictingWeekdays)
	assert.Equal(t, []string{"Friday"}, resp.ConflictingWeekdayNames)
	// Статус смены не изменился, запись не выполнялась
	assert.Equal(t, string(domain.ShiftStatusInactive), resp.Status)
	assert.Empty(t, repo.statusUpdates)
}

func TestExecute_DifferentScopeDoesNotConflict(t *testing.T) {
	repo := &fakeShiftRepo{shifts: map[int64]*domain.Shift{
		1: testShift(1, domain.ProfessionalScope(7), domain.Weekdays{1, 2, 3}, domain.ShiftStatusInactive),
		2: testShift(2, domain.EstablishmentScope(), domain.Weekdays{1, 2, 3}, domain.ShiftStatusActive),
	}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ShiftID: 1})

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
}

func TestExecute_ReactivatingActiveShiftAllowed(t *testing.T) {
	repo := &fakeShiftRepo{shifts: map[int64]*domain.Shift{
		1: testShift(1, domain.EstablishmentScope(), domain.Weekdays{1, 2}, domain.ShiftStatusActive),
	}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ShiftID: 1})

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
}

func TestExecute_ShiftNotFound(t *testing.T) {
	repo := &fakeShiftRepo{shifts: map[int64]*domain.Shift{}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ShiftID: 42})

	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestExecute_InvalidShiftID(t *testing.T) {
	repo := &fakeShiftRepo{shifts: map[int64]*domain.Shift{}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ShiftID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
