package shifts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	shiftRepo "github.com/agendafacil/AF-SchedulingService/internal/infra/storage/shift"
	"github.com/agendafacil/AF-SchedulingService/internal/service/shifts/models"
	"github.com/agendafacil/AF-SchedulingService/pkg/ptr"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

type fakeRepo struct {
	shifts  map[int64]*domain.Shift
	updates []domain.ShiftStatus
	deleted []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return nil, shiftRepo.ErrShiftNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeRepo) ListByEstablishment(_ context.Context, _ int64) ([]*domain.Shift, error) {
	result := make([]*domain.Shift, 0, len(f.shifts))
	for _, s := range f.shifts {
		copied := *s
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.ShiftStatus) error {
	s, ok := f.shifts[id]
	if !ok {
		return shiftRepo.ErrShiftNotFound
	}
	s.Status = status
	f.updates = append(f.updates, status)
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.shifts[id]; !ok {
		return shiftRepo.ErrShiftNotFound
	}
	delete(f.shifts, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func shift(id int64, scope domain.Scope, status domain.ShiftStatus) *domain.Shift {
	return &domain.Shift{
		ID:              id,
		EstablishmentID: 10,
		Scope:           scope,
		Name:            "Утро",
		Weekdays:        domain.Weekdays{1, 2, 3},
		StartTime:       types.TimeString("08:00"),
		EndTime:         types.TimeString("12:00"),
		Status:          status,
	}
}

func TestList_FiltersByProfessionalScope(t *testing.T) {
	repo := &fakeRepo{shifts: map[int64]*domain.Shift{
		1: shift(1, domain.EstablishmentScope(), domain.ShiftStatusActive),
		2: shift(2, domain.ProfessionalScope(7), domain.ShiftStatusActive),
		3: shift(3, domain.ProfessionalScope(8), domain.ShiftStatusActive),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListShiftsRequest{
		EstablishmentID: 10,
		ProfessionalID:  ptr.Ptr(int64(7)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, int64(2), resp.Shifts[0].ID)
	require.NotNil(t, resp.Shifts[0].ProfessionalID)
	assert.Equal(t, int64(7), *resp.Shifts[0].ProfessionalID)
}

func TestList_FiltersByStatus(t *testing.T) {
	repo := &fakeRepo{shifts: map[int64]*domain.Shift{
		1: shift(1, domain.EstablishmentScope(), domain.ShiftStatusActive),
		2: shift(2, domain.EstablishmentScope(), domain.ShiftStatusInactive),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListShiftsRequest{
		EstablishmentID: 10,
		Status:          ptr.Ptr(string(domain.ShiftStatusInactive)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, int64(2), resp.Shifts[0].ID)
}

func TestList_UnknownStatusRefused(t *testing.T) {
	svc := NewService(&fakeRepo{shifts: map[int64]*domain.Shift{}}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListShiftsRequest{
		EstablishmentID: 10,
		Status:          ptr.Ptr("paused"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeactivate_ActiveShift(t *testing.T) {
	repo := &fakeRepo{shifts: map[int64]*domain.Shift{
		1: shift(1, domain.EstablishmentScope(), domain.ShiftStatusActive),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Deactivate(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, string(domain.ShiftStatusInactive), resp.Status)
	assert.Equal(t, []domain.ShiftStatus{domain.ShiftStatusInactive}, repo.updates)
}

func TestDeactivate_AlreadyInactiveIsIdempotent(t *testing.T) {
	repo := &fakeRepo{shifts: map[int64]*domain.Shift{
		1: shift(1, domain.EstablishmentScope(), domain.ShiftStatusInactive),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Deactivate(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, string(domain.ShiftStatusInactive), resp.Status)
	assert.Empty(t, repo.updates)
}

func TestDeactivate_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{shifts: map[int64]*domain.Shift{}}, nopLogger{})

	_, err := svc.Deactivate(context.Background(), 404)

	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestDelete_RemovesShift(t *testing.T) {
	repo := &fakeRepo{shifts: map[int64]*domain.Shift{
		1: shift(1, domain.EstablishmentScope(), domain.ShiftStatusActive),
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{shifts: map[int64]*domain.Shift{}}, nopLogger{})

	err := svc.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrShiftNotFound)
}
