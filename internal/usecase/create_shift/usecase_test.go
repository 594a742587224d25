package create_shift

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	"github.com/agendafacil/AF-SchedulingService/pkg/ptr"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

type fakeShiftRepo struct {
	existing []*domain.Shift
	created  []*domain.Shift
	nextID   int64
}

func (f *fakeShiftRepo) Create(_ context.Context, shift *domain.Shift) (*domain.Shift, error) {
	f.nextID++
	copied := *shift
	copied.ID = f.nextID
	f.created = append(f.created, &copied)
	return &copied, nil
}

func (f *fakeShiftRepo) ListByEstablishment(_ context.Context, establishmentID int64) ([]*domain.Shift, error) {
	result := make([]*domain.Shift, 0)
	for _, s := range f.existing {
		if s.EstablishmentID == establishmentID {
			result = append(result, s)
		}
	}
	return result, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		EstablishmentID: 10,
		Name:            "Утро",
		Weekdays:        []int{1, 2, 3},
		StartTime:       types.TimeString("08:00"),
		EndTime:         types.TimeString("12:00"),
	}
}

func TestExecute_CreatesActiveShift(t *testing.T) {
	repo := &fakeShiftRepo{}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	require.NotNil(t, resp.Shift)
	assert.Equal(t, string(domain.ShiftStatusActive), resp.Shift.Status)
	assert.Len(t, repo.created, 1)
}

func TestExecute_WeekdayConflictRefused(t *testing.T) {
	repo := &fakeShiftRepo{existing: []*domain.Shift{
		{
			ID:              1,
			EstablishmentID: 10,
			Scope:           domain.EstablishmentScope(),
			Name:            "Будни",
			Weekdays:        domain.Weekdays{1, 2, 3, 4, 5},
			StartTime:       types.TimeString("08:00"),
			EndTime:         types.TimeString("18:00"),
			Status:          domain.ShiftStatusActive,
		},
	}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.Weekdays = []int{5, 6}
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, []int{5}, resp.ConflictingWeekdays)
	assert.Nil(t, resp.Shift)
	assert.Empty(t, repo.created)
}

func TestExecute_InactiveShiftSkipsConflictCheck(t *testing.T) {
	repo := &fakeShiftRepo{existing: []*domain.Shift{
		{
			ID:              1,
			EstablishmentID: 10,
			Scope:           domain.EstablishmentScope(),
			Name:            "Будни",
			Weekdays:        domain.Weekdays{1, 2, 3},
			StartTime:       types.TimeString("08:00"),
			EndTime:         types.TimeString("18:00"),
			Status:          domain.ShiftStatusActive,
		},
	}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.Inactive = true
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	assert.Equal(t, string(domain.ShiftStatusInactive), resp.Shift.Status)
}

func TestExecute_ProfessionalScopeIsolatedFromEstablishment(t *testing.T) {
	repo := &fakeShiftRepo{existing: []*domain.Shift{
		{
			ID:              1,
			EstablishmentID: 10,
			Scope:           domain.EstablishmentScope(),
			Name:            "Будни",
			Weekdays:        domain.Weekdays{1, 2, 3},
			StartTime:       types.TimeString("08:00"),
			EndTime:         types.TimeString("18:00"),
			Status:          domain.ShiftStatusActive,
		},
	}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.ProfessionalID = ptr.Ptr(int64(7))
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	assert.Equal(t, ptr.Ptr(int64(7)), resp.Shift.ProfessionalID)
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Request)
	}{
		{"name too long", func(r *Request) { r.Name = strings.Repeat("a", domain.MaxShiftNameLength+1) }},
		{"no weekdays", func(r *Request) { r.Weekdays = nil }},
		{"weekday out of range", func(r *Request) { r.Weekdays = []int{7} }},
		{"start equals end", func(r *Request) { r.EndTime = r.StartTime }},
		{"start after end", func(r *Request) { r.StartTime, r.EndTime = r.EndTime, r.StartTime }},
		{"malformed time", func(r *Request) { r.StartTime = types.TimeString("8:00") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeShiftRepo{}
			uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.created)
		})
	}
}
