package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	appointmentRepo "github.com/agendafacil/AF-SchedulingService/internal/infra/storage/appointment"
	"github.com/agendafacil/AF-SchedulingService/internal/service/appointments/models"
	"github.com/agendafacil/AF-SchedulingService/pkg/tznorm"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
	lastFilter   domain.AppointmentsFilter
	updates      []domain.AppointmentStatus
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	result := make([]*domain.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		copied := *a
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	a, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	f.updates = append(f.updates, status)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduledAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		EstablishmentID: 10,
		ClientID:        100,
		ServiceID:       5,
		StartAt:         time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Status:          domain.StatusScheduled,
		ServiceName:     "Стрижка",
	}
}

func newTestService(repo *fakeRepo, offsetHours int) *Service {
	return NewService(repo, tznorm.New(offsetHours), nopLogger{})
}

func TestGetByID_ConvertsToDisplayConvention(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{1: scheduledAppointment(1)}}
	svc := newTestService(repo, 3)

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	// Хранимое 06:00 показывается как 09:00 при сдвиге +3
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: map[int64]*domain.Appointment{}}, 0)

	_, err := svc.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_ScheduledToFinalized(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{1: scheduledAppointment(1)}}
	svc := newTestService(repo, 0)

	resp, err := svc.UpdateStatus(context.Background(), 1,
		&models.UpdateStatusRequest{Status: string(domain.StatusFinalized)})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusFinalized), resp.Status)
	assert.Equal(t, []domain.AppointmentStatus{domain.StatusFinalized}, repo.updates)
}

func TestUpdateStatus_TerminalStatusImmutable(t *testing.T) {
	finalized := scheduledAppointment(1)
	finalized.Status = domain.StatusFinalized
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{1: finalized}}
	svc := newTestService(repo, 0)

	_, err := svc.UpdateStatus(context.Background(), 1,
		&models.UpdateStatusRequest{Status: string(domain.StatusDeleted)})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, repo.updates)
}

func TestUpdateStatus_SameStatusRefused(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{1: scheduledAppointment(1)}}
	svc := newTestService(repo, 0)

	_, err := svc.UpdateStatus(context.Background(), 1,
		&models.UpdateStatusRequest{Status: string(domain.StatusScheduled)})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: map[int64]*domain.Appointment{}}, 0)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestList_PeriodTranslatedToServerBounds(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{}}
	svc := newTestService(repo, 3)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		EstablishmentID: 10,
		StartDate:       &start,
		EndDate:         &end,
	})

	require.NoError(t, err)
	// Отображаемый день начинается на 3 часа раньше в серверной конвенции,
	// конец периода захватывает весь день EndDate
	require.NotNil(t, repo.lastFilter.From)
	require.NotNil(t, repo.lastFilter.To)
	assert.Equal(t, time.Date(2026, 3, 9, 21, 0, 0, 0, time.UTC), *repo.lastFilter.From)
	assert.Equal(t, time.Date(2026, 3, 11, 21, 0, 0, 0, time.UTC), *repo.lastFilter.To)
}

func TestList_EndBeforeStartRefused(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: map[int64]*domain.Appointment{}}, 0)

	start := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		EstablishmentID: 10,
		StartDate:       &start,
		EndDate:         &end,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
