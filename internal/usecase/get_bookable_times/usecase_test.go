package get_bookable_times

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	"github.com/agendafacil/AF-SchedulingService/internal/integrations/catalog"
	"github.com/agendafacil/AF-SchedulingService/pkg/ptr"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
	"github.com/agendafacil/AF-SchedulingService/pkg/tznorm"
)

type fakeShiftRepo struct {
	shifts []*domain.Shift
}

func (f *fakeShiftRepo) ListByEstablishment(_ context.Context, _ int64) ([]*domain.Shift, error) {
	return f.shifts, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	lastFilter   domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.appointments, nil
}

type fakeCatalogClient struct {
	establishment *catalog.Establishment
	service       *catalog.Service
}

func (f *fakeCatalogClient) GetEstablishment(_ context.Context, _ int64) (*catalog.Establishment, error) {
	if f.establishment == nil {
		return nil, catalog.ErrEstablishmentNotFound
	}
	return f.establishment, nil
}

func (f *fakeCatalogClient) GetService(_ context.Context, _, _ int64) (*catalog.Service, error) {
	if f.service == nil {
		return nil, catalog.ErrServiceNotFound
	}
	return f.service, nil
}

type fakeSlotGenClient struct {
	times []types.TimeString
}

func (f *fakeSlotGenClient) GetCandidateTimes(_ context.Context, _ int64, _ *int64, _ int64, _ time.Time) ([]types.TimeString, error) {
	return f.times, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func tsList(t *testing.T, values ...string) []types.TimeString {
	t.Helper()
	result := make([]types.TimeString, len(values))
	for i, v := range values {
		var err error
		result[i], err = types.NewTimeStringFromString(v)
		require.NoError(t, err)
	}
	return result
}

func strList(values []types.TimeString) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = v.String()
	}
	return result
}

// Вторник: смена 08:00-12:00 по будням, запись мастера 08:45 + 30 минут.
// Кандидаты прореживаются записью (закрытый конец), затем рабочими
// часами (полуоткрытое окно), дубликаты убираются.
func TestExecute_FullPipeline(t *testing.T) {
	professionalID := int64(7)
	// 2026-03-10 - вторник
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	norm := tznorm.New(0)

	shiftRepo := &fakeShiftRepo{shifts: []*domain.Shift{
		{
			ID:              1,
			EstablishmentID: 10,
			Scope:           domain.EstablishmentScope(),
			Name:            "Будни",
			Weekdays:        domain.Weekdays{1, 2, 3, 4, 5},
			StartTime:       types.TimeString("08:00"),
			EndTime:         types.TimeString("12:00"),
			Status:          domain.ShiftStatusActive,
		},
	}}
	appointmentRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			ID:              1,
			EstablishmentID: 10,
			ProfessionalID:  &professionalID,
			ClientID:        100,
			ServiceID:       5,
			StartAt:         date.Add(8*time.Hour + 45*time.Minute),
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
	}}
	catalogClient := &fakeCatalogClient{
		establishment: &catalog.Establishment{ID: 10, Name: "Салон", ProfessionalIDs: []int64{7}},
		service:       &catalog.Service{ID: 5, EstablishmentID: 10, Name: "Стрижка", DurationMinutes: 30},
	}
	slotGen := &fakeSlotGenClient{
		times: tsList(t, "08:00", "08:30", "09:00", "09:15", "09:30", "11:45", "12:00"),
	}

	uc := NewUseCase(shiftRepo, appointmentRepo, catalogClient, slotGen, norm, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		EstablishmentID: 10,
		ProfessionalID:  &professionalID,
		ServiceID:       5,
		Date:            date,
	})

	require.NoError(t, err)
	// 08:45-09:15 занято включительно, 12:00 отсечено закрытием смены
	assert.Equal(t, []string{"08:00", "08:30", "09:30", "11:45"}, strList(resp.Times))
}

func TestExecute_NoShiftCoversDay(t *testing.T) {
	professionalID := int64(7)
	// Воскресенье, смены только по будням
	date := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	shiftRepo := &fakeShiftRepo{shifts: []*domain.Shift{
		{
			ID:              1,
			EstablishmentID: 10,
			Scope:           domain.EstablishmentScope(),
			Name:            "Будни",
			Weekdays:        domain.Weekdays{1, 2, 3, 4, 5},
			StartTime:       types.TimeString("08:00"),
			EndTime:         types.TimeString("12:00"),
			Status:          domain.ShiftStatusActive,
		},
	}}
	catalogClient := &fakeCatalogClient{
		establishment: &catalog.Establishment{ID: 10, ProfessionalIDs: []int64{7}},
		service:       &catalog.Service{ID: 5, EstablishmentID: 10, DurationMinutes: 30},
	}
	slotGen := &fakeSlotGenClient{times: tsList(t, "09:00", "10:00")}

	uc := NewUseCase(shiftRepo, &fakeAppointmentRepo{}, catalogClient, slotGen, tznorm.New(0), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		EstablishmentID: 10,
		ProfessionalID:  &professionalID,
		ServiceID:       5,
		Date:            date,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Times)
}

func TestExecute_ServerDayWindowUsesDisplayOffset(t *testing.T) {
	professionalID := int64(7)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	appointmentRepo := &fakeAppointmentRepo{}
	catalogClient := &fakeCatalogClient{
		establishment: &catalog.Establishment{ID: 10, ProfessionalIDs: []int64{7}},
		service:       &catalog.Service{ID: 5, EstablishmentID: 10, DurationMinutes: 30},
	}

	uc := NewUseCase(&fakeShiftRepo{}, appointmentRepo, catalogClient, &fakeSlotGenClient{}, tznorm.New(3), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		EstablishmentID: 10,
		ProfessionalID:  &professionalID,
		ServiceID:       5,
		Date:            date,
	})

	require.NoError(t, err)
	// Отображаемый день [00:00, 24:00) - это серверное окно со сдвигом -3
	require.NotNil(t, appointmentRepo.lastFilter.From)
	require.NotNil(t, appointmentRepo.lastFilter.To)
	assert.Equal(t, time.Date(2026, 3, 9, 21, 0, 0, 0, time.UTC), *appointmentRepo.lastFilter.From)
	assert.Equal(t, time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC), *appointmentRepo.lastFilter.To)
}

func TestExecute_EstablishmentNotFound(t *testing.T) {
	uc := NewUseCase(&fakeShiftRepo{}, &fakeAppointmentRepo{}, &fakeCatalogClient{}, &fakeSlotGenClient{}, tznorm.New(0), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		EstablishmentID: 10,
		ServiceID:       5,
		Date:            time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrEstablishmentNotFound)
}

func TestExecute_ProfessionalNotInEstablishment(t *testing.T) {
	catalogClient := &fakeCatalogClient{
		establishment: &catalog.Establishment{ID: 10, ProfessionalIDs: []int64{8}},
		service:       &catalog.Service{ID: 5, EstablishmentID: 10, DurationMinutes: 30},
	}
	uc := NewUseCase(&fakeShiftRepo{}, &fakeAppointmentRepo{}, catalogClient, &fakeSlotGenClient{}, tznorm.New(0), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		EstablishmentID: 10,
		ProfessionalID:  ptr.Ptr(int64(7)),
		ServiceID:       5,
		Date:            time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	catalogClient := &fakeCatalogClient{
		establishment: &catalog.Establishment{ID: 10, ProfessionalIDs: []int64{7}},
	}
	uc := NewUseCase(&fakeShiftRepo{}, &fakeAppointmentRepo{}, catalogClient, &fakeSlotGenClient{}, tznorm.New(0), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		EstablishmentID: 10,
		ServiceID:       5,
		Date:            time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
