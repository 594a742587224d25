package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	"github.com/agendafacil/AF-SchedulingService/internal/integrations/catalog"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
	"github.com/agendafacil/AF-SchedulingService/pkg/tznorm"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	created      []*domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	copied := *appointment
	copied.ID = int64(len(f.created) + 1)
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	f.created = append(f.created, &copied)
	return &copied, nil
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeShiftRepo struct {
	shifts []*domain.Shift
}

func (f *fakeShiftRepo) ListByEstablishment(_ context.Context, _ int64) ([]*domain.Shift, error) {
	return f.shifts, nil
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func weekdayShift() *domain.Shift {
	return &domain.Shift{
		ID:              1,
		EstablishmentID: 10,
		Scope:           domain.EstablishmentScope(),
		Name:            "Будни",
		Weekdays:        domain.Weekdays{1, 2, 3, 4, 5},
		StartTime:       types.TimeString("08:00"),
		EndTime:         types.TimeString("12:00"),
		Status:          domain.ShiftStatusActive,
	}
}

func testCatalog() *fakeCatalogClient {
	price := 50.0
	return &fakeCatalogClient{
		establishment: &catalog.Establishment{ID: 10, Name: "Салон", ProfessionalIDs: []int64{7}},
		service: &catalog.Service{
			ID:              5,
			EstablishmentID: 10,
			Name:            "Стрижка",
			DurationMinutes: 30,
			Price:           &price,
		},
	}
}

func testRequest(professionalID int64) *Request {
	// 2026-03-10 - вторник
	return &Request{
		EstablishmentID: 10,
		ProfessionalID:  &professionalID,
		ClientID:        100,
		ServiceID:       5,
		Date:            time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("09:00"),
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	appointmentRepo := &fakeAppointmentRepo{}
	norm := tznorm.New(3)
	uc := NewUseCase(appointmentRepo, &fakeShiftRepo{shifts: []*domain.Shift{weekdayShift()}},
		testCatalog(), fakeTxManager{}, norm, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest(7))

	require.NoError(t, err)
	require.Len(t, appointmentRepo.created, 1)

	created := appointmentRepo.created[0]
	// Отображаемое 09:00 хранится в серверной конвенции (сдвиг -3)
	assert.Equal(t, time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC), created.StartAt)
	assert.Equal(t, domain.StatusScheduled, created.Status)
	assert.Equal(t, 30, created.DurationMinutes)
	assert.Equal(t, "Стрижка", created.ServiceName)
	assert.NotEqual(t, uuid.Nil, created.Reference)

	// Ответ переведён обратно в отображаемую конвенцию
	assert.Equal(t, "09:00", resp.StartTime.String())
	assert.Equal(t, "2026-03-10", resp.Date.Format(domain.DateFormat))
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	appointmentRepo := &fakeAppointmentRepo{}
	uc := NewUseCase(appointmentRepo, &fakeShiftRepo{shifts: []*domain.Shift{weekdayShift()}},
		testCatalog(), fakeTxManager{}, tznorm.New(0), nopLogger{})

	req := testRequest(7)
	req.StartTime = types.TimeString("12:00") // ровно закрытие, полуоткрытое окно

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	assert.Empty(t, appointmentRepo.created)
}

func TestExecute_NoShiftCoversWeekday(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeShiftRepo{shifts: []*domain.Shift{weekdayShift()}},
		testCatalog(), fakeTxManager{}, tznorm.New(0), nopLogger{})

	req := testRequest(7)
	req.Date = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC) // воскресенье

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_StaleSlotRace(t *testing.T) {
	professionalID := int64(7)
	// Конкурирующая бронь заняла 09:00 между показом списка и коммитом
	appointmentRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			ID:              99,
			EstablishmentID: 10,
			ProfessionalID:  &professionalID,
			ClientID:        200,
			ServiceID:       5,
			StartAt:         time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
	}}
	uc := NewUseCase(appointmentRepo, &fakeShiftRepo{shifts: []*domain.Shift{weekdayShift()}},
		testCatalog(), fakeTxManager{}, tznorm.New(0), nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(7))

	assert.ErrorIs(t, err, ErrTimeNoLongerAvailable)
	assert.Empty(t, appointmentRepo.created)
}

func TestExecute_EstablishmentLevelBookingSkipsOccupancy(t *testing.T) {
	other := int64(7)
	appointmentRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			ID:              99,
			EstablishmentID: 10,
			ProfessionalID:  &other,
			ClientID:        200,
			ServiceID:       5,
			StartAt:         time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
	}}
	uc := NewUseCase(appointmentRepo, &fakeShiftRepo{shifts: []*domain.Shift{weekdayShift()}},
		testCatalog(), fakeTxManager{}, tznorm.New(0), nopLogger{})

	req := testRequest(7)
	req.ProfessionalID = nil

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.ProfessionalID)
	assert.Len(t, appointmentRepo.created, 1)
}

func TestExecute_ProfessionalNotInEstablishment(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeShiftRepo{}, testCatalog(),
		fakeTxManager{}, tznorm.New(0), nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(42))

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	client := testCatalog()
	client.service = nil
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeShiftRepo{}, client,
		fakeTxManager{}, tznorm.New(0), nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(7))

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
