package shift

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	"github.com/agendafacil/AF-SchedulingService/pkg/dbmetrics"
	"github.com/agendafacil/AF-SchedulingService/pkg/psqlbuilder"
)

// shiftColumns полный набор колонок таблицы shifts
var shiftColumns = []string{
	"id",
	"establishment_id",
	"professional_id",
	"name",
	"weekdays",
	"start_time",
	"end_time",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со сменами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую смену
// Если в контексте передана активная транзакция, использует её -
// создание смены со статусом active выполняется в транзакции вместе
// с проверкой конфликта по дням недели
func (r *Repository) Create(ctx context.Context, s *domain.Shift) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shifts").
		Columns(
			"establishment_id",
			"professional_id",
			"name",
			"weekdays",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			s.EstablishmentID,
			scopeToColumn(s.Scope),
			s.Name,
			weekdaysToArray(s.Weekdays),
			s.StartTime,
			s.EndTime,
			s.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает смену по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shiftColumns...).
		From("shifts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanShiftRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shift: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListByEstablishment получает все смены заведения (все области).
// Список обновляется перед каждым решением об активации и перед
// каждым расчётом доступности.
//
// Внутри транзакции добавляется FOR UPDATE: активация смены - это
// read-check-write, и конкурирующие активации конфликтующих смен
// в одной области не должны пройти одновременно.
func (r *Repository) ListByEstablishment(ctx context.Context, establishmentID int64) ([]*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(shiftColumns...).
		From("shifts").
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEstablishment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEstablishment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

// UpdateStatus обновляет статус смены
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ShiftStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shifts").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrShiftNotFound
	}

	return nil
}

// Delete удаляет смену (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("shifts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrShiftNotFound
	}

	return nil
}

// scopeToColumn конвертирует область в nullable колонку professional_id
// Двухвариантный Scope живёт только в Go; в схеме это NULL для
// establishment-wide и id мастера для персональной смены
func scopeToColumn(scope domain.Scope) *int64 {
	if scope.IsProfessional() {
		id := scope.ProfessionalID
		return &id
	}
	return nil
}

// columnToScope восстанавливает область из nullable колонки
func columnToScope(professionalID sql.NullInt64) domain.Scope {
	if professionalID.Valid {
		return domain.ProfessionalScope(professionalID.Int64)
	}
	return domain.EstablishmentScope()
}

// weekdaysToArray конвертирует дни недели в pq массив для колонки smallint[]
func weekdaysToArray(w domain.Weekdays) pq.Int64Array {
	arr := make(pq.Int64Array, len(w))
	for i, d := range w {
		arr[i] = int64(d)
	}
	return arr
}

// arrayToWeekdays восстанавливает дни недели из pq массива
func arrayToWeekdays(arr pq.Int64Array) domain.Weekdays {
	w := make(domain.Weekdays, len(arr))
	for i, d := range arr {
		w[i] = int(d)
	}
	return w
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanShiftRow сканирует одну смену
func scanShiftRow(row rowScanner) (*domain.Shift, error) {
	var s domain.Shift
	var professionalID sql.NullInt64
	var weekdays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.EstablishmentID,
		&professionalID,
		&s.Name,
		&weekdays,
		&s.StartTime,
		&s.EndTime,
		&s.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Scope = columnToScope(professionalID)
	s.Weekdays = arrayToWeekdays(weekdays)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// scanShifts сканирует результаты запроса в слайс смен
func scanShifts(rows *sql.Rows) ([]*domain.Shift, error) {
	shifts := make([]*domain.Shift, 0)

	for rows.Next() {
		s, err := scanShiftRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanShifts - scan row: %v", ErrScanRow, err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanShifts - rows error: %v", ErrScanRow, err)
	}

	return shifts, nil
}
