package availability

import (
	"time"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
	"github.com/agendafacil/AF-SchedulingService/pkg/tznorm"
)

// FilterByAppointments убирает из списка кандидатов времена, попадающие
// в занятые интервалы записей мастера на указанную дату.
//
// Запись занимает интервал [startAt, startAt+duration] с ВКЛЮЧЕННЫМ
// концом: кандидат, попадающий ровно на конец другой записи, тоже
// считается конфликтом. Это сознательная политика закрытого интервала
// против двойных броней "впритык" на границах смен.
//
// Примеры (запись 10:00 + 30 минут):
//   - кандидаты 10:00, 10:15, 10:30 → убираются
//   - кандидаты 09:59, 10:31 → остаются
//
// Фильтр работает в рамках одного мастера: записи других мастеров
// игнорируются, два мастера могут обслуживать клиентов одновременно.
// Если professionalID == nil (бронь уровня заведения без конкретного
// мастера), кандидаты возвращаются без изменений.
//
// Учитываются только записи в статусе scheduled; финализированные и
// удалённые больше не блокируют время. StartAt записей хранится в
// серверной конвенции и переводится в отображаемое время через norm
// перед любым сравнением.
func FilterByAppointments(
	candidates []types.TimeString,
	date time.Time,
	professionalID *int64,
	appointments []*domain.Appointment,
	norm *tznorm.Normalizer,
) []types.TimeString {
	if professionalID == nil {
		return candidates
	}

	// Собираем занятые интервалы мастера на эту дату в отображаемом времени
	type window struct {
		start, end types.TimeString
	}
	occupied := make([]window, 0)

	for _, appt := range appointments {
		if !appt.BlocksAvailability() {
			continue
		}
		if !appt.BelongsToProfessional(*professionalID) {
			continue
		}

		localStart := norm.ToDisplay(appt.StartAt)
		if !isSameDay(localStart, date) {
			continue
		}

		start := types.NewTimeString(localStart)
		end, err := start.AddMinutes(appt.DurationMinutes)
		if err != nil {
			// Запись выходит за пределы суток - пропускаем, такие данные
			// отбрасываются валидацией на входе
			continue
		}
		occupied = append(occupied, window{start: start, end: end})
	}

	remaining := make([]types.TimeString, 0, len(candidates))
	for _, candidate := range candidates {
		conflicts := false
		for _, w := range occupied {
			if candidate.Within(w.start, w.end, true) {
				conflicts = true
				break
			}
		}
		if !conflicts {
			remaining = append(remaining, candidate)
		}
	}

	return remaining
}

// FilterByShifts оставляет только кандидатов, попадающих в рабочие часы
// хотя бы одной активной смены, покрывающей день недели даты.
//
// Окно смены полуоткрытое [startTime, endTime): слот ровно на время
// закрытия исключается, слот ровно на время открытия остаётся.
//
// Семантика any-of: при нескольких сменах на один день (утро и вечер с
// перерывом) кандидату достаточно попасть в любую из них; перерыв
// корректно исключается.
//
// Если ни одна смена не покрывает день недели - рабочие часы на этот
// день не настроены, возвращается пустой список независимо от входа.
func FilterByShifts(
	candidates []types.TimeString,
	date time.Time,
	activeShifts []*domain.Shift,
) []types.TimeString {
	weekday := int(date.Weekday())

	dayShifts := make([]*domain.Shift, 0)
	for _, shift := range activeShifts {
		if shift.IsActive() && shift.CoversWeekday(weekday) {
			dayShifts = append(dayShifts, shift)
		}
	}

	if len(dayShifts) == 0 {
		return []types.TimeString{}
	}

	remaining := make([]types.TimeString, 0, len(candidates))
	for _, candidate := range candidates {
		for _, shift := range dayShifts {
			if candidate.Within(shift.StartTime, shift.EndTime, false) {
				remaining = append(remaining, candidate)
				break
			}
		}
	}

	return remaining
}

// Dedupe возвращает кандидатов в порядке времени суток без дубликатов.
// Генератор кандидатов внешний и порядок не гарантирует.
func Dedupe(candidates []types.TimeString) []types.TimeString {
	result := make([]types.TimeString, 0, len(candidates))
	seen := make(map[types.TimeString]struct{}, len(candidates))

	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		result = append(result, c)
	}

	// Сортировка вставками: списки кандидатов короткие
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].IsBefore(result[j-1]); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
