package availability

import (
	"github.com/agendafacil/AF-SchedulingService/internal/domain"
)

// Decision результат проверки возможности активации смены
type Decision struct {
	Allowed             bool
	ConflictingWeekdays domain.Weekdays
}

// CanActivate решает, может ли кандидат сосуществовать с уже активными
// сменами в той же области (establishment-wide либо конкретный мастер).
//
// Модель конфликта намеренно погранулярна по дням недели, а не по
// времени: две смены с непересекающимися часами в один и тот же день
// недели всё равно конфликтуют. Одна активная конфигурация смены на
// день недели на область.
//
// Правила:
//   - деактивация всегда безопасна: кандидат со статусом != active
//     разрешён без проверок
//   - сравниваются только активные смены той же области; смены
//     establishment-wide никогда не сравниваются со сменами мастеров
//   - сам кандидат (по ID) исключается из сравнения, иначе повторная
//     активация конфликтовала бы сама с собой
//
// Чистая функция без побочных эффектов: вызывающая сторона сохраняет
// смену статуса только при Allowed и показывает ConflictingWeekdays
// пользователю при отказе.
func CanActivate(candidate *domain.Shift, allShifts []*domain.Shift) Decision {
	if candidate.Status != domain.ShiftStatusActive {
		return Decision{Allowed: true, ConflictingWeekdays: domain.Weekdays{}}
	}

	conflicting := domain.Weekdays{}

	for _, shift := range allShifts {
		if shift.ID == candidate.ID {
			continue
		}
		if !shift.IsActive() {
			continue
		}
		if !candidate.SameScope(shift) {
			continue
		}

		for _, d := range candidate.Weekdays.Intersect(shift.Weekdays) {
			if !conflicting.Contains(d) {
				conflicting = append(conflicting, d)
			}
		}
	}

	conflicting = conflicting.Normalize()

	return Decision{
		Allowed:             len(conflicting) == 0,
		ConflictingWeekdays: conflicting,
	}
}

// ShiftsForScope выбирает активные смены, относящиеся к области.
// Если у мастера есть собственные активные смены, именно они задают
// его рабочие часы; иначе действуют смены всего заведения.
func ShiftsForScope(shifts []*domain.Shift, scope domain.Scope) []*domain.Shift {
	if scope.IsProfessional() {
		own := filterShifts(shifts, scope)
		if len(own) > 0 {
			return own
		}
	}
	return filterShifts(shifts, domain.EstablishmentScope())
}

func filterShifts(shifts []*domain.Shift, scope domain.Scope) []*domain.Shift {
	result := make([]*domain.Shift, 0)
	for _, s := range shifts {
		if s.IsActive() && s.Scope.Equal(scope) {
			result = append(result, s)
		}
	}
	return result
}
