package activate_shift

// Request модель запроса на активацию смены
type Request struct {
	ShiftID int64 // ID смены
}

// Response модель ответа активации
// Отказ по конфликту дней недели - не ошибка, а отрицательное решение:
// Allowed=false, заполнены ConflictingWeekdays, состояние смены не
// изменилось
type Response struct {
	ShiftID                 int64    // ID смены
	Allowed                 bool     // Разрешена ли активация
	ConflictingWeekdays     []int    // Конфликтующие дни недели (0=воскресенье)
	ConflictingWeekdayNames []string // Имена конфликтующих дней для пользователя
	Status                  string   // Итоговый статус смены
}
