package slotgen

// candidateTimesResponse ответ генератора кандидатов
// Времена приходят строками "HH:MM"; порядок и уникальность генератор
// не гарантирует, дедупликация и сортировка на нашей стороне
type candidateTimesResponse struct {
	Times []string `json:"times"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
