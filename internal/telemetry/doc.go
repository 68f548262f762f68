// Package telemetry обеспечивает наблюдаемость инструмента.
//
// Включает structured logging через slog. Логи идут в stderr,
// уровень и формат задаются переменными окружения LOG_LEVEL
// и LOG_FORMAT.
package telemetry
