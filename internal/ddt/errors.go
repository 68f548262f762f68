package ddt

import "errors"

// Ошибки клиента DDT API.
var (
	// ErrNoCommands — пустой список CLI-команд.
	ErrNoCommands = errors.New("no CLI commands provided")

	// ErrNoProducts — пустой список product models.
	ErrNoProducts = errors.New("no product models provided")

	// ErrConnect — не удалось установить соединение с сервисом.
	ErrConnect = errors.New("cannot connect to DDT API")

	// ErrTimeout — ответ не получен за отведённый таймаут.
	ErrTimeout = errors.New("DDT API request timed out")

	// ErrHTTPStatus — сервис вернул HTTP-код вне диапазона 2xx.
	ErrHTTPStatus = errors.New("DDT API returned HTTP error")

	// ErrAPIStatus — ответ корректен по форме, но статус не SUCCESS.
	ErrAPIStatus = errors.New("DDT API returned error status")

	// ErrDecode — тело ответа не распарсилось как JSON.
	ErrDecode = errors.New("failed to decode DDT API response")
)
