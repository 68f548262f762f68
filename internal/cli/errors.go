package cli

import "errors"

// Ошибки сбора входных данных.
var (
	// ErrFileNotFound — файл с CLI-командами не существует.
	ErrFileNotFound = errors.New("CLI file not found")
)
