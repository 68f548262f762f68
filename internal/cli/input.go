package cli

import (
	"fmt"
	"os"
	"strings"
)

// ReadCommandFile читает CLI-команды из текстового файла,
// по одной команде на строку.
//
// Каждая строка обрезается; пустые строки и строки, начинающиеся
// с "#", пропускаются. Порядок оставшихся строк сохраняется.
func ReadCommandFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read CLI file: %w", err)
	}

	var commands []string
	for _, line := range strings.Split(string(data), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		commands = append(commands, stripped)
	}

	return commands, nil
}
