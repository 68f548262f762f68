package ddt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// noLinesMarker — вывод, когда сервис не вернул ни одной строки.
const noLinesMarker = "# No automation lines generated"

// RenderScript собирает извлечённые строки в текст сценария.
//
// Пустой список даёт единственную строку-маркер. Текст всегда
// завершается переводом строки.
func RenderScript(lines []string) string {
	if len(lines) == 0 {
		return noLinesMarker + "\n"
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderJSON возвращает сырой ответ сервиса с отступами в 2 пробела.
//
// Форматируются исходные байты ответа, а не декодированная структура:
// поля, неизвестные клиенту, и не-ASCII символы сохраняются как есть.
func RenderJSON(resp *QueryResponse) (string, error) {
	if len(resp.Raw) > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, resp.Raw, "", "  "); err != nil {
			return "", fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return buf.String() + "\n", nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return buf.String(), nil
}
