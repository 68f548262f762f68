package ddt

import (
	"sort"
	"strings"
)

// ExtractLines разворачивает result-map ответа в плоский список
// строк автоматизации.
//
// Ключи result-map — идентификаторы, назначенные сервисом, их порядок
// в JSON не определён. Обход идёт в лексикографическом порядке ключей,
// поэтому результат воспроизводим между вызовами.
//
// Entry со статусом != SUCCESS даёт одну строку "# ERROR: <сообщение>".
// Успешная entry даёт свои выходные строки: блок обрезается целиком,
// каждая строка обрезается отдельно, пустые строки отбрасываются.
func ExtractLines(resp *QueryResponse) []string {
	keys := make([]string, 0, len(resp.Result))
	for key := range resp.Result {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var lines []string
	for _, key := range keys {
		entry := resp.Result[key]

		if entry.Status != StatusSuccess {
			msg := entry.ErrorMessage
			if msg == "" {
				msg = unknownError
			}
			lines = append(lines, "# ERROR: "+msg)
			continue
		}

		for _, line := range strings.Split(strings.TrimSpace(entry.OutputLines), "\n") {
			if stripped := strings.TrimSpace(line); stripped != "" {
				lines = append(lines, stripped)
			}
		}
	}

	return lines
}
