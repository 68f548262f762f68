package ddt

import "encoding/json"

// StatusSuccess — маркер успеха в ответах сервиса.
// Используется и на верхнем уровне ответа, и в каждой ResultEntry.
const StatusSuccess = "SUCCESS"

// unknownError — текст по умолчанию, когда сервис не прислал сообщение.
const unknownError = "Unknown error"

// QueryRequest — тело запроса к DDT CLI Parser.
//
// BlockCLIs содержит один элемент: все команды, склеенные через "\n".
type QueryRequest struct {
	ApplicableProducts []string `json:"applicable_products"`
	BlockCLIs          []string `json:"block_clis"`
}

// ResultEntry — результат разбора одного блока команд.
//
// Каждая entry несёт собственный статус: успех ответа в целом
// не гарантирует успех отдельной entry.
type ResultEntry struct {
	Status       string `json:"status"`
	OutputLines  string `json:"output_lines,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// QueryResponse — ответ DDT CLI Parser.
//
// Raw хранит недекодированное тело ответа для режима --json:
// поля, неизвестные клиенту, при выводе не теряются.
type QueryResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Result  map[string]ResultEntry `json:"result,omitempty"`

	Raw json.RawMessage `json:"-"`
}
