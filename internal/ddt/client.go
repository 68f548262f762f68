package ddt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultAPIURL — endpoint DDT CLI Parser по умолчанию.
const DefaultAPIURL = "http://ddt.rnd.huawei.com:12240/ddt_cli_parser/testbot_query"

// DefaultTimeout — таймаут запроса по умолчанию.
const DefaultTimeout = 60 * time.Second

// Client — HTTP-клиент DDT CLI Parser API.
//
// Выполняет ровно один исходящий запрос на вызов Query, без retry.
// Любая ошибка терминальна для данного вызова.
type Client struct {
	apiURL     string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient создаёт клиент для DDT API.
//
// Пустой apiURL заменяется на DefaultAPIURL,
// неположительный timeout — на DefaultTimeout.
func NewClient(apiURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		apiURL:     apiURL,
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
}

// Query отправляет CLI-команды на разбор.
//
// Все команды склеиваются через "\n" в один блок — сервис разбирает
// блок целиком и возвращает result-map с entry на каждый блок.
// Возвращает ErrNoCommands/ErrNoProducts до сетевого вызова,
// ErrConnect/ErrTimeout/ErrHTTPStatus/ErrAPIStatus — после.
func (c *Client) Query(ctx context.Context, commands, products []string) (*QueryResponse, error) {
	if len(commands) == 0 {
		return nil, ErrNoCommands
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	payload := QueryRequest{
		ApplicableProducts: products,
		BlockCLIs:          []string{strings.Join(commands, "\n")},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	c.logger.Debug("calling DDT API", "url", c.apiURL, "products", products, "commands", len(commands))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, c.timeout)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err, c.timeout)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrHTTPStatus, resp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed QueryResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	parsed.Raw = respBody

	if parsed.Status != StatusSuccess {
		msg := parsed.Message
		if msg == "" {
			msg = unknownError
		}
		return nil, fmt.Errorf("%w: %s", ErrAPIStatus, msg)
	}

	c.logger.Debug("DDT API responded", "entries", len(parsed.Result))

	return &parsed, nil
}

// classifyTransportError сводит сетевые ошибки к ErrTimeout или ErrConnect.
func classifyTransportError(err error, timeout time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: no response after %s", ErrTimeout, timeout)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: no response after %s", ErrTimeout, timeout)
	}
	return fmt.Errorf("%w: %v", ErrConnect, err)
}

// truncate обрезает строку до указанной длины.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
