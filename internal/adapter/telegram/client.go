package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrNotConfigured indicates the bot token is missing.
var ErrNotConfigured = errors.New("telegram bot token not configured")

// APIError represents a failure response from the Telegram Bot API.
type APIError struct {
	Code        int
	Description string
}

func (e APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

// Client exposes operations to deliver chat messages.
type Client interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

// HTTPClient implements Client via the Telegram Bot API.
type HTTPClient struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// NewHTTPClient creates the Bot API client. The timeout bounds every single
// send attempt; the dispatcher applies its own overall deadline on top.
func NewHTTPClient(baseURL, token string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse telegram url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("telegram url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		token:   token,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// SendMessage posts a plain-text message to one chat.
func (c *HTTPClient) SendMessage(ctx context.Context, chatID, text string) error {
	if c.token == "" {
		return ErrNotConfigured
	}

	endpoint := *c.baseURL
	endpoint.Path = fmt.Sprintf("/bot%s/sendMessage", c.token)

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var data apiResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error("telegram response malformed", slog.Int("status", resp.StatusCode))
		return fmt.Errorf("telegram error: %s", resp.Status)
	}
	if !data.OK {
		return APIError{Code: data.ErrorCode, Description: data.Description}
	}
	return nil
}
