package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestSendMessagePostsToBotEndpoint(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(server.URL, "bot-token", time.Second, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.SendMessage(context.Background(), "42", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/botbot-token/sendMessage" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotBody.ChatID != "42" || gotBody.Text != "hello" || gotBody.ParseMode != "HTML" {
		t.Fatalf("unexpected payload %+v", gotBody)
	}
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"chat not found"}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(server.URL, "bot-token", time.Second, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = client.SendMessage(context.Background(), "42", "hello")
	var apiErr APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != 400 || apiErr.Description != "chat not found" {
		t.Fatalf("unexpected api error %+v", apiErr)
	}
}

func TestSendMessageWithoutToken(t *testing.T) {
	client, err := NewHTTPClient("https://api.telegram.org", "", time.Second, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.SendMessage(context.Background(), "42", "hello"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSendMessageRespectsContext(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(server.URL, "bot-token", time.Minute, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := client.SendMessage(ctx, "42", "hello"); err == nil {
		t.Fatal("expected error once context deadline elapsed")
	}
	<-started
}

func TestNewHTTPClientRejectsRelativeURL(t *testing.T) {
	if _, err := NewHTTPClient("not-a-url", "token", time.Second, discardLogger()); err == nil {
		t.Fatal("expected error for relative URL")
	}
}

func TestSendMessageMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(server.URL, "bot-token", time.Second, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.SendMessage(context.Background(), "42", "hello"); err == nil {
		t.Fatal("expected error for malformed response body")
	}
}
