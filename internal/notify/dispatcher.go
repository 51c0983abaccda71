package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zendocod/zendo/internal/adapter/telegram"
)

// OrderSummary is the structured payload formatted into the chat message.
type OrderSummary struct {
	Name    string
	Phone   string
	Product string
	Price   string
	City    string
}

// SendOutcome records the result of one recipient send attempt.
type SendOutcome struct {
	ChatID string
	Err    error
}

// DispatchResult summarizes a fan-out. Success is true when at least one
// recipient received the message.
type DispatchResult struct {
	Success      bool
	SuccessCount int
	FailCount    int
	Duration     time.Duration
	Outcomes     []SendOutcome
}

// Dispatcher delivers order notifications to the configured chat recipients
// in parallel. It never returns an error to callers; failures are captured in
// the result and logged.
type Dispatcher struct {
	client  telegram.Client
	chatIDs []string
	timeout time.Duration
	logger  *slog.Logger
}

// NewDispatcher constructs Dispatcher. The timeout bounds the whole fan-out;
// attempts still in flight when it elapses are counted as failures.
func NewDispatcher(client telegram.Client, chatIDs []string, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &Dispatcher{
		client:  client,
		chatIDs: chatIDs,
		timeout: timeout,
		logger:  logger,
	}
}

// DispatchAsync runs Dispatch on a detached goroutine so the caller's
// request/response cycle never waits for notification delivery. The outcome
// is only logged.
func (d *Dispatcher) DispatchAsync(summary OrderSummary) {
	go func() {
		d.Dispatch(context.Background(), summary)
	}()
}

// Dispatch sends the formatted message to every recipient in parallel and
// waits at most the configured timeout for the results.
func (d *Dispatcher) Dispatch(ctx context.Context, summary OrderSummary) DispatchResult {
	start := time.Now()

	if len(d.chatIDs) == 0 {
		d.logger.Warn("notification skipped, no chat recipients configured")
		return DispatchResult{}
	}

	message := FormatMessage(summary)

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	outcomes := make(chan SendOutcome, len(d.chatIDs))
	for _, chatID := range d.chatIDs {
		go func(chatID string) {
			err := d.client.SendMessage(sendCtx, chatID, message)
			outcomes <- SendOutcome{ChatID: chatID, Err: err}
		}(chatID)
	}

	timer := time.NewTimer(d.timeout)
	defer timer.Stop()

	result := DispatchResult{Outcomes: make([]SendOutcome, 0, len(d.chatIDs))}
collect:
	for range d.chatIDs {
		select {
		case outcome := <-outcomes:
			result.Outcomes = append(result.Outcomes, outcome)
			if outcome.Err != nil {
				result.FailCount++
			} else {
				result.SuccessCount++
			}
		case <-timer.C:
			break collect
		}
	}

	// Attempts that missed the deadline are reported as failures; the sends
	// themselves are abandoned, not cancelled mid-flight.
	result.FailCount += len(d.chatIDs) - len(result.Outcomes)
	result.Success = result.SuccessCount > 0
	result.Duration = time.Since(start)

	d.log(result)
	return result
}

func (d *Dispatcher) log(result DispatchResult) {
	if result.FailCount > 0 {
		for _, outcome := range result.Outcomes {
			if outcome.Err != nil {
				d.logger.Error("notification send failed",
					slog.String("chat_id", outcome.ChatID),
					slog.String("error", outcome.Err.Error()),
				)
			}
		}
	}
	d.logger.Info("notification dispatch finished",
		slog.Int("sent", result.SuccessCount),
		slog.Int("failed", result.FailCount),
		slog.Duration("duration", result.Duration),
	)
}

// FormatMessage renders the plain-text chat notification for a new order.
func FormatMessage(summary OrderSummary) string {
	return fmt.Sprintf(`🛒 NOUVELLE COMMANDE

👤 Nom: %s
📞 Téléphone: %s
📦 Produit: %s
💰 Prix: %s
📍 Ville: %s`,
		summary.Name, summary.Phone, summary.Product, summary.Price, summary.City)
}
