package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type clientStub struct {
	sendFn func(ctx context.Context, chatID, text string) error
}

func (s clientStub) SendMessage(ctx context.Context, chatID, text string) error {
	return s.sendFn(ctx, chatID, text)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestDispatchAllRecipientsSucceed(t *testing.T) {
	client := clientStub{sendFn: func(context.Context, string, string) error {
		return nil
	}}
	d := NewDispatcher(client, []string{"1", "2", "3"}, time.Second, discardLogger())

	result := d.Dispatch(context.Background(), OrderSummary{Name: "Awa"})
	if !result.Success {
		t.Fatal("expected successful dispatch")
	}
	if result.SuccessCount != 3 || result.FailCount != 0 {
		t.Fatalf("unexpected counts %d/%d", result.SuccessCount, result.FailCount)
	}
	if len(result.Outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(result.Outcomes))
	}
}

func TestDispatchPartialFailureStillSucceeds(t *testing.T) {
	client := clientStub{sendFn: func(ctx context.Context, chatID, text string) error {
		if chatID == "2" {
			return errors.New("chat not found")
		}
		return nil
	}}
	d := NewDispatcher(client, []string{"1", "2"}, time.Second, discardLogger())

	result := d.Dispatch(context.Background(), OrderSummary{Name: "Awa"})
	if !result.Success {
		t.Fatal("one delivered recipient must make the dispatch successful")
	}
	if result.SuccessCount != 1 || result.FailCount != 1 {
		t.Fatalf("unexpected counts %d/%d", result.SuccessCount, result.FailCount)
	}
}

func TestDispatchAllFail(t *testing.T) {
	client := clientStub{sendFn: func(context.Context, string, string) error {
		return errors.New("bot blocked")
	}}
	d := NewDispatcher(client, []string{"1", "2"}, time.Second, discardLogger())

	result := d.Dispatch(context.Background(), OrderSummary{Name: "Awa"})
	if result.Success {
		t.Fatal("expected failed dispatch when nobody received the message")
	}
	if result.FailCount != 2 {
		t.Fatalf("unexpected fail count %d", result.FailCount)
	}
}

func TestDispatchAbandonsSlowSends(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	client := clientStub{sendFn: func(ctx context.Context, chatID, text string) error {
		if chatID == "slow" {
			<-release
			return nil
		}
		return nil
	}}
	d := NewDispatcher(client, []string{"fast", "slow"}, 50*time.Millisecond, discardLogger())

	start := time.Now()
	result := d.Dispatch(context.Background(), OrderSummary{Name: "Awa"})
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("dispatch must respect the overall deadline, took %v", elapsed)
	}
	if !result.Success {
		t.Fatal("fast recipient must still count as success")
	}
	if result.SuccessCount != 1 || result.FailCount != 1 {
		t.Fatalf("unexpected counts %d/%d", result.SuccessCount, result.FailCount)
	}
}

func TestDispatchNoRecipients(t *testing.T) {
	client := clientStub{sendFn: func(context.Context, string, string) error {
		t.Fatal("no send expected without recipients")
		return nil
	}}
	d := NewDispatcher(client, nil, time.Second, discardLogger())

	result := d.Dispatch(context.Background(), OrderSummary{Name: "Awa"})
	if result.Success || result.SuccessCount != 0 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestFormatMessage(t *testing.T) {
	message := FormatMessage(OrderSummary{
		Name:    "Awa Koné",
		Phone:   "+2250700000001",
		Product: "Zendo Gel",
		Price:   "14,000 FCFA",
		City:    "Abidjan",
	})
	for _, fragment := range []string{"NOUVELLE COMMANDE", "Awa Koné", "+2250700000001", "Zendo Gel", "14,000 FCFA", "Abidjan"} {
		if !strings.Contains(message, fragment) {
			t.Fatalf("message misses %q: %q", fragment, message)
		}
	}
}
