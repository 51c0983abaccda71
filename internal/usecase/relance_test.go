package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/zendocod/zendo/internal/domain/model"
	testhelpers "github.com/zendocod/zendo/internal/test"
	"github.com/zendocod/zendo/internal/usecase"
)

func stalledOrders() *testhelpers.OrderRepositoryStub {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["o1"] = &model.Order{
		ID: "o1", Name: "Awa", Phone: "+2250700000001", City: "Abidjan",
		TotalPrice: "14,000 FCFA", Status: model.OrderStatusNew,
		Product: model.ProductSnapshot{Name: "Zendo Gel"},
	}
	orders.Orders["o2"] = &model.Order{
		ID: "o2", Name: "Fatou", Phone: "+2250700000002", City: "Bouaké",
		Status: model.OrderStatusCalled, ProductSlug: "zendo-gel",
	}
	orders.Orders["o3"] = &model.Order{
		ID: "o3", Name: "Moussa", Phone: "+2250700000003", City: "Yamoussoukro",
		Status: model.OrderStatusDelivered,
	}
	return orders
}

func TestRelanceEligibleCountSkipsSettledOrders(t *testing.T) {
	uc := usecase.NewRelanceUseCase(stalledOrders())

	count, err := uc.EligibleCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 eligible orders, got %d", count)
	}
}

func TestRelanceGenerateBuildsOneMessagePerOrder(t *testing.T) {
	uc := usecase.NewRelanceUseCase(stalledOrders())

	messages, err := uc.Generate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}

	byID := make(map[string]usecase.RelanceMessage)
	for _, msg := range messages {
		byID[msg.OrderID] = msg
	}
	first, ok := byID["o1"]
	if !ok {
		t.Fatal("expected a message for o1")
	}
	if first.To != "+2250700000001" {
		t.Fatalf("unexpected recipient %q", first.To)
	}
	if !strings.Contains(first.Message, "Awa") || !strings.Contains(first.Message, "Zendo Gel") {
		t.Fatalf("message misses customer or product: %q", first.Message)
	}
	second := byID["o2"]
	if !strings.Contains(second.Message, "zendo-gel") {
		t.Fatalf("expected slug fallback when snapshot name empty: %q", second.Message)
	}
}

func TestRelanceGenerateEmptyWhenNothingStalled(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["o1"] = &model.Order{ID: "o1", Status: model.OrderStatusDelivered}
	uc := usecase.NewRelanceUseCase(orders)

	messages, err := uc.Generate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected no messages, got %d", len(messages))
	}
}
