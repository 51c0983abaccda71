package usecase

import (
	"context"
	"fmt"

	"github.com/zendocod/zendo/internal/domain/model"
	"github.com/zendocod/zendo/internal/domain/repository"
)

// relanceStatuses are the stalled states worth a follow-up message.
var relanceStatuses = []model.OrderStatus{
	model.OrderStatusNew,
	model.OrderStatusCalled,
	model.OrderStatusPending,
}

// RelanceMessage is a prepared follow-up for one stalled order. Messages are
// handed to the operator, never sent automatically.
type RelanceMessage struct {
	OrderID string `json:"orderId"`
	To      string `json:"to"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// RelanceUseCase prepares follow-up campaigns for stalled orders.
type RelanceUseCase struct {
	orders repository.OrderRepository
}

// NewRelanceUseCase constructs RelanceUseCase.
func NewRelanceUseCase(orders repository.OrderRepository) *RelanceUseCase {
	return &RelanceUseCase{orders: orders}
}

// EligibleCount returns how many orders qualify for a follow-up.
func (u *RelanceUseCase) EligibleCount(ctx context.Context) (int, error) {
	orders, err := u.orders.ListByStatuses(ctx, relanceStatuses)
	if err != nil {
		return 0, err
	}
	return len(orders), nil
}

// Generate builds one follow-up message per eligible order.
func (u *RelanceUseCase) Generate(ctx context.Context) ([]RelanceMessage, error) {
	orders, err := u.orders.ListByStatuses(ctx, relanceStatuses)
	if err != nil {
		return nil, err
	}

	messages := make([]RelanceMessage, 0, len(orders))
	for _, order := range orders {
		messages = append(messages, RelanceMessage{
			OrderID: order.ID,
			To:      order.Phone,
			Name:    order.Name,
			Message: relanceText(order),
		})
	}
	return messages, nil
}

func relanceText(order model.Order) string {
	product := order.Product.Name
	if product == "" {
		product = order.ProductSlug
	}
	return fmt.Sprintf(
		"Bonjour %s, votre commande %s (%s) est toujours en attente. Souhaitez-vous confirmer la livraison à %s ?",
		order.Name, product, order.TotalPrice, order.City,
	)
}
