package model

import "time"

// OrderStatus describes the admin-driven order lifecycle.
type OrderStatus string

const (
	OrderStatusNew         OrderStatus = "new"
	OrderStatusCalled      OrderStatus = "called"
	OrderStatusPending     OrderStatus = "pending"
	OrderStatusProcessing  OrderStatus = "processing"
	OrderStatusInDelivery  OrderStatus = "in_delivery"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusDelivered   OrderStatus = "delivered"
	OrderStatusCancelled   OrderStatus = "cancelled"
	OrderStatusRescheduled OrderStatus = "rescheduled"
)

// ValidStatus reports whether s belongs to the status enumeration.
// Any status may be assigned from any other; there is no transition table.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNew, OrderStatusCalled, OrderStatusPending,
		OrderStatusProcessing, OrderStatusInDelivery, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRescheduled:
		return true
	}
	return false
}

// Review is a customer review copied into the order snapshot.
type Review struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// ProductSnapshot holds product content captured at order-creation time.
// Orders keep their own copy so later product edits never rewrite history.
type ProductSnapshot struct {
	Name         string   `json:"name"`
	Price        string   `json:"price"`
	Images       []string `json:"images"`
	ShortDesc    string   `json:"shortDesc"`
	FullDesc     string   `json:"fullDesc"`
	Benefits     []string `json:"benefits"`
	Usage        string   `json:"usage"`
	Guarantee    string   `json:"guarantee"`
	DeliveryInfo string   `json:"deliveryInfo"`
	Reviews      []Review `json:"reviews"`
}

// Order is a cash-on-delivery order placed by a storefront customer.
// TotalPrice is the display string shown to the customer, TotalAmount the
// numeric value used by reporting; both are fixed at creation time.
type Order struct {
	ID          string
	Name        string
	Phone       string
	City        string
	Address     string
	ProductSlug string
	Quantity    int
	TotalPrice  string
	TotalAmount float64
	Status      OrderStatus
	Product     ProductSnapshot
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
