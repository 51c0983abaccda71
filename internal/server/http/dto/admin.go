package dto

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ListOrdersResponse is the paginated admin order listing.
type ListOrdersResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}

// UpdateOrderRequest carries the editable order fields; absent fields are
// left untouched.
type UpdateOrderRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	City       *string `json:"city"`
	Address    *string `json:"address"`
	Quantity   *int    `json:"quantity"`
	TotalPrice *string `json:"totalPrice"`
	Status     *string `json:"status"`
}

// StatusRequest carries a status-only transition.
type StatusRequest struct {
	Status string `json:"status"`
}

// BulkDeleteRequest identifies the orders to remove.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkStatusRequest assigns one status to a set of orders.
type BulkStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

// BulkResponse reports per-item outcomes of a bulk operation.
type BulkResponse struct {
	Requested int `json:"requested"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}
