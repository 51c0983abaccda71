package dto

import "github.com/zendocod/zendo/internal/domain/model"

// ProductResponse is the catalog view served to the storefront.
type ProductResponse struct {
	Slug         string         `json:"slug"`
	Name         string         `json:"name"`
	ShortDesc    string         `json:"shortDesc"`
	FullDesc     string         `json:"fullDesc"`
	Images       []string       `json:"images"`
	Benefits     []string       `json:"benefits"`
	Usage        string         `json:"usage"`
	Guarantee    string         `json:"guarantee"`
	DeliveryInfo string         `json:"deliveryInfo"`
	Reviews      []model.Review `json:"reviews"`
	Offers       []model.Offer  `json:"offers"`
}

// SaveProductRequest is the admin payload creating or replacing a catalog
// entry. "productName" matches the back-office form field.
type SaveProductRequest struct {
	Slug         string        `json:"slug"`
	Name         string        `json:"productName"`
	ShortDesc    string        `json:"shortDesc"`
	FullDesc     string        `json:"fullDesc"`
	Images       []string      `json:"images"`
	Benefits     []string      `json:"benefits"`
	Usage        string        `json:"usage"`
	Guarantee    string        `json:"guarantee"`
	DeliveryInfo string        `json:"deliveryInfo"`
	Offers       []model.Offer `json:"offers"`
}

// TrackVisitRequest records one storefront page view.
type TrackVisitRequest struct {
	Path string `json:"path"`
}

// RelanceStatsResponse reports follow-up campaign eligibility.
type RelanceStatsResponse struct {
	EligibleForRelance int `json:"eligibleForRelance"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}
