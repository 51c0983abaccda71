package model

import "time"

// Visit is a raw storefront page-view event consumed by reporting.
type Visit struct {
	ID        int64
	Path      string
	CreatedAt time.Time
}

// StatsWindow is a closed date range over which statistics are computed.
// Both bounds are truncated to day granularity by the caller.
type StatsWindow struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days covered by the window.
func (w StatsWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Previous returns the immediately preceding window of equal length.
func (w StatsWindow) Previous() StatsWindow {
	span := w.End.Sub(w.Start) + 24*time.Hour
	return StatsWindow{Start: w.Start.Add(-span), End: w.End.Add(-span)}
}

// SparkPoint is one day bucket of the dashboard sparkline.
type SparkPoint struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
	Orders int    `json:"orders"`
}

// Stats is the aggregated dashboard snapshot over a window.
type Stats struct {
	Visits          int          `json:"visits"`
	Orders          int          `json:"orders"`
	PendingOrders   int          `json:"pendingOrders"`
	Revenue         float64      `json:"revenue"`
	UniqueCustomers int          `json:"uniqueCustomers"`
	ConversionRate  float64      `json:"conversionRate"`
	VisitsChange    float64      `json:"visitsChange"`
	OrdersChange    float64      `json:"ordersChange"`
	RevenueChange   float64      `json:"revenueChange"`
	Sparkline       []SparkPoint `json:"sparkline"`
	StartDate       string       `json:"startDate"`
	EndDate         string       `json:"endDate"`
}
