package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	domainErrors "github.com/zendocod/zendo/internal/domain/errors"
	"github.com/zendocod/zendo/internal/domain/model"
	"github.com/zendocod/zendo/internal/domain/repository"
)

const (
	dateLayout  = "2006-01-02"
	defaultDays = 7
)

// ResolveWindow builds the statistics window from query parameters.
// Explicit start/end dates take precedence over the trailing days count.
func ResolveWindow(now time.Time, days int, startDate, endDate string) (model.StatsWindow, error) {
	today := now.UTC().Truncate(24 * time.Hour)

	if startDate != "" && endDate != "" {
		start, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return model.StatsWindow{}, fmt.Errorf("%w: invalid startDate", domainErrors.ErrValidation)
		}
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return model.StatsWindow{}, fmt.Errorf("%w: invalid endDate", domainErrors.ErrValidation)
		}
		if end.Before(start) {
			return model.StatsWindow{}, fmt.Errorf("%w: endDate before startDate", domainErrors.ErrValidation)
		}
		return model.StatsWindow{Start: start, End: end}, nil
	}

	if days < 1 {
		days = defaultDays
	}
	return model.StatsWindow{
		Start: today.AddDate(0, 0, -(days - 1)),
		End:   today,
	}, nil
}

// StatsUseCase aggregates dashboard statistics over a date window.
type StatsUseCase struct {
	orders repository.OrderRepository
	visits repository.VisitRepository
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(orders repository.OrderRepository, visits repository.VisitRepository) *StatsUseCase {
	return &StatsUseCase{orders: orders, visits: visits}
}

// Compute builds the statistics snapshot for the window. The sparkline covers
// every day of the window, zero-filled where nothing happened, and the change
// percentages compare against the immediately preceding window of equal
// length (zero change when the baseline is zero).
func (u *StatsUseCase) Compute(ctx context.Context, window model.StatsWindow) (*model.Stats, error) {
	aggregate, err := u.orders.Aggregate(ctx, window)
	if err != nil {
		return nil, err
	}
	visits, err := u.visits.CountInWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	previous := window.Previous()
	prevAggregate, err := u.orders.Aggregate(ctx, previous)
	if err != nil {
		return nil, err
	}
	prevVisits, err := u.visits.CountInWindow(ctx, previous)
	if err != nil {
		return nil, err
	}

	orderDays, err := u.orders.DailyCounts(ctx, window)
	if err != nil {
		return nil, err
	}
	visitDays, err := u.visits.DailyCounts(ctx, window)
	if err != nil {
		return nil, err
	}

	stats := &model.Stats{
		Visits:          visits,
		Orders:          aggregate.Orders,
		PendingOrders:   aggregate.Pending,
		Revenue:         aggregate.Revenue,
		UniqueCustomers: aggregate.UniqueCustomers,
		ConversionRate:  conversionRate(aggregate.Orders, visits),
		VisitsChange:    percentChange(float64(visits), float64(prevVisits)),
		OrdersChange:    percentChange(float64(aggregate.Orders), float64(prevAggregate.Orders)),
		RevenueChange:   percentChange(aggregate.Revenue, prevAggregate.Revenue),
		Sparkline:       buildSparkline(window, visitDays, orderDays),
		StartDate:       window.Start.Format(dateLayout),
		EndDate:         window.End.Format(dateLayout),
	}
	return stats, nil
}

func buildSparkline(window model.StatsWindow, visitDays, orderDays map[string]int) []model.SparkPoint {
	points := make([]model.SparkPoint, 0, window.Days())
	for day := window.Start; !day.After(window.End); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		points = append(points, model.SparkPoint{
			Date:   key,
			Visits: visitDays[key],
			Orders: orderDays[key],
		})
	}
	return points
}

func conversionRate(orders, visits int) float64 {
	if visits == 0 {
		return 0
	}
	return round2(float64(orders) / float64(visits) * 100)
}

func percentChange(current, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return round2((current - baseline) / baseline * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
