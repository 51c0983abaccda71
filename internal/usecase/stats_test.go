package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/zendocod/zendo/internal/domain/errors"
	"github.com/zendocod/zendo/internal/domain/model"
	testhelpers "github.com/zendocod/zendo/internal/test"
	"github.com/zendocod/zendo/internal/usecase"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveWindowDefaultsToTrailingWeek(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	window, err := usecase.ResolveWindow(now, 0, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := window.Start.Format("2006-01-02"); got != "2026-03-04" {
		t.Fatalf("unexpected window start %s", got)
	}
	if got := window.End.Format("2006-01-02"); got != "2026-03-10" {
		t.Fatalf("unexpected window end %s", got)
	}
	if window.Days() != 7 {
		t.Fatalf("expected 7 day window, got %d", window.Days())
	}
}

func TestResolveWindowExplicitDatesWin(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	window, err := usecase.ResolveWindow(now, 30, "2026-01-01", "2026-01-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if window.Days() != 5 {
		t.Fatalf("expected 5 day window, got %d", window.Days())
	}
}

func TestResolveWindowRejectsBadDates(t *testing.T) {
	now := time.Now()

	if _, err := usecase.ResolveWindow(now, 0, "not-a-date", "2026-01-05"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := usecase.ResolveWindow(now, 0, "2026-01-05", "2026-01-01"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for inverted range, got %v", err)
	}
}

func TestStatsWindowPrevious(t *testing.T) {
	window := model.StatsWindow{Start: day("2026-03-04"), End: day("2026-03-10")}

	previous := window.Previous()
	if got := previous.Start.Format("2006-01-02"); got != "2026-02-25" {
		t.Fatalf("unexpected previous start %s", got)
	}
	if got := previous.End.Format("2006-01-02"); got != "2026-03-03" {
		t.Fatalf("unexpected previous end %s", got)
	}
	if previous.Days() != window.Days() {
		t.Fatalf("previous window must be the same length, got %d", previous.Days())
	}
}

func TestStatsComputeSparklineCoversEveryDay(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["o1"] = &model.Order{
		ID: "o1", Phone: "+2250700000001", Status: model.OrderStatusPending,
		TotalAmount: 14000, CreatedAt: day("2026-03-05"),
	}
	orders.Orders["o2"] = &model.Order{
		ID: "o2", Phone: "+2250700000002", Status: model.OrderStatusDelivered,
		TotalAmount: 9900, CreatedAt: day("2026-03-05"),
	}
	visits := &testhelpers.VisitRepositoryStub{
		Total:  40,
		Counts: map[string]int{"2026-03-05": 25, "2026-03-07": 15},
	}
	uc := usecase.NewStatsUseCase(orders, visits)

	window := model.StatsWindow{Start: day("2026-03-04"), End: day("2026-03-10")}
	stats, err := uc.Compute(context.Background(), window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stats.Sparkline) != 7 {
		t.Fatalf("expected 7 sparkline points, got %d", len(stats.Sparkline))
	}
	if stats.Sparkline[0].Date != "2026-03-04" || stats.Sparkline[6].Date != "2026-03-10" {
		t.Fatalf("sparkline bounds wrong: %s .. %s", stats.Sparkline[0].Date, stats.Sparkline[6].Date)
	}
	if stats.Sparkline[1].Orders != 2 || stats.Sparkline[1].Visits != 25 {
		t.Fatalf("unexpected 2026-03-05 bucket %+v", stats.Sparkline[1])
	}
	if stats.Sparkline[2].Orders != 0 || stats.Sparkline[2].Visits != 0 {
		t.Fatalf("empty day must be zero-filled, got %+v", stats.Sparkline[2])
	}
	if stats.Orders != 2 || stats.PendingOrders != 1 {
		t.Fatalf("unexpected order counts %d/%d", stats.Orders, stats.PendingOrders)
	}
	if stats.Revenue != 23900 {
		t.Fatalf("unexpected revenue %v", stats.Revenue)
	}
	if stats.UniqueCustomers != 2 {
		t.Fatalf("unexpected unique customers %d", stats.UniqueCustomers)
	}
	if stats.ConversionRate != 5 {
		t.Fatalf("expected 2/40 = 5%% conversion, got %v", stats.ConversionRate)
	}
}

func TestStatsComputeZeroVisitsZeroConversion(t *testing.T) {
	uc := usecase.NewStatsUseCase(testhelpers.NewOrderRepositoryStub(), &testhelpers.VisitRepositoryStub{})

	window := model.StatsWindow{Start: day("2026-03-04"), End: day("2026-03-04")}
	stats, err := uc.Compute(context.Background(), window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.ConversionRate != 0 {
		t.Fatalf("expected zero conversion without visits, got %v", stats.ConversionRate)
	}
	if stats.VisitsChange != 0 || stats.OrdersChange != 0 || stats.RevenueChange != 0 {
		t.Fatalf("expected zero change against empty baseline, got %+v", stats)
	}
}

func TestStatsComputeChangeAgainstPreviousWindow(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.Orders["now"] = &model.Order{
		ID: "now", Phone: "a", Status: model.OrderStatusNew,
		TotalAmount: 20000, CreatedAt: day("2026-03-10"),
	}
	orders.Orders["before"] = &model.Order{
		ID: "before", Phone: "b", Status: model.OrderStatusNew,
		TotalAmount: 10000, CreatedAt: day("2026-03-09"),
	}
	window := model.StatsWindow{Start: day("2026-03-10"), End: day("2026-03-10")}
	visits := &testhelpers.VisitRepositoryStub{
		CountFn: func(w model.StatsWindow) (int, error) {
			if w.Start.Equal(window.Start) {
				return 30, nil
			}
			return 20, nil
		},
	}
	uc := usecase.NewStatsUseCase(orders, visits)

	stats, err := uc.Compute(context.Background(), window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.VisitsChange != 50 {
		t.Fatalf("expected +50%% visits, got %v", stats.VisitsChange)
	}
	if stats.RevenueChange != 100 {
		t.Fatalf("expected +100%% revenue, got %v", stats.RevenueChange)
	}
	if stats.OrdersChange != 0 {
		t.Fatalf("expected flat order change, got %v", stats.OrdersChange)
	}
}
