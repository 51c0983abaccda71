package repository

import (
	"context"

	"github.com/zendocod/zendo/internal/domain/model"
)

// VisitRepository stores raw storefront visit events.
type VisitRepository interface {
	Record(ctx context.Context, path string) error
	CountInWindow(ctx context.Context, window model.StatsWindow) (int, error)
	DailyCounts(ctx context.Context, window model.StatsWindow) (map[string]int, error)
}
