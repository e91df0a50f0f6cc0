package repository

import (
	"context"
	"time"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
)

// CostRepository defines the interface to the cost-and-usage source.
type CostRepository interface {
	// QueryCosts returns the grouped cost records for the half-open range
	// [start, end). The source rejects start == end.
	QueryCosts(ctx context.Context, start, end time.Time, granularity entity.Granularity) (entity.RawCostReport, error)
}
