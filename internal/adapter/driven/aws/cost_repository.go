package aws

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
	"github.com/hashupinc/aws-cost-notifier/internal/shared/types"
)

const metricAmortizedCost = "AmortizedCost"

// CostExplorerRepository implementa o CostRepository sobre a API
// GetCostAndUsage do Cost Explorer.
type CostExplorerRepository struct {
	clients *Clients
}

// NewCostExplorerRepository cria uma nova implementação do CostRepository.
func NewCostExplorerRepository(clients *Clients) repository.CostRepository {
	return &CostExplorerRepository{clients: clients}
}

// QueryCosts runs one combined query grouped by SERVICE and LINKED_ACCOUNT
// over the amortized cost metric and normalizes the first result period into
// a RawCostReport.
func (r *CostExplorerRepository) QueryCosts(ctx context.Context, start, end time.Time, granularity entity.Granularity) (entity.RawCostReport, error) {
	client, err := r.clients.CostExplorer(ctx)
	if err != nil {
		return entity.RawCostReport{}, err
	}

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Granularity: ceTypes.Granularity(granularity),
		Metrics:     []string{metricAmortizedCost},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("LINKED_ACCOUNT")},
		},
	}

	result, err := client.GetCostAndUsage(ctx, input)
	if err != nil {
		return entity.RawCostReport{}, fmt.Errorf("cost and usage query failed: %w", err)
	}

	return reportFromOutput(result)
}

// reportFromOutput validates the payload shape at the boundary. The query
// contract guarantees it, so any missing field is a DataShapeError and no
// partial report is produced.
func reportFromOutput(out *costexplorer.GetCostAndUsageOutput) (entity.RawCostReport, error) {
	if len(out.ResultsByTime) == 0 {
		return entity.RawCostReport{}, &types.DataShapeError{Field: "ResultsByTime", Err: errors.New("empty result set")}
	}

	first := out.ResultsByTime[0]
	if first.TimePeriod == nil || first.TimePeriod.Start == nil || first.TimePeriod.End == nil {
		return entity.RawCostReport{}, &types.DataShapeError{Field: "ResultsByTime[0].TimePeriod"}
	}

	periodStart, err := time.Parse("2006-01-02", *first.TimePeriod.Start)
	if err != nil {
		return entity.RawCostReport{}, &types.DataShapeError{Field: "TimePeriod.Start", Err: err}
	}
	periodEnd, err := time.Parse("2006-01-02", *first.TimePeriod.End)
	if err != nil {
		return entity.RawCostReport{}, &types.DataShapeError{Field: "TimePeriod.End", Err: err}
	}

	report := entity.RawCostReport{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Records:     make([]entity.CostRecord, 0, len(first.Groups)),
	}

	for i, group := range first.Groups {
		metric, ok := group.Metrics[metricAmortizedCost]
		if !ok || metric.Amount == nil {
			return entity.RawCostReport{}, &types.DataShapeError{
				Field: fmt.Sprintf("Groups[%d].Metrics.%s", i, metricAmortizedCost),
			}
		}
		amount, err := strconv.ParseFloat(*metric.Amount, 64)
		if err != nil {
			return entity.RawCostReport{}, &types.DataShapeError{
				Field: fmt.Sprintf("Groups[%d].Metrics.%s.Amount", i, metricAmortizedCost),
				Err:   err,
			}
		}
		report.Records = append(report.Records, entity.CostRecord{
			Keys:   group.Keys,
			Amount: amount,
		})
	}

	return report, nil
}
