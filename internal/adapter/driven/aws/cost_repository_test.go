package aws

import (
	"testing"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashupinc/aws-cost-notifier/internal/shared/types"
)

func ceOutput(groups ...ceTypes.Group) *costexplorer.GetCostAndUsageOutput {
	return &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []ceTypes.ResultByTime{
			{
				TimePeriod: &ceTypes.DateInterval{
					Start: awssdk.String("2024-03-01"),
					End:   awssdk.String("2024-03-15"),
				},
				Groups: groups,
			},
		},
	}
}

func ceGroup(amount string, keys ...string) ceTypes.Group {
	return ceTypes.Group{
		Keys: keys,
		Metrics: map[string]ceTypes.MetricValue{
			metricAmortizedCost: {Amount: awssdk.String(amount), Unit: awssdk.String("USD")},
		},
	}
}

func TestReportFromOutput(t *testing.T) {
	out := ceOutput(
		ceGroup("10.50", "Amazon EC2", "111111111111"),
		ceGroup("0.004", "Amazon S3", "222222222222"),
	)

	report, err := reportFromOutput(out)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), report.PeriodStart)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), report.PeriodEnd)
	require.Len(t, report.Records, 2)
	assert.Equal(t, []string{"Amazon EC2", "111111111111"}, report.Records[0].Keys)
	assert.InDelta(t, 10.50, report.Records[0].Amount, 1e-9)
	assert.InDelta(t, 0.004, report.Records[1].Amount, 1e-9)
}

func TestReportFromOutputEmptyResults(t *testing.T) {
	_, err := reportFromOutput(&costexplorer.GetCostAndUsageOutput{})

	var shapeErr *types.DataShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "ResultsByTime", shapeErr.Field)
}

func TestReportFromOutputMissingMetric(t *testing.T) {
	out := ceOutput(ceTypes.Group{Keys: []string{"Amazon EC2", "111"}})

	_, err := reportFromOutput(out)

	var shapeErr *types.DataShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Contains(t, shapeErr.Field, "Groups[0]")
}

func TestReportFromOutputUnparsableAmount(t *testing.T) {
	out := ceOutput(ceGroup("not-a-number", "Amazon EC2", "111"))

	_, err := reportFromOutput(out)

	var shapeErr *types.DataShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Contains(t, shapeErr.Field, "Amount")
}

func TestReportFromOutputMissingTimePeriod(t *testing.T) {
	out := &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []ceTypes.ResultByTime{{}},
	}

	_, err := reportFromOutput(out)

	var shapeErr *types.DataShapeError
	require.ErrorAs(t, err, &shapeErr)
}
