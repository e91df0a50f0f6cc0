package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
	"github.com/hashupinc/aws-cost-notifier/internal/shared/types"
)

type fakeCostRepo struct {
	reports map[entity.Granularity]entity.RawCostReport
	errs    map[entity.Granularity]error
	calls   []costCall
}

type costCall struct {
	start, end  time.Time
	granularity entity.Granularity
}

func (f *fakeCostRepo) QueryCosts(ctx context.Context, start, end time.Time, granularity entity.Granularity) (entity.RawCostReport, error) {
	f.calls = append(f.calls, costCall{start: start, end: end, granularity: granularity})
	if err := f.errs[granularity]; err != nil {
		return entity.RawCostReport{}, err
	}
	report := f.reports[granularity]
	report.PeriodStart = start
	report.PeriodEnd = end
	return report, nil
}

type fakeAccountRepo struct {
	names entity.AccountNameMap
	err   error
}

func (f *fakeAccountRepo) ListAccountNames(ctx context.Context) (entity.AccountNameMap, error) {
	return f.names, f.err
}

type fakeNotifier struct {
	name   string
	err    error
	titles []string
}

func (f *fakeNotifier) Name() string { return f.name }

func (f *fakeNotifier) Notify(ctx context.Context, title, body string) error {
	if f.err != nil {
		return f.err
	}
	f.titles = append(f.titles, title)
	return nil
}

type fakeConsole struct {
	warnings []string
	infos    []string
}

func (f *fakeConsole) Print(a ...interface{})                 {}
func (f *fakeConsole) Printf(format string, a ...interface{}) {}
func (f *fakeConsole) Println(a ...interface{})               {}

func (f *fakeConsole) LogInfo(format string, a ...interface{}) {
	f.infos = append(f.infos, fmt.Sprintf(format, a...))
}

func (f *fakeConsole) LogWarning(format string, a ...interface{}) {
	f.warnings = append(f.warnings, fmt.Sprintf(format, a...))
}

func (f *fakeConsole) LogError(format string, a ...interface{})   {}
func (f *fakeConsole) LogSuccess(format string, a ...interface{}) {}

func (f *fakeConsole) CreateTable() types.TableInterface { return nil }

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 9, 30, 0, 0, time.UTC)
	}
}

func TestBuildNotificationQueriesBothPeriods(t *testing.T) {
	costRepo := &fakeCostRepo{
		reports: map[entity.Granularity]entity.RawCostReport{
			entity.GranularityMonthly: {Records: []entity.CostRecord{{Keys: []string{"Amazon EC2", "111111111111"}, Amount: 10.50}}},
			entity.GranularityDaily:   {Records: []entity.CostRecord{{Keys: []string{"Amazon EC2", "111111111111"}, Amount: 1.00}}},
		},
	}
	accountRepo := &fakeAccountRepo{names: entity.AccountNameMap{"111111111111": "prod"}}
	console := &fakeConsole{}

	uc := NewNotifyUseCase(costRepo, accountRepo, console).WithClock(fixedClock(2024, time.March, 14))

	title, body, summary, err := uc.BuildNotification(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, costRepo.calls, 2)
	assert.Equal(t, entity.GranularityMonthly, costRepo.calls[0].granularity)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), costRepo.calls[0].start)
	assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), costRepo.calls[0].end)
	assert.Equal(t, entity.GranularityDaily, costRepo.calls[1].granularity)
	assert.Equal(t, time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC), costRepo.calls[1].start)

	assert.Equal(t, "AWS Billing Notification (03/01~03/13) : 10.50 USD (+1.00 USD)", title)
	assert.Contains(t, body, "prod (111111111111): 10.50 USD (+1.00 USD)")
	assert.InDelta(t, 10.50, summary.TotalAmount, 1e-9)
	assert.Empty(t, console.warnings)
}

func TestBuildNotificationCurrentQueryFailure(t *testing.T) {
	queryErr := errors.New("throttled")
	costRepo := &fakeCostRepo{errs: map[entity.Granularity]error{entity.GranularityMonthly: queryErr}}

	uc := NewNotifyUseCase(costRepo, &fakeAccountRepo{}, &fakeConsole{}).WithClock(fixedClock(2024, time.March, 14))

	_, _, _, err := uc.BuildNotification(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, queryErr)
	assert.Contains(t, err.Error(), "current period")
}

func TestBuildNotificationAccessDeniedFallsBackToIDs(t *testing.T) {
	costRepo := &fakeCostRepo{
		reports: map[entity.Granularity]entity.RawCostReport{
			entity.GranularityMonthly: {Records: []entity.CostRecord{{Keys: []string{"Amazon EC2", "111111111111"}, Amount: 5.00}}},
			entity.GranularityDaily:   {},
		},
	}
	accountRepo := &fakeAccountRepo{err: fmt.Errorf("%w: no organizations access", types.ErrDirectoryAccessDenied)}
	console := &fakeConsole{}

	uc := NewNotifyUseCase(costRepo, accountRepo, console).WithClock(fixedClock(2024, time.March, 14))

	_, body, _, err := uc.BuildNotification(context.Background(), "")
	require.NoError(t, err)
	assert.Contains(t, body, "111111111111: 5.00 USD")
	require.Len(t, console.warnings, 1)
}

func TestBuildNotificationDirectoryErrorIsFatal(t *testing.T) {
	costRepo := &fakeCostRepo{
		reports: map[entity.Granularity]entity.RawCostReport{
			entity.GranularityMonthly: {},
			entity.GranularityDaily:   {},
		},
	}
	dirErr := errors.New("organizations unavailable")

	uc := NewNotifyUseCase(costRepo, &fakeAccountRepo{err: dirErr}, &fakeConsole{}).WithClock(fixedClock(2024, time.March, 14))

	_, _, _, err := uc.BuildNotification(context.Background(), "")
	assert.ErrorIs(t, err, dirErr)
}

func TestDispatchNoChannelsWarnsOnly(t *testing.T) {
	console := &fakeConsole{}
	uc := NewNotifyUseCase(&fakeCostRepo{}, &fakeAccountRepo{}, console)

	err := uc.Dispatch(context.Background(), "title", "body", nil)
	require.NoError(t, err)
	require.Len(t, console.warnings, 1)
	assert.Contains(t, console.warnings[0], types.ErrNoDestination.Error())
}

func TestDispatchAbortsOnFirstFailure(t *testing.T) {
	first := &fakeNotifier{name: "sns"}
	second := &fakeNotifier{name: "slack", err: errors.New("webhook returned 500")}
	third := &fakeNotifier{name: "line"}
	console := &fakeConsole{}

	uc := NewNotifyUseCase(&fakeCostRepo{}, &fakeAccountRepo{}, console)

	channels := []repository.Notifier{first, second, third}
	err := uc.Dispatch(context.Background(), "title", "body", channels)
	var transportErr *types.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "slack", transportErr.Channel)

	assert.Len(t, first.titles, 1)
	assert.Empty(t, third.titles)
	require.Len(t, console.infos, 1)
}
