package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/billing"
	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
	"github.com/hashupinc/aws-cost-notifier/internal/shared/types"
)

// NotifyUseCase runs one billing notification cycle: resolve the reporting
// periods, query the cost source for both, aggregate, format, and fan the
// message out to the configured channels.
type NotifyUseCase struct {
	costRepo    repository.CostRepository
	accountRepo repository.AccountRepository
	console     types.ConsoleInterface
	clock       func() time.Time
}

// NewNotifyUseCase creates a new notify use case.
func NewNotifyUseCase(
	costRepo repository.CostRepository,
	accountRepo repository.AccountRepository,
	console types.ConsoleInterface,
) *NotifyUseCase {
	return &NotifyUseCase{
		costRepo:    costRepo,
		accountRepo: accountRepo,
		console:     console,
		clock:       time.Now,
	}
}

// WithClock returns a copy using the given time source. Used by the --date
// flag and by tests.
func (uc *NotifyUseCase) WithClock(clock func() time.Time) *NotifyUseCase {
	clone := *uc
	clone.clock = clock
	return &clone
}

// BuildNotification queries the current period (month to date, monthly
// granularity) and the comparison period (most recent full day, daily
// granularity), aggregates them, and renders the message. A denied account
// directory degrades to raw account ids; any other failure is fatal.
func (uc *NotifyUseCase) BuildNotification(ctx context.Context, label string) (string, string, entity.BillingSummary, error) {
	today := uc.clock().UTC()

	currentStart, currentEnd := billing.CurrentPeriod(today)
	comparisonStart, comparisonEnd := billing.ComparisonPeriod(today)

	current, err := uc.costRepo.QueryCosts(ctx, currentStart, currentEnd, entity.GranularityMonthly)
	if err != nil {
		return "", "", entity.BillingSummary{}, fmt.Errorf("querying current period: %w", err)
	}

	comparison, err := uc.costRepo.QueryCosts(ctx, comparisonStart, comparisonEnd, entity.GranularityDaily)
	if err != nil {
		return "", "", entity.BillingSummary{}, fmt.Errorf("querying comparison period: %w", err)
	}

	summary := billing.Aggregate(current, comparison)

	names, err := uc.accountRepo.ListAccountNames(ctx)
	if err != nil {
		if !errors.Is(err, types.ErrDirectoryAccessDenied) {
			return "", "", entity.BillingSummary{}, err
		}
		uc.console.LogWarning("Access denied to list accounts. Falling back to using account IDs.")
		names = entity.AccountNameMap{}
	}

	formatter := billing.Formatter{Label: label}
	title, body := formatter.Format(summary, names)
	return title, body, summary, nil
}

// Dispatch sends the message to each channel in order. The first failing
// channel aborts the remaining sequence and its error propagates wrapped as
// a TransportError. An empty channel list is a configuration warning, not a
// failure.
func (uc *NotifyUseCase) Dispatch(ctx context.Context, title, body string, channels []repository.Notifier) error {
	if len(channels) == 0 {
		uc.console.LogWarning("%v", types.ErrNoDestination)
		return nil
	}

	for _, channel := range channels {
		if err := channel.Notify(ctx, title, body); err != nil {
			return &types.TransportError{Channel: channel.Name(), Err: err}
		}
		uc.console.LogInfo("Posted billing notification via %s", channel.Name())
	}
	return nil
}

// Run executes one full notification cycle.
func (uc *NotifyUseCase) Run(ctx context.Context, cfg *types.Config, channels []repository.Notifier) error {
	title, body, _, err := uc.BuildNotification(ctx, cfg.AccountLabel)
	if err != nil {
		return err
	}
	return uc.Dispatch(ctx, title, body, channels)
}
