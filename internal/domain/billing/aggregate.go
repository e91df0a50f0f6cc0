package billing

import (
	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
)

// Aggregate folds the current-period and comparison-period reports into a
// BillingSummary. Totals are summed over the raw records of each report
// independently of the breakdowns, so a record missing a grouping key still
// counts toward the grand total. Comparison records whose key never appears
// in the current period are dropped rather than creating new rows.
func Aggregate(current, comparison entity.RawCostReport) entity.BillingSummary {
	summary := entity.BillingSummary{
		PeriodStart: current.PeriodStart,
		PeriodEnd:   current.PeriodEnd,
	}

	for _, rec := range current.Records {
		summary.TotalAmount += rec.Amount
	}
	for _, rec := range comparison.Records {
		summary.TotalPriorAmount += rec.Amount
	}

	services := newGrouping()
	for _, rec := range current.Records {
		if len(rec.Keys) == 0 {
			continue
		}
		services.add(rec.Keys[0], rec.Amount)
	}
	for _, rec := range comparison.Records {
		if len(rec.Keys) == 0 {
			continue
		}
		services.addPrior(rec.Keys[0], rec.Amount)
	}
	for _, key := range services.order {
		acc := services.byKey[key]
		summary.Services = append(summary.Services, entity.ServiceBilling{
			ServiceName: key,
			Amount:      acc.amount,
			PriorAmount: acc.prior,
		})
	}

	// Records without the account dimension skip this breakdown entirely.
	accounts := newGrouping()
	for _, rec := range current.Records {
		if len(rec.Keys) < 2 {
			continue
		}
		accounts.add(rec.Keys[1], rec.Amount)
	}
	for _, rec := range comparison.Records {
		if len(rec.Keys) < 2 {
			continue
		}
		accounts.addPrior(rec.Keys[1], rec.Amount)
	}
	for _, key := range accounts.order {
		acc := accounts.byKey[key]
		summary.Accounts = append(summary.Accounts, entity.AccountBilling{
			AccountID:   key,
			Amount:      acc.amount,
			PriorAmount: acc.prior,
		})
	}

	return summary
}

type accumulator struct {
	amount float64
	prior  float64
}

// grouping accumulates amounts per key while remembering first-seen order.
type grouping struct {
	byKey map[string]*accumulator
	order []string
}

func newGrouping() *grouping {
	return &grouping{byKey: make(map[string]*accumulator)}
}

func (g *grouping) add(key string, amount float64) {
	acc, ok := g.byKey[key]
	if !ok {
		acc = &accumulator{}
		g.byKey[key] = acc
		g.order = append(g.order, key)
	}
	acc.amount += amount
}

// addPrior adds to an existing key only; unknown keys are discarded.
func (g *grouping) addPrior(key string, amount float64) {
	if acc, ok := g.byKey[key]; ok {
		acc.prior += amount
	}
}
