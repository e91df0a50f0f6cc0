package entity

import "time"

// CostRecord is a single grouped row returned by the cost source.
// Keys follow the requested grouping order: service name first, linked
// account id second when the record carries the account dimension.
type CostRecord struct {
	Keys   []string `json:"keys"`
	Amount float64  `json:"amount"`
}

// RawCostReport is the normalized result of one cost query.
// PeriodEnd is exclusive and never equals PeriodStart.
type RawCostReport struct {
	PeriodStart time.Time    `json:"period_start"`
	PeriodEnd   time.Time    `json:"period_end"`
	Records     []CostRecord `json:"records"`
}

// ServiceBilling is the aggregated amount for one service, with the amount
// of the comparison period alongside it.
type ServiceBilling struct {
	ServiceName string  `json:"service_name"`
	Amount      float64 `json:"amount"`
	PriorAmount float64 `json:"prior_amount"`
}

// AccountBilling is the aggregated amount for one linked account.
type AccountBilling struct {
	AccountID   string  `json:"account_id"`
	Amount      float64 `json:"amount"`
	PriorAmount float64 `json:"prior_amount"`
}

// BillingSummary is the output of the aggregation step: totals for both
// periods plus the per-service and per-account breakdowns, each row keeping
// the order of its first appearance in the current-period records.
type BillingSummary struct {
	PeriodStart      time.Time        `json:"period_start"`
	PeriodEnd        time.Time        `json:"period_end"`
	TotalAmount      float64          `json:"total_amount"`
	TotalPriorAmount float64          `json:"total_prior_amount"`
	Services         []ServiceBilling `json:"services"`
	Accounts         []AccountBilling `json:"accounts"`
}

// AccountNameMap maps linked account ids to display names. An empty map is
// valid and means names could not be resolved.
type AccountNameMap map[string]string

// Granularity selects the time resolution of a cost query.
type Granularity string

const (
	GranularityDaily   Granularity = "DAILY"
	GranularityMonthly Granularity = "MONTHLY"
)
