package billing

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
)

const (
	noServiceChargeLine = "No charge this period at present."
	noAccountChargeLine = "No account charge this period at present."
)

// Formatter renders a BillingSummary into a notification title and body.
// It is a pure function of its inputs: the same summary and name map always
// produce the same message.
type Formatter struct {
	// Label, when set, prefixes the title as "[label] ".
	Label string
}

// Format builds the title and the line-oriented body. The displayed end date
// is the day before PeriodEnd because the period end is exclusive. Amounts
// are rounded to cents before the zero check, so a row that rounds to 0.00
// is suppressed even when the raw amount is nonzero.
func (f Formatter) Format(summary entity.BillingSummary, names entity.AccountNameMap) (string, string) {
	prefix := ""
	if f.Label != "" {
		prefix = fmt.Sprintf("[%s] ", f.Label)
	}

	displayEnd := summary.PeriodEnd.AddDate(0, 0, -1)
	title := fmt.Sprintf("%sAWS Billing Notification (%s~%s) : %.2f USD (%+.2f USD)",
		prefix,
		summary.PeriodStart.Format("01/02"),
		displayEnd.Format("01/02"),
		summary.TotalAmount,
		summary.TotalPriorAmount,
	)

	var lines []string

	var serviceLines []string
	for _, svc := range summary.Services {
		amount := roundCents(svc.Amount)
		if amount == 0 {
			continue
		}
		serviceLines = append(serviceLines,
			fmt.Sprintf("・%s: %.2f USD (%+.2f USD)", svc.ServiceName, amount, svc.PriorAmount))
	}
	if len(serviceLines) == 0 {
		lines = append(lines, noServiceChargeLine)
	} else {
		lines = append(lines, "Service Billing Details:")
		lines = append(lines, serviceLines...)
	}

	lines = append(lines, "", "Account Billing Details:")
	accountLines := 0
	for _, acct := range summary.Accounts {
		amount := roundCents(acct.Amount)
		if amount == 0 {
			continue
		}
		display := acct.AccountID
		if name, ok := names[acct.AccountID]; ok {
			display = fmt.Sprintf("%s (%s)", name, acct.AccountID)
		}
		lines = append(lines,
			fmt.Sprintf("・%s: %.2f USD (%+.2f USD)", display, amount, acct.PriorAmount))
		accountLines++
	}
	if accountLines == 0 {
		lines = append(lines, noAccountChargeLine)
	}

	return title, strings.Join(lines, "\n")
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
