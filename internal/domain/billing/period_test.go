package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentPeriod(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid month",
			today:     date(2024, time.March, 15),
			wantStart: date(2024, time.March, 1),
			wantEnd:   date(2024, time.March, 15),
		},
		{
			name:      "last day of month",
			today:     date(2024, time.March, 31),
			wantStart: date(2024, time.March, 1),
			wantEnd:   date(2024, time.March, 31),
		},
		{
			name:      "first of month falls back to previous month",
			today:     date(2024, time.March, 1),
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.March, 1),
		},
		{
			name:      "january 1st rolls into previous december",
			today:     date(2024, time.January, 1),
			wantStart: date(2023, time.December, 1),
			wantEnd:   date(2024, time.January, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CurrentPeriod(tt.today)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.True(t, start.Before(end), "start must precede end")
		})
	}
}

func TestCurrentPeriodIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, time.March, 15, 23, 59, 12, 0, time.UTC)
	start, end := CurrentPeriod(now)
	assert.Equal(t, date(2024, time.March, 1), start)
	assert.Equal(t, date(2024, time.March, 15), end)
}

func TestComparisonPeriod(t *testing.T) {
	start, end := ComparisonPeriod(date(2024, time.March, 15))
	assert.Equal(t, date(2024, time.March, 14), start)
	assert.Equal(t, date(2024, time.March, 15), end)

	// Crosses month and year boundaries through AddDate.
	start, end = ComparisonPeriod(date(2024, time.January, 1))
	assert.Equal(t, date(2023, time.December, 31), start)
	assert.Equal(t, date(2024, time.January, 1), end)
}
