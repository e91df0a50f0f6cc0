package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
)

func sampleSummary() entity.BillingSummary {
	return entity.BillingSummary{
		PeriodStart:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		TotalAmount:      10.50,
		TotalPriorAmount: 1.00,
		Services:         []entity.ServiceBilling{{ServiceName: "Amazon EC2", Amount: 10.50, PriorAmount: 1.00}},
		Accounts:         []entity.AccountBilling{{AccountID: "111111111111", Amount: 10.50, PriorAmount: 1.00}},
	}
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportToCSV(sampleSummary(), "111111111111", "billing", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".csv"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "AWS Account ID")
	assert.Contains(t, content, "10.50")
	assert.Contains(t, content, "Amazon EC2: $10.50 (+1.00)")
}

func TestExportToJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportToJSON(sampleSummary(), "111111111111", "billing", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload struct {
		AccountID string                `json:"account_id"`
		Summary   entity.BillingSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "111111111111", payload.AccountID)
	assert.InDelta(t, 10.50, payload.Summary.TotalAmount, 1e-9)
	require.Len(t, payload.Summary.Services, 1)
}

func TestExportToPDF(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportToPDF(sampleSummary(), "", "billing", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Equal(t, ".pdf", filepath.Ext(path))
}
