package repository

import (
	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
)

// ExportRepository writes a billing summary to report files. Each method
// returns the absolute path of the file it created.
type ExportRepository interface {
	ExportToCSV(summary entity.BillingSummary, accountID, filename, outputDir string) (string, error)
	ExportToJSON(summary entity.BillingSummary, accountID, filename, outputDir string) (string, error)
	ExportToPDF(summary entity.BillingSummary, accountID, filename, outputDir string) (string, error)
}
