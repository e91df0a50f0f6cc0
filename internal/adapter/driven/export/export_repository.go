package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) ExportToCSV(summary entity.BillingSummary, accountID, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, accountID, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"AWS Account ID",
		"Period Start", "Period End",
		"Total (USD)", "Comparison Total (USD)",
		"Service Billing", "Account Billing",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV headers: %w", err)
	}

	record := []string{
		accountID,
		summary.PeriodStart.Format("2006-01-02"),
		summary.PeriodEnd.Format("2006-01-02"),
		fmt.Sprintf("%.2f", summary.TotalAmount),
		fmt.Sprintf("%.2f", summary.TotalPriorAmount),
		serviceCell(summary.Services),
		accountCell(summary.Accounts),
	}
	if err := writer.Write(record); err != nil {
		return "", fmt.Errorf("error writing CSV record: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(summary entity.BillingSummary, accountID, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, accountID, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	payload := struct {
		AccountID   string                `json:"account_id,omitempty"`
		GeneratedAt time.Time             `json:"generated_at"`
		Summary     entity.BillingSummary `json:"summary"`
	}{
		AccountID:   accountID,
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(summary entity.BillingSummary, accountID, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, accountID, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, title)
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	header := fmt.Sprintf("AWS Billing Report  %s ~ %s",
		summary.PeriodStart.Format("2006-01-02"),
		summary.PeriodEnd.AddDate(0, 0, -1).Format("2006-01-02"))
	if accountID != "" {
		header = fmt.Sprintf("%s  (account %s)", header, accountID)
	}
	pdf.CellFormat(190, 10, tr(header), "", 1, "C", true, 0, "")
	pdf.Ln(6)

	drawSection("Totals", fmt.Sprintf("Current period: %.2f USD\nComparison period: %+.2f USD",
		summary.TotalAmount, summary.TotalPriorAmount))
	drawSection("Service Billing Details", serviceCell(summary.Services))
	drawSection("Account Billing Details", accountCell(summary.Accounts))

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func serviceCell(services []entity.ServiceBilling) string {
	var b strings.Builder
	for _, svc := range services {
		fmt.Fprintf(&b, "%s: $%.2f (%+.2f)\n", svc.ServiceName, svc.Amount, svc.PriorAmount)
	}
	return strings.TrimSpace(b.String())
}

func accountCell(accounts []entity.AccountBilling) string {
	var b strings.Builder
	for _, acct := range accounts {
		fmt.Fprintf(&b, "%s: $%.2f (%+.2f)\n", acct.AccountID, acct.Amount, acct.PriorAmount)
	}
	return strings.TrimSpace(b.String())
}

func generateFilename(base, outputDir, accountID, ext string) (string, error) {
	if base == "" {
		base = "aws-billing"
	}
	if accountID == "" {
		accountID = "unknown"
	}

	timestamp := time.Now().Format("20060102-1504")
	name := fmt.Sprintf("%s-%s-%s.%s", base, accountID, timestamp, ext)

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return "", fmt.Errorf("error creating output directory: %w", err)
		}
		return filepath.Join(outputDir, name), nil
	}
	return name, nil
}
