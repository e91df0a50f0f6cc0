package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	awsAdapter "github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/aws"
	"github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/notify"
	"github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/secrets"
	"github.com/hashupinc/aws-cost-notifier/internal/application/usecase"
	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
	"github.com/hashupinc/aws-cost-notifier/internal/shared/types"
	"github.com/hashupinc/aws-cost-notifier/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	notifyUseCase *usecase.NotifyUseCase
	configRepo    repository.ConfigRepository
	exportRepo    repository.ExportRepository
	identityRepo  repository.IdentityRepository
	clients       *awsAdapter.Clients
	console       types.ConsoleInterface
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "cost-notifier",
		Short:   "AWS Cost Notifier CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Notifier version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Build the notification and print it without sending to any channel")
	rootCmd.PersistentFlags().String("date", "", "Run as if today were this date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	dryRun, _ := app.rootCmd.Flags().GetBool("dry-run")
	date, _ := app.rootCmd.Flags().GetString("date")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		DryRun:     dryRun,
		Date:       date,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
	}, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	cfg, err := app.configRepo.Load(cliArgs.ConfigFile)
	if err != nil {
		return err
	}

	// Flags override file and environment for the export settings.
	if cliArgs.ReportName != "" {
		cfg.ReportName = cliArgs.ReportName
	}
	if len(cliArgs.ReportType) > 0 {
		cfg.ReportType = cliArgs.ReportType
	}
	if cliArgs.Dir != "" {
		cfg.Dir = cliArgs.Dir
	}

	uc := app.notifyUseCase
	if cliArgs.Date != "" {
		asOf, err := time.Parse("2006-01-02", cliArgs.Date)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", cliArgs.Date, err)
		}
		uc = uc.WithClock(func() time.Time { return asOf.UTC() })
	}

	ctx := context.Background()

	title, body, summary, err := uc.BuildNotification(ctx, cfg.AccountLabel)
	if err != nil {
		return err
	}

	if len(cfg.ReportType) > 0 {
		app.exportReports(ctx, cfg, summary)
	}

	if cliArgs.DryRun {
		app.printDryRun(title, body, summary)
		return nil
	}

	secretRepo := secrets.NewExtensionClient(cfg.SecretsPort)
	channels := notify.BuildChannels(cfg, app.clients, secretRepo)
	return uc.Dispatch(ctx, title, body, channels)
}

// exportReports writes the requested report files. Export failures do not
// abort the notification run.
func (app *CLIApp) exportReports(ctx context.Context, cfg *types.Config, summary entity.BillingSummary) {
	accountID := cfg.AccountLabel
	if accountID == "" {
		id, err := app.identityRepo.CallerAccountID(ctx)
		if err != nil {
			app.console.LogWarning("Could not resolve caller account: %v", err)
			id = "unknown"
		}
		accountID = id
	}

	for _, reportType := range cfg.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = app.exportRepo.ExportToCSV(summary, accountID, cfg.ReportName, cfg.Dir)
		case "json":
			path, err = app.exportRepo.ExportToJSON(summary, accountID, cfg.ReportName, cfg.Dir)
		case "pdf":
			path, err = app.exportRepo.ExportToPDF(summary, accountID, cfg.ReportName, cfg.Dir)
		default:
			app.console.LogWarning("Unknown report type: %s", reportType)
			continue
		}
		if err != nil {
			app.console.LogError("Failed to export %s report: %v", reportType, err)
			continue
		}
		app.console.LogSuccess("Report saved to %s", path)
	}
}

// printDryRun prints the rendered notification and a cost breakdown table.
func (app *CLIApp) printDryRun(title, body string, summary entity.BillingSummary) {
	app.console.Println()
	app.console.Println(title)
	app.console.Println()
	app.console.Println(body)
	app.console.Println()

	table := app.console.CreateTable()
	table.AddColumn("Service")
	table.AddColumn("Current (USD)")
	table.AddColumn("Comparison (USD)")
	for _, svc := range summary.Services {
		table.AddRow(svc.ServiceName, fmt.Sprintf("%.2f", svc.Amount), fmt.Sprintf("%+.2f", svc.PriorAmount))
	}
	app.console.Println(table.Render())

	if len(summary.Accounts) > 0 {
		accounts := app.console.CreateTable()
		accounts.AddColumn("Account")
		accounts.AddColumn("Current (USD)")
		accounts.AddColumn("Comparison (USD)")
		for _, acct := range summary.Accounts {
			accounts.AddRow(acct.AccountID, fmt.Sprintf("%.2f", acct.Amount), fmt.Sprintf("%+.2f", acct.PriorAmount))
		}
		app.console.Println(accounts.Render())
	}

	app.console.LogInfo("Dry run: nothing was sent.")
}

// SetDependencies injeta as dependências da aplicação CLI.
func (app *CLIApp) SetDependencies(
	notifyUseCase *usecase.NotifyUseCase,
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	identityRepo repository.IdentityRepository,
	clients *awsAdapter.Clients,
	console types.ConsoleInterface,
) {
	app.notifyUseCase = notifyUseCase
	app.configRepo = configRepo
	app.exportRepo = exportRepo
	app.identityRepo = identityRepo
	app.clients = clients
	app.console = console
}
