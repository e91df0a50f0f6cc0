package main

import (
	"fmt"
	"os"

	"github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/aws"
	"github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/config"
	"github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/export"
	"github.com/hashupinc/aws-cost-notifier/internal/adapter/driving/cli"
	"github.com/hashupinc/aws-cost-notifier/internal/application/usecase"
	"github.com/hashupinc/aws-cost-notifier/pkg/console"
	"github.com/hashupinc/aws-cost-notifier/pkg/version"
)

func main() {
	app := cli.NewCLIApp(version.Version)

	clients := aws.NewClients()
	costRepo := aws.NewCostExplorerRepository(clients)
	accountRepo := aws.NewOrganizationsRepository(clients)
	identityRepo := aws.NewSTSRepository(clients)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	notifyUseCase := usecase.NewNotifyUseCase(costRepo, accountRepo, consoleImpl)

	app.SetDependencies(notifyUseCase, configRepo, exportRepo, identityRepo, clients, consoleImpl)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
