package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	awsAdapter "github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/aws"
	configAdapter "github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/config"
	"github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/notify"
	"github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/secrets"
	"github.com/hashupinc/aws-cost-notifier/internal/application/usecase"
	"github.com/hashupinc/aws-cost-notifier/pkg/console"
)

// handler runs one notification cycle per invocation. Configuration comes
// entirely from the function environment; channel secrets are read through
// the Secrets Manager extension sidecar.
func handler(ctx context.Context) error {
	cfg, err := configAdapter.NewConfigRepository().Load("")
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return err
	}

	clients := awsAdapter.NewClients()
	costRepo := awsAdapter.NewCostExplorerRepository(clients)
	accountRepo := awsAdapter.NewOrganizationsRepository(clients)
	consoleImpl := console.NewConsole()

	secretRepo := secrets.NewExtensionClient(cfg.SecretsPort)
	channels := notify.BuildChannels(cfg, clients, secretRepo)

	notifyUseCase := usecase.NewNotifyUseCase(costRepo, accountRepo, consoleImpl)
	if err := notifyUseCase.Run(ctx, cfg, channels); err != nil {
		slog.Error("billing notification failed", "error", err)
		return err
	}

	slog.Info("billing notification completed")
	return nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	lambda.Start(handler)
}
