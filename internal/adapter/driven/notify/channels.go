package notify

import (
	awsAdapter "github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/aws"
	"github.com/hashupinc/aws-cost-notifier/internal/adapter/driven/webhook"
	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
	"github.com/hashupinc/aws-cost-notifier/internal/shared/types"
)

// BuildChannels assembles the notification channels enabled by the
// configuration, in the fixed dispatch order: topic publish, Slack webhook,
// LINE broadcast. Channel secrets are resolved lazily at dispatch time, so
// a broken secret surfaces as that channel's transport failure.
func BuildChannels(cfg *types.Config, clients *awsAdapter.Clients, secrets repository.SecretRepository) []repository.Notifier {
	var channels []repository.Notifier

	if cfg.EmailTopicARN != "" {
		channels = append(channels, awsAdapter.NewSNSNotifier(clients, cfg.EmailTopicARN))
	}
	if cfg.SlackSecretName != "" {
		channels = append(channels, webhook.NewSlackNotifier(secrets, cfg.SlackSecretName))
	}
	if cfg.LineSecretName != "" {
		channels = append(channels, webhook.NewLineNotifier(secrets, cfg.LineSecretName))
	}

	return channels
}
