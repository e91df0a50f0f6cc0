package webhook

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
)

// SlackNotifier posts the notification to a Slack incoming webhook. The
// webhook URL lives in the secret store and is resolved per dispatch, so a
// rotated secret takes effect without a redeploy.
type SlackNotifier struct {
	secrets    repository.SecretRepository
	secretName string
	httpClient *http.Client
}

// SlackOption configures the SlackNotifier.
type SlackOption func(*SlackNotifier)

// WithSlackHTTPClient sets a custom HTTP client (for testing).
func WithSlackHTTPClient(client *http.Client) SlackOption {
	return func(n *SlackNotifier) {
		n.httpClient = client
	}
}

// NewSlackNotifier cria o canal de webhook do Slack.
func NewSlackNotifier(secrets repository.SecretRepository, secretName string, opts ...SlackOption) repository.Notifier {
	n := &SlackNotifier{
		secrets:    secrets,
		secretName: secretName,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *SlackNotifier) Name() string { return "slack" }

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type slackBlock struct {
	Type string    `json:"type"`
	Text slackText `json:"text"`
}

type slackPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks"`
}

// Notify posts a two-block message: a header block carrying the title and a
// section block carrying the body.
func (n *SlackNotifier) Notify(ctx context.Context, title, body string) error {
	webhookURL, err := n.secrets.GetSecret(ctx, n.secretName, secretKey)
	if err != nil {
		return fmt.Errorf("resolving slack webhook url: %w", err)
	}

	payload := slackPayload{
		Text: title,
		Blocks: []slackBlock{
			{Type: "header", Text: slackText{Type: "plain_text", Text: title}},
			{Type: "section", Text: slackText{Type: "plain_text", Text: body}},
		},
	}

	if err := postJSON(ctx, n.httpClient, webhookURL, payload, nil); err != nil {
		return fmt.Errorf("posting to slack webhook: %w", err)
	}
	return nil
}
