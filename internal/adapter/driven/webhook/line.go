package webhook

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
)

const broadcastURL = "https://api.line.me/v2/bot/message/broadcast"

// LineNotifier broadcasts the notification through the LINE Messaging API.
// The channel access token lives in the secret store and is resolved per
// dispatch.
type LineNotifier struct {
	secrets    repository.SecretRepository
	secretName string
	url        string
	httpClient *http.Client
}

// LineOption configures the LineNotifier.
type LineOption func(*LineNotifier)

// WithBroadcastURL sets a custom broadcast endpoint (for testing).
func WithBroadcastURL(url string) LineOption {
	return func(n *LineNotifier) {
		n.url = url
	}
}

// WithLineHTTPClient sets a custom HTTP client.
func WithLineHTTPClient(client *http.Client) LineOption {
	return func(n *LineNotifier) {
		n.httpClient = client
	}
}

// NewLineNotifier cria o canal de broadcast do LINE.
func NewLineNotifier(secrets repository.SecretRepository, secretName string, opts ...LineOption) repository.Notifier {
	n := &LineNotifier{
		secrets:    secrets,
		secretName: secretName,
		url:        broadcastURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *LineNotifier) Name() string { return "line" }

type lineMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type linePayload struct {
	Messages []lineMessage `json:"messages"`
}

// Notify sends one text message with the title and body concatenated,
// separated by a blank line.
func (n *LineNotifier) Notify(ctx context.Context, title, body string) error {
	token, err := n.secrets.GetSecret(ctx, n.secretName, secretKey)
	if err != nil {
		return fmt.Errorf("resolving line channel access token: %w", err)
	}

	payload := linePayload{
		Messages: []lineMessage{
			{Type: "text", Text: title + "\n\n" + body},
		},
	}
	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}

	if err := postJSON(ctx, n.httpClient, n.url, payload, headers); err != nil {
		return fmt.Errorf("posting line broadcast: %w", err)
	}
	return nil
}
