package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
)

const (
	defaultPort    = 2773
	defaultTimeout = 10 * time.Second

	sessionTokenEnv = "AWS_SESSION_TOKEN"
	tokenHeader     = "X-Aws-Parameters-Secrets-Token"
)

// ExtensionClient reads secrets through the Secrets Manager Lambda
// extension, which serves a local HTTP endpoint inside the function sandbox
// and authenticates callers with the ambient session token.
type ExtensionClient struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the ExtensionClient.
type Option func(*ExtensionClient)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *ExtensionClient) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *ExtensionClient) {
		c.httpClient = client
	}
}

// NewExtensionClient creates a client against the extension endpoint on the
// given port; port 0 selects the extension default.
func NewExtensionClient(port int, opts ...Option) repository.SecretRepository {
	if port == 0 {
		port = defaultPort
	}
	c := &ExtensionClient{
		baseURL:    fmt.Sprintf("http://localhost:%d", port),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetSecret fetches the named secret and returns the field under key. The
// stored SecretString is itself a JSON object.
func (c *ExtensionClient) GetSecret(ctx context.Context, name, key string) (string, error) {
	if name == "" {
		return "", errors.New("secret name must not be empty")
	}

	token := os.Getenv(sessionTokenEnv)
	if token == "" {
		return "", fmt.Errorf("%s is not set; the secrets extension requires the function session token", sessionTokenEnv)
	}

	endpoint := fmt.Sprintf("%s/secretsmanager/get?secretId=%s", c.baseURL, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set(tokenHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("secrets extension request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("secrets extension returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var envelope struct {
		SecretString string `json:"SecretString"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("decoding secrets extension response: %w", err)
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(envelope.SecretString), &fields); err != nil {
		return "", fmt.Errorf("secret %s is not a JSON object: %w", name, err)
	}

	value, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("secret %s has no key %q", name, key)
	}
	return value, nil
}
