package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearChannelEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"EMAIL_TOPIC_ARN", "SLACK_SECRET_NAME", "LINE_SECRET_NAME",
		"ACCOUNT_ID", "PARAMETERS_SECRETS_EXTENSION_HTTP_PORT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFromEnvOnly(t *testing.T) {
	clearChannelEnv(t)
	t.Setenv("EMAIL_TOPIC_ARN", "arn:aws:sns:ap-northeast-1:111111111111:billing")
	t.Setenv("ACCOUNT_ID", "prod")

	cfg, err := NewConfigRepository().Load("")
	require.NoError(t, err)

	assert.Equal(t, "arn:aws:sns:ap-northeast-1:111111111111:billing", cfg.EmailTopicARN)
	assert.Equal(t, "prod", cfg.AccountLabel)
	assert.Empty(t, cfg.SlackSecretName)
	assert.True(t, cfg.HasDestination())
}

func TestLoadYAMLFileWithEnvOverride(t *testing.T) {
	clearChannelEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "notifier.yaml")
	content := []byte("slack_secret_name: billing/slack\nline_secret_name: billing/line\nsecrets_port: 3000\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("SLACK_SECRET_NAME", "billing/slack-override")

	cfg, err := NewConfigRepository().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "billing/slack-override", cfg.SlackSecretName)
	assert.Equal(t, "billing/line", cfg.LineSecretName)
	assert.Equal(t, 3000, cfg.SecretsPort)
}

func TestLoadTOMLFile(t *testing.T) {
	clearChannelEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "notifier.toml")
	content := []byte("email_topic_arn = \"arn:aws:sns:us-east-1:1:t\"\nreport_name = \"billing\"\nreport_type = [\"csv\", \"pdf\"]\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := NewConfigRepository().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "arn:aws:sns:us-east-1:1:t", cfg.EmailTopicARN)
	assert.Equal(t, "billing", cfg.ReportName)
	assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notifier.ini")
	require.NoError(t, os.WriteFile(path, []byte("x=y"), 0o644))

	_, err := NewConfigRepository().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestLoadNoDestinationIsValid(t *testing.T) {
	clearChannelEnv(t)

	cfg, err := NewConfigRepository().Load("")
	require.NoError(t, err)
	assert.False(t, cfg.HasDestination())
}
