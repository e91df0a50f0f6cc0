package types

// Config represents the notifier configuration. It can be loaded from a
// TOML, YAML, or JSON file; environment variables always win over file
// values.
type Config struct {
	EmailTopicARN   string `json:"email_topic_arn" yaml:"email_topic_arn" toml:"email_topic_arn"`
	SlackSecretName string `json:"slack_secret_name" yaml:"slack_secret_name" toml:"slack_secret_name"`
	LineSecretName  string `json:"line_secret_name" yaml:"line_secret_name" toml:"line_secret_name"`

	// AccountLabel prefixes the notification title, e.g. "[prod] AWS Billing ...".
	AccountLabel string `json:"account_label" yaml:"account_label" toml:"account_label"`

	// SecretsPort overrides the Secrets Manager extension port (default 2773).
	SecretsPort int `json:"secrets_port" yaml:"secrets_port" toml:"secrets_port"`

	// Report export settings, used by the CLI only.
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
}

// HasDestination reports whether at least one channel is configured.
func (c *Config) HasDestination() bool {
	return c.EmailTopicARN != "" || c.SlackSecretName != "" || c.LineSecretName != ""
}
