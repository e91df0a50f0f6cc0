package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
	"github.com/hashupinc/aws-cost-notifier/internal/shared/types"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// Load resolves the configuration from an optional TOML, YAML, or JSON file
// merged with the environment. Environment values win, so the same function
// serves both the file-driven CLI and the env-only event invocation.
func (r *ConfigRepositoryImpl) Load(filePath string) (*types.Config, error) {
	cfg := &types.Config{}

	if filePath != "" {
		fileCfg, err := loadConfigFile(filePath)
		if err != nil {
			return nil, err
		}
		*cfg = *fileCfg
	}

	applyEnv(cfg)
	return cfg, nil
}

// loadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func loadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// applyEnv overlays the recognized environment variables onto cfg.
func applyEnv(cfg *types.Config) {
	v := viper.New()
	v.AutomaticEnv()

	bindEnv := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			slog.Warn("failed to bind environment variable",
				slog.String("key", key),
				slog.String("env_var", envVar),
				slog.String("error", err.Error()))
		}
	}

	bindEnv("email_topic_arn", "EMAIL_TOPIC_ARN")
	bindEnv("slack_secret_name", "SLACK_SECRET_NAME")
	bindEnv("line_secret_name", "LINE_SECRET_NAME")
	bindEnv("account_label", "ACCOUNT_ID")
	bindEnv("secrets_port", "PARAMETERS_SECRETS_EXTENSION_HTTP_PORT")

	if s := v.GetString("email_topic_arn"); s != "" {
		cfg.EmailTopicARN = s
	}
	if s := v.GetString("slack_secret_name"); s != "" {
		cfg.SlackSecretName = s
	}
	if s := v.GetString("line_secret_name"); s != "" {
		cfg.LineSecretName = s
	}
	if s := v.GetString("account_label"); s != "" {
		cfg.AccountLabel = s
	}
	if p := v.GetInt("secrets_port"); p != 0 {
		cfg.SecretsPort = p
	}
}
