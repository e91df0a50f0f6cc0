package repository

import (
	"github.com/hashupinc/aws-cost-notifier/internal/shared/types"
)

// ConfigRepository resolves the notifier configuration from an optional file
// and the process environment.
type ConfigRepository interface {
	Load(filePath string) (*types.Config, error)
}
