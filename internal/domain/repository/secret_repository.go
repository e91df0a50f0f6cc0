package repository

import "context"

// SecretRepository reads named secrets from the secret store.
type SecretRepository interface {
	// GetSecret returns the value under key inside the JSON secret called name.
	GetSecret(ctx context.Context, name, key string) (string, error)
}
