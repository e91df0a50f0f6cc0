package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
)

// STSRepository resolves the account behind the active credentials, used to
// label exported report files when no explicit label is configured.
type STSRepository struct {
	clients *Clients
}

// NewSTSRepository cria uma nova implementação do IdentityRepository.
func NewSTSRepository(clients *Clients) repository.IdentityRepository {
	return &STSRepository{clients: clients}
}

func (r *STSRepository) CallerAccountID(ctx context.Context) (string, error) {
	client, err := r.clients.STS(ctx)
	if err != nil {
		return "", err
	}

	result, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting caller account ID: %w", err)
	}
	return *result.Account, nil
}
