package aws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/organizations"
	orgTypes "github.com/aws/aws-sdk-go-v2/service/organizations/types"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
	"github.com/hashupinc/aws-cost-notifier/internal/domain/repository"
	"github.com/hashupinc/aws-cost-notifier/internal/shared/types"
)

// OrganizationsRepository implementa o AccountRepository sobre a API
// ListAccounts do AWS Organizations.
type OrganizationsRepository struct {
	clients *Clients
}

// NewOrganizationsRepository cria uma nova implementação do AccountRepository.
func NewOrganizationsRepository(clients *Clients) repository.AccountRepository {
	return &OrganizationsRepository{clients: clients}
}

// ListAccountNames pages through the full account listing and accumulates
// one id→name mapping. Member accounts are usually denied this call; that
// case maps to ErrDirectoryAccessDenied so callers can degrade to raw ids.
func (r *OrganizationsRepository) ListAccountNames(ctx context.Context) (entity.AccountNameMap, error) {
	client, err := r.clients.Organizations(ctx)
	if err != nil {
		return nil, err
	}

	mapping := entity.AccountNameMap{}

	paginator := organizations.NewListAccountsPaginator(client, &organizations.ListAccountsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			var denied *orgTypes.AccessDeniedException
			if errors.As(err, &denied) {
				return nil, fmt.Errorf("%w: %v", types.ErrDirectoryAccessDenied, err)
			}
			return nil, fmt.Errorf("listing organization accounts: %w", err)
		}

		slog.Debug("organizations page received", "accounts", len(page.Accounts))
		for _, account := range page.Accounts {
			if account.Id == nil || account.Name == nil {
				continue
			}
			mapping[*account.Id] = *account.Name
		}
	}

	return mapping, nil
}
