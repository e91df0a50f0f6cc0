package repository

import (
	"context"

	"github.com/hashupinc/aws-cost-notifier/internal/domain/entity"
)

// AccountRepository resolves linked account ids to display names.
type AccountRepository interface {
	// ListAccountNames walks the full account listing. A refused listing is
	// reported as types.ErrDirectoryAccessDenied; callers fall back to raw
	// account ids in that case.
	ListAccountNames(ctx context.Context) (entity.AccountNameMap, error)
}

// IdentityRepository resolves the account behind the active credentials.
type IdentityRepository interface {
	CallerAccountID(ctx context.Context) (string, error)
}
