package out

import (
	"context"

	"sehat/internal/modules/session/domain"
)

// Issuer exchanges an email/role pair for session credentials.
type Issuer interface {
	Issue(ctx context.Context, email string, role domain.Role) (domain.Credentials, error)
}
