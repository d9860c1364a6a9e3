package out

import (
	"context"

	"sehat/internal/modules/chat/domain"
)

// Assistant answers one query with one assistant message. Implementations
// hold no conversation state; correlation travels in the query's ContextID.
type Assistant interface {
	Query(ctx context.Context, q domain.Query) (domain.Message, error)
}
