package publisher

import (
	"context"

	"github.com/orgball2608/post-pilot/internal/domain"
)

// Client publishes a whole group to its platform: the primary post first,
// then the dependent items in index order as a chain. Returns the URL of the
// published primary post.
type Client interface {
	Publish(ctx context.Context, group *domain.PostGroup) (releaseURL string, err error)

	// NotifyOperator sends a short text message to the configured operator.
	// Best effort, failures are logged and swallowed.
	NotifyOperator(message string)
}
