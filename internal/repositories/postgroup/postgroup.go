package postgroup

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/post-pilot/internal/domain"
)

var (
	ErrNotFound      = errors.New("post group not found")
	ErrNotEditable   = errors.New("post group is not editable")
	ErrNoItems       = errors.New("post group must have at least one item")
	ErrDuplicateItem = errors.New("duplicate item id within group")
	ErrNoIntegration = errors.New("post group must reference an integration")
)

//go:generate go run go.uber.org/mock/mockgen -source=postgroup.go -destination=mocks/mock.go
type Repository interface {
	// GetByGroupID returns the whole group with items in position order
	GetByGroupID(ctx context.Context, orgID, groupID string) (*domain.PostGroup, error)

	// GetByItemID resolves the owning group from any member item id
	GetByItemID(ctx context.Context, orgID, itemID string) (*domain.PostGroup, error)

	// Replace atomically rewrites the whole group: items, settings and date.
	// Refuses with ErrNotEditable once the stored state is terminal.
	Replace(ctx context.Context, group *domain.PostGroup) error

	// UpdatePublishDate writes only the group's publish date. Refuses with
	// ErrNotEditable once the stored state is terminal.
	UpdatePublishDate(ctx context.Context, orgID, groupID string, date time.Time) error

	// Delete removes the group and all of its items
	Delete(ctx context.Context, orgID, groupID string) error

	// ListByDateRange returns groups whose publish date falls within [from, to]
	ListByDateRange(ctx context.Context, orgID string, from, to time.Time) ([]*domain.PostGroup, error)

	// ListDue returns queued groups whose publish date has passed
	ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.PostGroup, error)

	// MarkPublished transitions the group to PUBLISHED and stores the release URL
	MarkPublished(ctx context.Context, groupID, releaseURL string) error

	// MarkError transitions the group to ERROR
	MarkError(ctx context.Context, groupID string) error
}

// Validate enforces the structural invariants of a group before it is written.
func Validate(g *domain.PostGroup) error {
	if len(g.Items) == 0 {
		return ErrNoItems
	}
	if g.IntegrationID == "" {
		return ErrNoIntegration
	}
	seen := make(map[string]struct{}, len(g.Items))
	for _, item := range g.Items {
		if _, ok := seen[item.ID]; ok {
			return ErrDuplicateItem
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
