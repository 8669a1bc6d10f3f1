package postsimpl

import (
	"context"
	"errors"

	"github.com/orgball2608/post-pilot/internal/posts"
	"github.com/orgball2608/post-pilot/internal/repositories/integration"
	apperrors "github.com/orgball2608/post-pilot/pkg/errors"
)

// Get returns a group, referenced by group or item id, denormalized with its
// integration's display data.
func (s *ServiceImpl) Get(ctx context.Context, orgID, ref string) (*posts.GroupView, error) {
	if orgID == "" {
		return nil, apperrors.NotAuthenticated()
	}
	if ref == "" {
		return nil, apperrors.InvalidInputf("postId is required")
	}

	group, err := s.loadGroup(ctx, orgID, ref)
	if err != nil {
		return nil, err
	}

	integ, err := s.IntegrationRepo.GetByID(ctx, orgID, group.IntegrationID)
	if err != nil {
		if errors.Is(err, integration.ErrNotFound) {
			return nil, apperrors.NotFoundf("integration %q not found", group.IntegrationID)
		}
		return nil, apperrors.Upstream(err, "load integration")
	}

	return s.toView(group, integ), nil
}

// ListIntegrations returns the organization's connected channels.
func (s *ServiceImpl) ListIntegrations(ctx context.Context, orgID string) ([]*posts.IntegrationView, error) {
	if orgID == "" {
		return nil, apperrors.NotAuthenticated()
	}

	integrations, err := s.IntegrationRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, apperrors.Upstream(err, "list integrations")
	}

	views := make([]*posts.IntegrationView, 0, len(integrations))
	for _, integ := range integrations {
		view := s.integrationView(integ)
		views = append(views, &view)
	}
	return views, nil
}
