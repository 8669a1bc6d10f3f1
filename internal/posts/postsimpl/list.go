package postsimpl

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/orgball2608/post-pilot/internal/domain"
	"github.com/orgball2608/post-pilot/internal/posts"
	"github.com/orgball2608/post-pilot/internal/repositories/integration"
	apperrors "github.com/orgball2608/post-pilot/pkg/errors"
	"github.com/samber/lo"
)

const (
	defaultListWindow = 30 * 24 * time.Hour
	defaultListLimit  = 100
)

// List returns groups in a date window, denormalized for display. The window
// defaults to today through +30 days so an unscoped query over a large post
// archive stays bounded; callers wanting history shift the range explicitly.
// Filters apply in a fixed order: date range (pushed to storage), state,
// integration, then the result limit, so no filter ever sees items dropped
// only because of the limit.
func (s *ServiceImpl) List(ctx context.Context, orgID string, filter posts.ListFilter) ([]*posts.GroupView, error) {
	if orgID == "" {
		return nil, apperrors.NotAuthenticated()
	}
	if !filter.State.Valid() {
		return nil, apperrors.InvalidInputf("unknown state filter %q", filter.State)
	}

	start := s.Clock.Now().UTC().Truncate(24 * time.Hour)
	if filter.StartDate != nil {
		start = filter.StartDate.UTC()
	}
	end := start.Add(defaultListWindow)
	if filter.EndDate != nil {
		end = filter.EndDate.UTC()
	}
	if end.Before(start) {
		return nil, apperrors.InvalidInputf("end date is before start date")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	groups, err := s.GroupRepo.ListByDateRange(ctx, orgID, start, end)
	if err != nil {
		return nil, apperrors.Upstream(err, "list post groups")
	}

	if states := filter.State.States(); states != nil {
		groups = lo.Filter(groups, func(g *domain.PostGroup, _ int) bool {
			return slices.Contains(states, g.State)
		})
	}
	if filter.IntegrationID != "" {
		groups = lo.Filter(groups, func(g *domain.PostGroup, _ int) bool {
			return g.IntegrationID == filter.IntegrationID
		})
	}
	if len(groups) > limit {
		groups = groups[:limit]
	}

	// one directory lookup per distinct integration
	integrations := make(map[string]*domain.Integration)
	views := make([]*posts.GroupView, 0, len(groups))
	for _, group := range groups {
		integ, ok := integrations[group.IntegrationID]
		if !ok {
			integ, err = s.IntegrationRepo.GetByID(ctx, orgID, group.IntegrationID)
			if err != nil {
				if !errors.Is(err, integration.ErrNotFound) {
					return nil, apperrors.Upstream(err, "load integration")
				}
				integ = nil
			}
			integrations[group.IntegrationID] = integ
		}
		views = append(views, s.toView(group, integ))
	}

	return views, nil
}
