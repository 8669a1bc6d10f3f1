package postsimpl

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/post-pilot/internal/domain"
	"github.com/orgball2608/post-pilot/internal/posts"
	apperrors "github.com/orgball2608/post-pilot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func listGroup(id string, state domain.PostState, integrationID string, date time.Time) *domain.PostGroup {
	return &domain.PostGroup{
		GroupID:        id,
		OrganizationID: testOrg,
		IntegrationID:  integrationID,
		PublishDate:    date,
		State:          state,
		Items:          []domain.PostItem{{ID: id + "-p0", Content: "<p>hi</p>"}},
	}
}

func TestListDefaultWindowIsThirtyDays(t *testing.T) {
	now := mustParseTime(t, "2025-03-10T15:30:00Z")
	svc, groupRepo, integRepo := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	wantStart := mustParseTime(t, "2025-03-10T00:00:00Z")
	wantEnd := wantStart.Add(30 * 24 * time.Hour)

	day1 := listGroup("g1", domain.StateQueue, "int-1", wantStart.Add(24*time.Hour))
	day15 := listGroup("g2", domain.StateQueue, "int-1", wantStart.Add(15*24*time.Hour))

	// the day-45 group never comes back: the range is pushed to storage
	groupRepo.EXPECT().ListByDateRange(ctx, testOrg, wantStart, wantEnd).
		Return([]*domain.PostGroup{day1, day15}, nil)
	integRepo.EXPECT().GetByID(ctx, testOrg, "int-1").Return(xIntegration(), nil)

	views, err := svc.List(ctx, testOrg, posts.ListFilter{})
	require.NoError(t, err)

	require.Len(t, views, 2)
	assert.Equal(t, "g1", views[0].GroupID)
	assert.Equal(t, "g2", views[1].GroupID)
}

func TestListStateFilter(t *testing.T) {
	now := mustParseTime(t, "2025-03-10T15:30:00Z")
	svc, groupRepo, integRepo := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	queued := listGroup("g1", domain.StateQueue, "int-1", now.Add(24*time.Hour))
	draft := listGroup("g2", domain.StateDraft, "int-1", now.Add(48*time.Hour))
	published := listGroup("g3", domain.StatePublished, "int-1", now.Add(72*time.Hour))

	groupRepo.EXPECT().ListByDateRange(ctx, testOrg, gomock.Any(), gomock.Any()).
		Return([]*domain.PostGroup{queued, draft, published}, nil)
	integRepo.EXPECT().GetByID(ctx, testOrg, "int-1").Return(xIntegration(), nil)

	// "scheduled" maps onto QUEUE
	views, err := svc.List(ctx, testOrg, posts.ListFilter{State: posts.FilterScheduled})
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, "g1", views[0].GroupID)
}

func TestListIntegrationFilter(t *testing.T) {
	now := mustParseTime(t, "2025-03-10T15:30:00Z")
	svc, groupRepo, integRepo := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	a := listGroup("g1", domain.StateQueue, "int-1", now.Add(24*time.Hour))
	b := listGroup("g2", domain.StateQueue, "int-2", now.Add(48*time.Hour))

	groupRepo.EXPECT().ListByDateRange(ctx, testOrg, gomock.Any(), gomock.Any()).
		Return([]*domain.PostGroup{a, b}, nil)
	integRepo.EXPECT().GetByID(ctx, testOrg, "int-2").Return(&domain.Integration{
		ID: "int-2", ProviderIdentifier: "linkedin", Name: "Company Page",
	}, nil)

	views, err := svc.List(ctx, testOrg, posts.ListFilter{IntegrationID: "int-2"})
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, "g2", views[0].GroupID)
	assert.Equal(t, "linkedin", views[0].Integration.Platform)
}

func TestListLimitIsAppliedAfterFilters(t *testing.T) {
	now := mustParseTime(t, "2025-03-10T15:30:00Z")
	svc, groupRepo, integRepo := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	draft := listGroup("g1", domain.StateDraft, "int-1", now.Add(24*time.Hour))
	q1 := listGroup("g2", domain.StateQueue, "int-1", now.Add(48*time.Hour))
	q2 := listGroup("g3", domain.StateQueue, "int-1", now.Add(72*time.Hour))

	groupRepo.EXPECT().ListByDateRange(ctx, testOrg, gomock.Any(), gomock.Any()).
		Return([]*domain.PostGroup{draft, q1, q2}, nil)
	integRepo.EXPECT().GetByID(ctx, testOrg, "int-1").Return(xIntegration(), nil)

	// the state filter sees all three groups, the limit drops afterwards
	views, err := svc.List(ctx, testOrg, posts.ListFilter{State: posts.FilterScheduled, Limit: 1})
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, "g2", views[0].GroupID)
}

func TestListExplicitRange(t *testing.T) {
	now := mustParseTime(t, "2025-03-10T15:30:00Z")
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	// history is reachable by shifting the window into the past
	start := mustParseTime(t, "2024-01-01T00:00:00Z")
	end := mustParseTime(t, "2024-02-01T00:00:00Z")

	groupRepo.EXPECT().ListByDateRange(ctx, testOrg, start, end).Return(nil, nil)

	views, err := svc.List(ctx, testOrg, posts.ListFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestListValidation(t *testing.T) {
	now := mustParseTime(t, "2025-03-10T15:30:00Z")
	svc, _, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	_, err := svc.List(ctx, "", posts.ListFilter{})
	assert.True(t, apperrors.IsNotAuthenticated(err))

	_, err = svc.List(ctx, testOrg, posts.ListFilter{State: "queued"})
	assert.True(t, apperrors.IsInvalidInput(err))

	start := mustParseTime(t, "2025-03-10T00:00:00Z")
	end := start.Add(-time.Hour)
	_, err = svc.List(ctx, testOrg, posts.ListFilter{StartDate: &start, EndDate: &end})
	assert.True(t, apperrors.IsInvalidInput(err))
}
