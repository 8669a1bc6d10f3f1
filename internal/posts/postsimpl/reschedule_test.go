package postsimpl

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/post-pilot/internal/domain"
	"github.com/orgball2608/post-pilot/internal/repositories/postgroup"
	apperrors "github.com/orgball2608/post-pilot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRescheduleMovesDate(t *testing.T) {
	now := mustParseTime(t, "2025-01-01T10:00:00Z")
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	groupRepo.EXPECT().GetByItemID(ctx, testOrg, "p1").Return(queuedGroup(t), nil)
	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "g1").Return(queuedGroup(t), nil)

	newDate := now.Add(48 * time.Hour).Add(123 * time.Millisecond)
	groupRepo.EXPECT().UpdatePublishDate(ctx, testOrg, "g1", now.Add(48*time.Hour)).Return(nil)

	result, err := svc.Reschedule(ctx, testOrg, "p1", newDate)
	require.NoError(t, err)

	assert.Equal(t, "g1", result.GroupID)
	assert.Equal(t, now.Add(48*time.Hour), result.NewDate)
}

func TestRescheduleRejectsNonFutureDate(t *testing.T) {
	now := mustParseTime(t, "2025-01-01T10:00:00Z")
	svc, _, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	// a date equal to the current time is not strictly in the future
	_, err := svc.Reschedule(ctx, testOrg, "p1", now)
	assert.True(t, apperrors.IsInvalidInput(err))

	_, err = svc.Reschedule(ctx, testOrg, "p1", now.Add(-time.Hour))
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestRescheduleRejectsPublishedGroup(t *testing.T) {
	now := mustParseTime(t, "2025-01-01T10:00:00Z")
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	group := queuedGroup(t)
	group.State = domain.StatePublished
	groupRepo.EXPECT().GetByItemID(ctx, testOrg, "p1").Return(group, nil)
	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "g1").Return(group, nil)

	_, err := svc.Reschedule(ctx, testOrg, "p1", now.Add(time.Hour))
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestRescheduleResolvesGroupIDFallback(t *testing.T) {
	now := mustParseTime(t, "2025-01-01T10:00:00Z")
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	// the ref is a group id, not an item id
	groupRepo.EXPECT().GetByItemID(ctx, testOrg, "g1").Return(nil, postgroup.ErrNotFound)
	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "g1").Return(queuedGroup(t), nil).Times(2)
	groupRepo.EXPECT().UpdatePublishDate(ctx, testOrg, "g1", now.Add(time.Hour)).Return(nil)

	_, err := svc.Reschedule(ctx, testOrg, "g1", now.Add(time.Hour))
	require.NoError(t, err)
}

func TestRescheduleReloadsStateUnderLock(t *testing.T) {
	now := mustParseTime(t, "2025-01-01T10:00:00Z")
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	// the resolve saw a queued group; by the time the lock is held the
	// dispatcher has published it
	published := queuedGroup(t)
	published.State = domain.StatePublished
	groupRepo.EXPECT().GetByItemID(ctx, testOrg, "p1").Return(queuedGroup(t), nil)
	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "g1").Return(published, nil)

	_, err := svc.Reschedule(ctx, testOrg, "p1", now.Add(time.Hour))
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestRescheduleGroupDeletedAfterResolve(t *testing.T) {
	now := mustParseTime(t, "2025-01-01T10:00:00Z")
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	groupRepo.EXPECT().GetByItemID(ctx, testOrg, "p1").Return(queuedGroup(t), nil)
	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "g1").Return(nil, postgroup.ErrNotFound)

	_, err := svc.Reschedule(ctx, testOrg, "p1", now.Add(time.Hour))
	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsUpstreamFailure(err))
}

func TestRescheduleConcurrentDeleteAtWrite(t *testing.T) {
	now := mustParseTime(t, "2025-01-01T10:00:00Z")
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	// another instance deletes the group between our reload and the write;
	// the repository's not-found still surfaces as NotFound, not as an
	// upstream failure
	groupRepo.EXPECT().GetByItemID(ctx, testOrg, "p1").Return(queuedGroup(t), nil)
	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "g1").Return(queuedGroup(t), nil)
	groupRepo.EXPECT().UpdatePublishDate(ctx, testOrg, "g1", now.Add(time.Hour)).
		Return(postgroup.ErrNotFound)

	_, err := svc.Reschedule(ctx, testOrg, "p1", now.Add(time.Hour))
	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsUpstreamFailure(err))
}

func TestRescheduleConcurrentPublishAtWrite(t *testing.T) {
	now := mustParseTime(t, "2025-01-01T10:00:00Z")
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	// the dispatcher's terminal marks bypass the group lock, so the write
	// itself refuses a group that went terminal in the window
	groupRepo.EXPECT().GetByItemID(ctx, testOrg, "p1").Return(queuedGroup(t), nil)
	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "g1").Return(queuedGroup(t), nil)
	groupRepo.EXPECT().UpdatePublishDate(ctx, testOrg, "g1", now.Add(time.Hour)).
		Return(postgroup.ErrNotEditable)

	_, err := svc.Reschedule(ctx, testOrg, "p1", now.Add(time.Hour))
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestRescheduleNotFound(t *testing.T) {
	now := mustParseTime(t, "2025-01-01T10:00:00Z")
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	groupRepo.EXPECT().GetByItemID(ctx, testOrg, "missing").Return(nil, postgroup.ErrNotFound)
	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "missing").Return(nil, postgroup.ErrNotFound)

	_, err := svc.Reschedule(ctx, testOrg, "missing", now.Add(time.Hour))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRescheduleValidation(t *testing.T) {
	now := mustParseTime(t, "2025-01-01T10:00:00Z")
	svc, _, _ := newService(t, clockwork.NewFakeClockAt(now))
	ctx := context.Background()

	_, err := svc.Reschedule(ctx, "", "p1", now.Add(time.Hour))
	assert.True(t, apperrors.IsNotAuthenticated(err))

	_, err = svc.Reschedule(ctx, testOrg, "", now.Add(time.Hour))
	assert.True(t, apperrors.IsInvalidInput(err))

	_, err = svc.Reschedule(ctx, testOrg, "p1", time.Time{})
	assert.True(t, apperrors.IsInvalidInput(err))
}
