package postsimpl

import (
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/post-pilot/internal/domain"
	"github.com/orgball2608/post-pilot/internal/repositories/postgroup"
	apperrors "github.com/orgball2608/post-pilot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteQueuedGroup(t *testing.T) {
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClock())
	ctx := context.Background()

	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "g1").Return(queuedGroup(t), nil)
	groupRepo.EXPECT().Delete(ctx, testOrg, "g1").Return(nil)

	result, err := svc.Delete(ctx, testOrg, "g1")
	require.NoError(t, err)

	assert.Equal(t, "g1", result.GroupID)
	assert.False(t, result.WasPublished)
}

func TestDeletePublishedGroupReportsIt(t *testing.T) {
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClock())
	ctx := context.Background()

	group := queuedGroup(t)
	group.State = domain.StatePublished
	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "g1").Return(group, nil)
	groupRepo.EXPECT().Delete(ctx, testOrg, "g1").Return(nil)

	result, err := svc.Delete(ctx, testOrg, "g1")
	require.NoError(t, err)

	// deletion is local bookkeeping; the caller needs to know the content
	// is still live on the platform
	assert.True(t, result.WasPublished)
}

func TestDeleteErroredGroupSucceeds(t *testing.T) {
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClock())
	ctx := context.Background()

	group := queuedGroup(t)
	group.State = domain.StateError
	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "g1").Return(group, nil)
	groupRepo.EXPECT().Delete(ctx, testOrg, "g1").Return(nil)

	result, err := svc.Delete(ctx, testOrg, "g1")
	require.NoError(t, err)
	assert.False(t, result.WasPublished)
}

func TestDeleteNotFound(t *testing.T) {
	svc, groupRepo, _ := newService(t, clockwork.NewFakeClock())
	ctx := context.Background()

	groupRepo.EXPECT().GetByGroupID(ctx, testOrg, "missing").Return(nil, postgroup.ErrNotFound)

	_, err := svc.Delete(ctx, testOrg, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteValidation(t *testing.T) {
	svc, _, _ := newService(t, clockwork.NewFakeClock())
	ctx := context.Background()

	_, err := svc.Delete(ctx, "", "g1")
	assert.True(t, apperrors.IsNotAuthenticated(err))

	_, err = svc.Delete(ctx, testOrg, "")
	assert.True(t, apperrors.IsInvalidInput(err))
}
