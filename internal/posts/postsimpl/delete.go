package postsimpl

import (
	"context"
	"errors"

	"github.com/orgball2608/post-pilot/internal/domain"
	"github.com/orgball2608/post-pilot/internal/posts"
	"github.com/orgball2608/post-pilot/internal/repositories/postgroup"
	apperrors "github.com/orgball2608/post-pilot/pkg/errors"
)

// Delete destroys a group and all of its items, valid from any state. The
// state is read before the delete so the caller can tell whether the content
// is still live on the remote platform.
func (s *ServiceImpl) Delete(ctx context.Context, orgID, groupID string) (*posts.DeleteResult, error) {
	if orgID == "" {
		return nil, apperrors.NotAuthenticated()
	}
	if groupID == "" {
		return nil, apperrors.InvalidInputf("groupId is required")
	}

	s.locks.Lock(groupID)
	defer s.locks.Unlock(groupID)

	group, err := s.GroupRepo.GetByGroupID(ctx, orgID, groupID)
	if err != nil {
		if errors.Is(err, postgroup.ErrNotFound) {
			return nil, apperrors.NotFoundf("post group %q not found", groupID)
		}
		return nil, apperrors.Upstream(err, "load post group")
	}

	wasPublished := group.State == domain.StatePublished

	if err := s.GroupRepo.Delete(ctx, orgID, groupID); err != nil {
		return nil, apperrors.Upstream(err, "delete post group")
	}

	if wasPublished {
		s.Logger.Info("Deleted already-published post group, remote content stays live",
			"group_id", groupID,
		)
	} else {
		s.Logger.Info("Post group deleted", "group_id", groupID)
	}

	return &posts.DeleteResult{
		GroupID:      groupID,
		WasPublished: wasPublished,
	}, nil
}
