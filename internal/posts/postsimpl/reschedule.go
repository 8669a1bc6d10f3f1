package postsimpl

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/post-pilot/internal/posts"
	"github.com/orgball2608/post-pilot/internal/repositories/postgroup"
	apperrors "github.com/orgball2608/post-pilot/pkg/errors"
)

// Reschedule moves a group, referenced by group or item id, to a new publish
// date. It never touches content or settings; that smaller blast radius is the
// point of having it next to Edit.
func (s *ServiceImpl) Reschedule(ctx context.Context, orgID, ref string, newDate time.Time) (*posts.RescheduleResult, error) {
	if orgID == "" {
		return nil, apperrors.NotAuthenticated()
	}
	if ref == "" {
		return nil, apperrors.InvalidInputf("postId is required")
	}
	if newDate.IsZero() {
		return nil, apperrors.InvalidInputf("newDate is required")
	}

	newDate = newDate.UTC().Truncate(time.Second)
	now := s.Clock.Now().UTC()
	if !newDate.After(now) {
		return nil, apperrors.InvalidInputf("new date must be in the future")
	}

	// first load only resolves the ref to a group id so the lock can be keyed
	group, err := s.loadGroup(ctx, orgID, ref)
	if err != nil {
		return nil, err
	}
	groupID := group.GroupID

	s.locks.Lock(groupID)
	defer s.locks.Unlock(groupID)

	// reload under the lock, the group may have moved or vanished meanwhile
	group, err = s.GroupRepo.GetByGroupID(ctx, orgID, groupID)
	if err != nil {
		if errors.Is(err, postgroup.ErrNotFound) {
			return nil, apperrors.NotFoundf("post group %q not found", ref)
		}
		return nil, apperrors.Upstream(err, "load post group")
	}
	if !group.Editable() {
		return nil, apperrors.InvalidStatef("post group in state %s cannot be rescheduled", group.State)
	}

	if err := s.GroupRepo.UpdatePublishDate(ctx, orgID, groupID, newDate); err != nil {
		switch {
		case errors.Is(err, postgroup.ErrNotFound):
			return nil, apperrors.NotFoundf("post group %q not found", ref)
		case errors.Is(err, postgroup.ErrNotEditable):
			return nil, apperrors.InvalidStatef("post group %q is no longer editable", groupID)
		}
		return nil, apperrors.Upstream(err, "update publish date")
	}

	s.Logger.Info("Post group rescheduled",
		"group_id", groupID,
		"new_date", newDate,
	)

	return &posts.RescheduleResult{
		GroupID: groupID,
		NewDate: newDate,
	}, nil
}
