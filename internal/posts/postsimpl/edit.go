package postsimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/orgball2608/post-pilot/internal/content"
	"github.com/orgball2608/post-pilot/internal/domain"
	"github.com/orgball2608/post-pilot/internal/posts"
	"github.com/orgball2608/post-pilot/internal/repositories/integration"
	"github.com/orgball2608/post-pilot/internal/repositories/postgroup"
	"github.com/orgball2608/post-pilot/internal/settings"
	apperrors "github.com/orgball2608/post-pilot/pkg/errors"
)

// Edit replaces a group's content, images and settings wholesale. The caller
// supplies the full ordered item list; items and images without ids get
// freshly generated ones.
func (s *ServiceImpl) Edit(ctx context.Context, orgID string, input posts.EditInput) (*posts.EditResult, error) {
	if orgID == "" {
		return nil, apperrors.NotAuthenticated()
	}
	if input.GroupID == "" {
		return nil, apperrors.InvalidInputf("groupId is required")
	}
	if input.IntegrationID == "" {
		return nil, apperrors.InvalidInputf("integrationId is required")
	}
	if len(input.Items) == 0 {
		return nil, apperrors.InvalidInputf("at least one item is required")
	}
	for i, item := range input.Items {
		if err := content.Validate(item.Content); err != nil {
			return nil, apperrors.InvalidInputf("item %d: %v", i, err)
		}
	}

	s.locks.Lock(input.GroupID)
	defer s.locks.Unlock(input.GroupID)

	group, err := s.GroupRepo.GetByGroupID(ctx, orgID, input.GroupID)
	if err != nil {
		if errors.Is(err, postgroup.ErrNotFound) {
			return nil, apperrors.NotFoundf("post group %q not found", input.GroupID)
		}
		return nil, apperrors.Upstream(err, "load post group")
	}
	if !group.Editable() {
		return nil, apperrors.InvalidStatef("post group in state %s cannot be edited", group.State)
	}

	integ, err := s.IntegrationRepo.GetByID(ctx, orgID, input.IntegrationID)
	if err != nil {
		if errors.Is(err, integration.ErrNotFound) {
			return nil, apperrors.NotFoundf("integration %q not found", input.IntegrationID)
		}
		return nil, apperrors.Upstream(err, "load integration")
	}

	publishDate := group.PublishDate
	if input.Date != nil {
		publishDate = *input.Date
	}
	publishDate = publishDate.UTC().Truncate(time.Second)

	state := group.State
	if input.ForceSchedule && state == domain.StateDraft {
		state = domain.StateQueue
	}

	items := make([]domain.PostItem, 0, len(input.Items))
	for _, in := range input.Items {
		item := domain.PostItem{
			ID:      in.ID,
			Content: in.Content,
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		for _, img := range in.Images {
			image := domain.PostImage{ID: img.ID, Path: img.Path}
			if image.ID == "" {
				image.ID = uuid.NewString()
			}
			item.Images = append(item.Images, image)
		}
		items = append(items, item)
	}

	updated := &domain.PostGroup{
		GroupID:        group.GroupID,
		OrganizationID: orgID,
		IntegrationID:  integ.ID,
		PublishDate:    publishDate,
		State:          state,
		Settings:       settings.Merge(group.Settings, input.SettingsOverrides, integ.ProviderIdentifier),
		ReleaseURL:     group.ReleaseURL,
		Items:          items,
	}
	if err := postgroup.Validate(updated); err != nil {
		return nil, apperrors.InvalidInputf("%v", err)
	}
	if err := s.GroupRepo.Replace(ctx, updated); err != nil {
		switch {
		case errors.Is(err, postgroup.ErrNotFound):
			return nil, apperrors.NotFoundf("post group %q not found", input.GroupID)
		case errors.Is(err, postgroup.ErrNotEditable):
			// the dispatcher's terminal marks do not take the group lock
			return nil, apperrors.InvalidStatef("post group %q is no longer editable", group.GroupID)
		}
		return nil, apperrors.Upstream(err, "write post group")
	}

	s.Logger.Info("Post group updated",
		"group_id", group.GroupID,
		"integration_id", integ.ID,
		"items", len(items),
		"publish_date", publishDate,
	)

	return &posts.EditResult{
		GroupID:       group.GroupID,
		PrimaryItemID: items[0].ID,
		State:         state,
		PublishDate:   publishDate,
	}, nil
}
