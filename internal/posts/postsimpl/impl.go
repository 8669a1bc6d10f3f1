package postsimpl

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/post-pilot/internal/domain"
	"github.com/orgball2608/post-pilot/internal/posts"
	"github.com/orgball2608/post-pilot/internal/repositories/integration"
	"github.com/orgball2608/post-pilot/internal/repositories/postgroup"
	apperrors "github.com/orgball2608/post-pilot/pkg/errors"
	"github.com/orgball2608/post-pilot/pkg/keymutex"
	"github.com/orgball2608/post-pilot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	GroupRepo       postgroup.Repository
	IntegrationRepo integration.Repository
	Logger          logger.Logger
	Clock           clockwork.Clock `optional:"true"`
}

type ServiceImpl struct {
	GroupRepo       postgroup.Repository
	IntegrationRepo integration.Repository
	Logger          logger.Logger
	Clock           clockwork.Clock

	// locks serializes writers per group id; a concurrent second writer
	// could otherwise overwrite a stale item sequence.
	locks *keymutex.KeyMutex
}

func New(opts Opts) *ServiceImpl {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ServiceImpl{
		GroupRepo:       opts.GroupRepo,
		IntegrationRepo: opts.IntegrationRepo,
		Logger:          opts.Logger.WithComponent("PostsService"),
		Clock:           clock,
		locks:           keymutex.New(),
	}
}

var _ posts.Service = (*ServiceImpl)(nil)

// resolve looks a group up by a member item id first, then by group id.
func (s *ServiceImpl) resolve(ctx context.Context, orgID, ref string) (*domain.PostGroup, error) {
	group, err := s.GroupRepo.GetByItemID(ctx, orgID, ref)
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, postgroup.ErrNotFound) {
		return nil, err
	}
	return s.GroupRepo.GetByGroupID(ctx, orgID, ref)
}

// loadGroup resolves ref and maps repository errors onto the service taxonomy.
func (s *ServiceImpl) loadGroup(ctx context.Context, orgID, ref string) (*domain.PostGroup, error) {
	group, err := s.resolve(ctx, orgID, ref)
	if err != nil {
		if errors.Is(err, postgroup.ErrNotFound) {
			return nil, apperrors.NotFoundf("post group %q not found", ref)
		}
		return nil, apperrors.Upstream(err, "load post group")
	}
	return group, nil
}

func (s *ServiceImpl) integrationView(integ *domain.Integration) posts.IntegrationView {
	return posts.IntegrationView{
		ID:        integ.ID,
		Name:      integ.Name,
		Platform:  integ.ProviderIdentifier,
		Picture:   integ.Picture,
		Profile:   integ.Profile,
		Disabled:  integ.Disabled,
		Available: integ.Available(),
	}
}

func (s *ServiceImpl) toView(group *domain.PostGroup, integ *domain.Integration) *posts.GroupView {
	view := &posts.GroupView{
		GroupID:     group.GroupID,
		PublishDate: group.PublishDate,
		State:       group.State,
		Editable:    group.Editable(),
		ReleaseURL:  group.ReleaseURL,
		Settings:    group.Settings,
		Items:       group.Items,
	}
	if integ != nil {
		view.Integration = s.integrationView(integ)
	} else {
		view.Integration = posts.IntegrationView{ID: group.IntegrationID}
	}
	return view
}
