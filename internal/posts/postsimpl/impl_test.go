package postsimpl

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	mock_integration "github.com/orgball2608/post-pilot/internal/repositories/integration/mocks"
	mock_postgroup "github.com/orgball2608/post-pilot/internal/repositories/postgroup/mocks"
	"github.com/orgball2608/post-pilot/pkg/logger"
	"go.uber.org/mock/gomock"
)

const testOrg = "org-1"

func newService(t *testing.T, clock clockwork.Clock) (*ServiceImpl, *mock_postgroup.MockRepository, *mock_integration.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	groupRepo := mock_postgroup.NewMockRepository(ctrl)
	integRepo := mock_integration.NewMockRepository(ctrl)

	svc := New(Opts{
		GroupRepo:       groupRepo,
		IntegrationRepo: integRepo,
		Logger:          logger.New(logger.Opts{}),
		Clock:           clock,
	})
	return svc, groupRepo, integRepo
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad time literal %q: %v", value, err)
	}
	return parsed
}
