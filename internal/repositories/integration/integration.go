package integration

import (
	"context"
	"errors"

	"github.com/orgball2608/post-pilot/internal/domain"
)

var ErrNotFound = errors.New("integration not found")

//go:generate go run go.uber.org/mock/mockgen -source=integration.go -destination=mocks/mock.go
type Repository interface {
	// GetByID returns the integration within the organization scope
	GetByID(ctx context.Context, orgID, id string) (*domain.Integration, error)

	// ListByOrganization returns all integrations connected by the organization
	ListByOrganization(ctx context.Context, orgID string) ([]*domain.Integration, error)
}
