package integration

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/post-pilot/internal/domain"
	"github.com/orgball2608/post-pilot/internal/repositories"
	"github.com/orgball2608/post-pilot/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("IntegrationRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

var integrationColumns = []string{
	"id", "organization_id", "provider_identifier", "name", "picture", "profile",
	"disabled", "refresh_needed", "created_at",
}

// GetByID returns the integration within the organization scope
func (p *Pgx) GetByID(ctx context.Context, orgID, id string) (*domain.Integration, error) {
	query, args, err := repositories.SqBuilder.
		Select(integrationColumns...).
		From("integrations").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var integ domain.Integration
	err = p.pg.QueryRow(ctx, query, args...).Scan(
		&integ.ID, &integ.OrganizationID, &integ.ProviderIdentifier, &integ.Name, &integ.Picture, &integ.Profile,
		&integ.Disabled, &integ.RefreshNeeded, &integ.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &integ, nil
}

// ListByOrganization returns all integrations connected by the organization
func (p *Pgx) ListByOrganization(ctx context.Context, orgID string) ([]*domain.Integration, error) {
	query, args, err := repositories.SqBuilder.
		Select(integrationColumns...).
		From("integrations").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var integrations []*domain.Integration
	for rows.Next() {
		var integ domain.Integration
		if err := rows.Scan(
			&integ.ID, &integ.OrganizationID, &integ.ProviderIdentifier, &integ.Name, &integ.Picture, &integ.Profile,
			&integ.Disabled, &integ.RefreshNeeded, &integ.CreatedAt,
		); err != nil {
			return nil, err
		}
		integrations = append(integrations, &integ)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return integrations, nil
}
