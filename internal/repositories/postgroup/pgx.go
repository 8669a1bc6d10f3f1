package postgroup

import (
	"context"
	"encoding/json"
	"errors"
	"time"

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
		logger: logger.WithComponent("PostGroupRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

var postColumns = []string{
	"id", "group_id", "organization_id", "integration_id", "position",
	"content", "images", "settings", "state", "publish_date", "release_url",
	"created_at", "updated_at",
}

type imageRecord struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// GetByGroupID returns the whole group with items in position order
func (p *Pgx) GetByGroupID(ctx context.Context, orgID, groupID string) (*domain.PostGroup, error) {
	query, args, err := repositories.SqBuilder.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"organization_id": orgID, "group_id": groupID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups, err := scanGroups(rows)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, ErrNotFound
	}
	return groups[0], nil
}

// GetByItemID resolves the owning group from any member item id
func (p *Pgx) GetByItemID(ctx context.Context, orgID, itemID string) (*domain.PostGroup, error) {
	query, args, err := repositories.SqBuilder.
		Select("group_id").
		From("posts").
		Where(sq.Eq{"organization_id": orgID, "id": itemID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var groupID string
	if err := p.pg.QueryRow(ctx, query, args...).Scan(&groupID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return p.GetByGroupID(ctx, orgID, groupID)
}

// Replace atomically rewrites the whole group inside one transaction so no
// reader ever observes a half-updated item sequence. The stored state is
// re-read with the rows locked; a group the dispatcher moved to a terminal
// state in the meantime is refused rather than silently un-published.
func (p *Pgx) Replace(ctx context.Context, group *domain.PostGroup) error {
	if err := Validate(group); err != nil {
		return err
	}

	tx, err := p.pg.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	state, err := lockGroupState(ctx, tx, group.OrganizationID, group.GroupID)
	if err != nil {
		return err
	}
	if !state.Editable() {
		return ErrNotEditable
	}

	delQuery, delArgs, err := repositories.SqBuilder.
		Delete("posts").
		Where(sq.Eq{"organization_id": group.OrganizationID, "group_id": group.GroupID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}
	if _, err := tx.Exec(ctx, delQuery, delArgs...); err != nil {
		return err
	}

	settingsJSON, err := json.Marshal(group.Settings)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	publishDate := group.PublishDate.UTC().Truncate(time.Second)

	builder := repositories.SqBuilder.
		Insert("posts").
		Columns(postColumns...)
	for position, item := range group.Items {
		images := make([]imageRecord, 0, len(item.Images))
		for _, img := range item.Images {
			images = append(images, imageRecord{ID: img.ID, Path: img.Path})
		}
		imagesJSON, err := json.Marshal(images)
		if err != nil {
			return err
		}
		builder = builder.Values(
			item.ID, group.GroupID, group.OrganizationID, group.IntegrationID, position,
			item.Content, imagesJSON, settingsJSON, string(group.State), publishDate, group.ReleaseURL,
			now, now,
		)
	}
	insQuery, insArgs, err := builder.ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}
	if _, err := tx.Exec(ctx, insQuery, insArgs...); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// UpdatePublishDate writes only the group's publish date. The stored state is
// checked with the rows locked so a terminal group never has its date moved.
func (p *Pgx) UpdatePublishDate(ctx context.Context, orgID, groupID string, date time.Time) error {
	tx, err := p.pg.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	state, err := lockGroupState(ctx, tx, orgID, groupID)
	if err != nil {
		return err
	}
	if !state.Editable() {
		return ErrNotEditable
	}

	query, args, err := repositories.SqBuilder.
		Update("posts").
		Set("publish_date", date.UTC().Truncate(time.Second)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"organization_id": orgID, "group_id": groupID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// lockGroupState reads the group's current state and locks its rows for the
// rest of the transaction.
func lockGroupState(ctx context.Context, tx pgx.Tx, orgID, groupID string) (domain.PostState, error) {
	query, args, err := repositories.SqBuilder.
		Select("state").
		From("posts").
		Where(sq.Eq{"organization_id": orgID, "group_id": groupID}).
		OrderBy("position ASC").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return "", repositories.ErrBadQuery
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var state string
	found := false
	for rows.Next() {
		if err := rows.Scan(&state); err != nil {
			return "", err
		}
		found = true
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	if !found {
		return "", ErrNotFound
	}
	return domain.PostState(state), nil
}

// Delete removes the group and all of its items
func (p *Pgx) Delete(ctx context.Context, orgID, groupID string) error {
	query, args, err := repositories.SqBuilder.
		Delete("posts").
		Where(sq.Eq{"organization_id": orgID, "group_id": groupID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByDateRange returns groups whose publish date falls within [from, to],
// ordered by publish date with items in position order.
func (p *Pgx) ListByDateRange(ctx context.Context, orgID string, from, to time.Time) ([]*domain.PostGroup, error) {
	query, args, err := repositories.SqBuilder.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"organization_id": orgID}).
		Where(sq.GtOrEq{"publish_date": from.UTC()}).
		Where(sq.LtOrEq{"publish_date": to.UTC()}).
		OrderBy("publish_date ASC", "group_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGroups(rows)
}

// ListDue returns queued groups whose publish date has passed
func (p *Pgx) ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.PostGroup, error) {
	query, args, err := repositories.SqBuilder.
		Select("group_id", "organization_id").
		From("posts").
		Where(sq.Eq{"state": string(domain.StateQueue), "position": 0}).
		Where(sq.LtOrEq{"publish_date": now.UTC()}).
		OrderBy("publish_date ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type ref struct{ groupID, orgID string }
	var refs []ref
	for rows.Next() {
		var r ref
		if err := rows.Scan(&r.groupID, &r.orgID); err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	groups := make([]*domain.PostGroup, 0, len(refs))
	for _, r := range refs {
		group, err := p.GetByGroupID(ctx, r.orgID, r.groupID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// MarkPublished transitions the group to PUBLISHED and stores the release URL
func (p *Pgx) MarkPublished(ctx context.Context, groupID, releaseURL string) error {
	return p.mark(ctx, groupID, domain.StatePublished, releaseURL)
}

// MarkError transitions the group to ERROR
func (p *Pgx) MarkError(ctx context.Context, groupID string) error {
	return p.mark(ctx, groupID, domain.StateError, "")
}

func (p *Pgx) mark(ctx context.Context, groupID string, state domain.PostState, releaseURL string) error {
	builder := repositories.SqBuilder.
		Update("posts").
		Set("state", string(state)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"group_id": groupID})
	if releaseURL != "" {
		builder = builder.Set("release_url", releaseURL)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanGroups folds item rows into groups, preserving the row order for both
// groups and their items.
func scanGroups(rows pgx.Rows) ([]*domain.PostGroup, error) {
	var groups []*domain.PostGroup
	index := make(map[string]*domain.PostGroup)

	for rows.Next() {
		var (
			item         domain.PostItem
			groupID      string
			orgID        string
			integration  string
			position     int
			imagesJSON   []byte
			settingsJSON []byte
			state        string
			publishDate  time.Time
			releaseURL   string
			createdAt    time.Time
			updatedAt    time.Time
		)
		if err := rows.Scan(
			&item.ID, &groupID, &orgID, &integration, &position,
			&item.Content, &imagesJSON, &settingsJSON, &state, &publishDate, &releaseURL,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, err
		}

		var images []imageRecord
		if err := json.Unmarshal(imagesJSON, &images); err != nil {
			return nil, err
		}
		for _, img := range images {
			item.Images = append(item.Images, domain.PostImage{ID: img.ID, Path: img.Path})
		}

		group, ok := index[groupID]
		if !ok {
			var groupSettings map[string]any
			if err := json.Unmarshal(settingsJSON, &groupSettings); err != nil {
				return nil, err
			}
			group = &domain.PostGroup{
				GroupID:        groupID,
				OrganizationID: orgID,
				IntegrationID:  integration,
				PublishDate:    publishDate.UTC(),
				State:          domain.PostState(state),
				Settings:       groupSettings,
				ReleaseURL:     releaseURL,
				CreatedAt:      createdAt,
				UpdatedAt:      updatedAt,
			}
			index[groupID] = group
			groups = append(groups, group)
		}
		group.Items = append(group.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
