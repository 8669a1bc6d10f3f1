package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upInit, downInit)
}

func upInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE integrations (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL,
		provider_identifier TEXT NOT NULL,
		name TEXT NOT NULL,
		picture TEXT NOT NULL DEFAULT '',
		profile TEXT NOT NULL DEFAULT '',
		disabled BOOLEAN NOT NULL DEFAULT FALSE,
		refresh_needed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX idx_integrations_org ON integrations (organization_id);

	CREATE TABLE posts (
		id TEXT PRIMARY KEY,
		group_id TEXT NOT NULL,
		organization_id TEXT NOT NULL,
		integration_id TEXT NOT NULL,
		position INT NOT NULL,
		content TEXT NOT NULL,
		images JSONB NOT NULL DEFAULT '[]',
		settings JSONB NOT NULL DEFAULT '{}',
		state TEXT NOT NULL,
		publish_date TIMESTAMPTZ NOT NULL,
		release_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE UNIQUE INDEX idx_posts_group_position ON posts (group_id, position);
	CREATE INDEX idx_posts_org_date ON posts (organization_id, publish_date);
	CREATE INDEX idx_posts_due ON posts (state, publish_date) WHERE position = 0;
	`)
	if err != nil {
		return err
	}
	return nil
}

func downInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE posts;
	DROP TABLE integrations;
	`)
	if err != nil {
		return err
	}
	return nil
}
