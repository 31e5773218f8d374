package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/somework/landing-api/infrastructure/database/postgres"
	"github.com/somework/landing-api/internal/domain"
)

const siteConfigTable = "site_config"

type SiteConfigRepository interface {
	List(ctx context.Context) ([]domain.SiteConfigEntry, error)
	Upsert(ctx context.Context, entries []domain.SiteConfigEntry) error
}

type siteConfigRepository struct {
	conn *postgres.Connection
}

func NewSiteConfigRepository(conn *postgres.Connection) SiteConfigRepository {
	return &siteConfigRepository{
		conn: conn,
	}
}

func (r *siteConfigRepository) List(ctx context.Context) ([]domain.SiteConfigEntry, error) {
	query, args, err := squirrel.
		Select("key", "value", "updated_at").
		From(siteConfigTable).
		OrderBy("key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.SiteConfigEntry, 0)
	for rows.Next() {
		var (
			entry domain.SiteConfigEntry
			value sql.NullString
		)
		if err := rows.Scan(&entry.Key, &value, &entry.UpdatedAt); err != nil {
			return nil, err
		}
		entry.Value = value.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Upsert grava todas as chaves numa única transação
func (r *siteConfigRepository) Upsert(ctx context.Context, entries []domain.SiteConfigEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := squirrel.
				Insert(siteConfigTable).
				Columns("key", "value", "updated_at").
				Values(entry.Key, entry.Value, entry.UpdatedAt).
				Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}
		}
		return nil
	})
}
