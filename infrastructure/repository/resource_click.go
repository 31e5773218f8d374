package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/somework/landing-api/infrastructure/database/postgres"
	"github.com/somework/landing-api/internal/domain"
)

const resourceClicksTable = "resource_clicks"

type ResourceClickRepository interface {
	Insert(ctx context.Context, click *domain.ResourceClick) error
	ListEvents(ctx context.Context) ([]domain.RawEvent, error)
}

type resourceClickRepository struct {
	conn *postgres.Connection
}

func NewResourceClickRepository(conn *postgres.Connection) ResourceClickRepository {
	return &resourceClickRepository{
		conn: conn,
	}
}

func (r *resourceClickRepository) Insert(ctx context.Context, click *domain.ResourceClick) error {
	query, args, err := squirrel.
		Insert(resourceClicksTable).
		Columns("resource_id", "resource_title").
		Values(click.ResourceID, click.ResourceTitle).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.QueryRowContext(ctx, query, args...).Scan(&click.ID, &click.CreatedAt)
}

// ListEvents retorna cada clique na ordem de gravação como RawEvent (dimensão = título).
// Títulos nulos viram string vazia.
func (r *resourceClickRepository) ListEvents(ctx context.Context) ([]domain.RawEvent, error) {
	query, args, err := squirrel.
		Select("created_at", "resource_title").
		From(resourceClicksTable).
		OrderBy("created_at ASC").
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

	events := make([]domain.RawEvent, 0)
	for rows.Next() {
		var (
			event domain.RawEvent
			title sql.NullString
		)
		if err := rows.Scan(&event.Timestamp, &title); err != nil {
			return nil, err
		}
		event.Dimension = title.String
		events = append(events, event)
	}

	return events, rows.Err()
}
