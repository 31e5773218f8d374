package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/somework/landing-api/infrastructure/database/postgres"
	"github.com/somework/landing-api/internal/domain"
)

const pageViewsTable = "page_views"

type PageViewRepository interface {
	Insert(ctx context.Context, view *domain.PageView) error
	Count(ctx context.Context, since *time.Time) (int, error)
	ListEventsSince(ctx context.Context, since time.Time) ([]domain.RawEvent, error)
}

type pageViewRepository struct {
	conn *postgres.Connection
}

func NewPageViewRepository(conn *postgres.Connection) PageViewRepository {
	return &pageViewRepository{
		conn: conn,
	}
}

func (r *pageViewRepository) Insert(ctx context.Context, view *domain.PageView) error {
	query, args, err := squirrel.
		Insert(pageViewsTable).
		Columns("path", "user_agent").
		Values(view.Path, view.UserAgent).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.QueryRowContext(ctx, query, args...).Scan(&view.ID, &view.CreatedAt)
}

// Count conta todas as visualizações ou, com since, apenas as criadas a partir dele
func (r *pageViewRepository) Count(ctx context.Context, since *time.Time) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(pageViewsTable).
		PlaceholderFormat(squirrel.Dollar)

	if since != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"created_at": *since})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// ListEventsSince retorna as visualizações a partir de since como RawEvent (dimensão = path)
func (r *pageViewRepository) ListEventsSince(ctx context.Context, since time.Time) ([]domain.RawEvent, error) {
	query, args, err := squirrel.
		Select("created_at", "path").
		From(pageViewsTable).
		Where(squirrel.GtOrEq{"created_at": since}).
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
		var event domain.RawEvent
		if err := rows.Scan(&event.Timestamp, &event.Dimension); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
