package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/somework/landing-api/infrastructure/database/postgres"
	"github.com/somework/landing-api/internal/domain"
)

const resourcesTable = "resources"

var ErrResourceNotFound = errors.New("resource not found")

var resourceColumns = []string{"id", "title", "description", "type", "link", "button_label", "created_at", "updated_at"}

type ResourceRepository interface {
	List(ctx context.Context, order domain.SortOrder) ([]*domain.Resource, error)
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	Create(ctx context.Context, resource *domain.Resource) error
	Update(ctx context.Context, resource *domain.Resource) error
	Delete(ctx context.Context, id string) error
	CountByType(ctx context.Context) (map[domain.ResourceType]int, error)
}

type resourceRepository struct {
	conn *postgres.Connection
}

func NewResourceRepository(conn *postgres.Connection) ResourceRepository {
	return &resourceRepository{
		conn: conn,
	}
}

func (r *resourceRepository) List(ctx context.Context, order domain.SortOrder) ([]*domain.Resource, error) {
	if order != domain.SortDescending {
		order = domain.SortAscending
	}

	query, args, err := squirrel.
		Select(resourceColumns...).
		From(resourcesTable).
		OrderBy(fmt.Sprintf("created_at %s", order)).
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

	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		resources = append(resources, resource)
	}

	return resources, rows.Err()
}

// GetByID retorna nil, nil quando o resource não existe
func (r *resourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	query, args, err := squirrel.
		Select(resourceColumns...).
		From(resourcesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	resource, err := scanResource(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return resource, nil
}

func (r *resourceRepository) Create(ctx context.Context, resource *domain.Resource) error {
	if resource.ID == "" {
		resource.ID = uuid.NewString()
	}

	query, args, err := squirrel.
		Insert(resourcesTable).
		Columns("id", "title", "description", "type", "link", "button_label").
		Values(resource.ID, resource.Title, resource.Description, resource.Type, resource.Link, resource.ButtonLabel).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.QueryRowContext(ctx, query, args...).Scan(&resource.CreatedAt, &resource.UpdatedAt)
}

func (r *resourceRepository) Update(ctx context.Context, resource *domain.Resource) error {
	query, args, err := squirrel.
		Update(resourcesTable).
		Set("title", resource.Title).
		Set("description", resource.Description).
		Set("type", resource.Type).
		Set("link", resource.Link).
		Set("button_label", resource.ButtonLabel).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": resource.ID}).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&resource.CreatedAt, &resource.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrResourceNotFound
	}

	return err
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(resourcesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

func (r *resourceRepository) CountByType(ctx context.Context) (map[domain.ResourceType]int, error) {
	query, args, err := squirrel.
		Select("type", "COUNT(*)").
		From(resourcesTable).
		GroupBy("type").
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

	counts := make(map[domain.ResourceType]int)
	for rows.Next() {
		var (
			resourceType domain.ResourceType
			count        int
		)
		if err := rows.Scan(&resourceType, &count); err != nil {
			return nil, err
		}
		counts[resourceType] = count
	}

	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (*domain.Resource, error) {
	var (
		resource    domain.Resource
		description sql.NullString
		buttonLabel sql.NullString
	)

	err := row.Scan(
		&resource.ID,
		&resource.Title,
		&description,
		&resource.Type,
		&resource.Link,
		&buttonLabel,
		&resource.CreatedAt,
		&resource.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	resource.Description = description.String
	resource.ButtonLabel = buttonLabel.String

	return &resource, nil
}
