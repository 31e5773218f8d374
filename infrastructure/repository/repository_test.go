package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/somework/landing-api/infrastructure/database/postgres"
	"github.com/somework/landing-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConn(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return postgres.FromDB(db), mock
}

func TestPageViewRepository_Insert(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewPageViewRepository(conn)

	createdAt := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO page_views (path,user_agent) VALUES ($1,$2) RETURNING id, created_at")).
		WithArgs("/", "Mozilla/5.0").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("pv-1", createdAt))

	view := &domain.PageView{Path: "/", UserAgent: "Mozilla/5.0"}
	require.NoError(t, repo.Insert(context.Background(), view))
	assert.Equal(t, "pv-1", view.ID)
	assert.Equal(t, createdAt, view.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPageViewRepository_Count(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewPageViewRepository(conn)
	midnight := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM page_views")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(120))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM page_views WHERE created_at >= $1")).
		WithArgs(midnight).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	total, err := repo.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 120, total)

	today, err := repo.Count(context.Background(), &midnight)
	require.NoError(t, err)
	assert.Equal(t, 4, today)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPageViewRepository_ListEventsSince(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewPageViewRepository(conn)
	since := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	t1 := since.Add(time.Hour)
	t2 := since.Add(26 * time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT created_at, path FROM page_views WHERE created_at >= $1 ORDER BY created_at ASC")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "path"}).AddRow(t1, "/").AddRow(t2, "/resources"))

	events, err := repo.ListEventsSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, []domain.RawEvent{
		{Timestamp: t1, Dimension: "/"},
		{Timestamp: t2, Dimension: "/resources"},
	}, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceClickRepository_ListEvents(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewResourceClickRepository(conn)
	at := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT created_at, resource_title FROM resource_clicks ORDER BY created_at ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "resource_title"}).
			AddRow(at, "Ebook").AddRow(at, nil).AddRow(at, "Ebook"))

	events, err := repo.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "Ebook", events[0].Dimension)
	assert.Equal(t, "", events[1].Dimension)
	assert.Equal(t, at, events[2].Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepository_List(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewResourceRepository(conn)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	columns := []string{"id", "title", "description", "type", "link", "button_label", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, type, link, button_label, created_at, updated_at FROM resources ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("r-2", "Template Ads", nil, "paid", "https://x.dev/ads", "Beli", now, now).
			AddRow("r-1", "Prompt Pack", "Prompt AI", "free", "https://x.dev/prompt", nil, now, now))

	resources, err := repo.List(context.Background(), domain.SortDescending)
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "r-2", resources[0].ID)
	assert.Equal(t, domain.ResourceTypePaid, resources[0].Type)
	assert.Equal(t, "", resources[0].Description)
	assert.Equal(t, "", resources[1].ButtonLabel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepository_GetByID_NotFound(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewResourceRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("FROM resources WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resource, err := repo.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, resource)
}

func TestResourceRepository_Create(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewResourceRepository(conn)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO resources (id,title,description,type,link,button_label) VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at, updated_at")).
		WithArgs(sqlmock.AnyArg(), "Prompt Pack", "", "free", "https://x.dev", "Ambil Gratis").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	resource := &domain.Resource{
		Title:       "Prompt Pack",
		Type:        domain.ResourceTypeFree,
		Link:        "https://x.dev",
		ButtonLabel: domain.DefaultButtonLabel,
	}
	require.NoError(t, repo.Create(context.Background(), resource))
	assert.NotEmpty(t, resource.ID)
	assert.Equal(t, now, resource.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepository_Delete(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewResourceRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM resources WHERE id = $1")).
		WithArgs("r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM resources WHERE id = $1")).
		WithArgs("r-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "r-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "r-404"), ErrResourceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepository_CountByType(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewResourceRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT type, COUNT(*) FROM resources GROUP BY type")).
		WillReturnRows(sqlmock.NewRows([]string{"type", "count"}).AddRow("free", 3).AddRow("paid", 2))

	counts, err := repo.CountByType(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[domain.ResourceType]int{domain.ResourceTypeFree: 3, domain.ResourceTypePaid: 2}, counts)
}

func TestSiteConfigRepository_Upsert(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	entries := []domain.SiteConfigEntry{
		{Key: "hero_name", Value: "Althur", UpdatedAt: now},
		{Key: "contact_email", Value: "hi@althur.dev", UpdatedAt: now},
	}
	upsert := regexp.QuoteMeta("INSERT INTO site_config (key,value,updated_at) VALUES ($1,$2,$3) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at")

	t.Run("grava todas as chaves na mesma transação", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewSiteConfigRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(upsert).WithArgs("hero_name", "Althur", now).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(upsert).WithArgs("contact_email", "hi@althur.dev", now).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Upsert(context.Background(), entries))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback quando uma chave falha", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewSiteConfigRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(upsert).WithArgs("hero_name", "Althur", now).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(upsert).WithArgs("contact_email", "hi@althur.dev", now).WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		assert.EqualError(t, repo.Upsert(context.Background(), entries), "boom")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSiteConfigRepository_List(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSiteConfigRepository(conn)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, value, updated_at FROM site_config ORDER BY key ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("hero_name", "Althur", now).
			AddRow("contact_threads", nil, now))

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SiteConfigEntry{
		{Key: "hero_name", Value: "Althur", UpdatedAt: now},
		{Key: "contact_threads", Value: "", UpdatedAt: now},
	}, entries)
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewUserRepository(conn)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta("SELECT id, name, email, password_hash, active, role_id, created_at, updated_at FROM admin_users WHERE email = $1")
	mock.ExpectQuery(query).
		WithArgs("admin@althur.dev").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "active", "role_id", "created_at", "updated_at"}).
			AddRow(1, "Althur", "admin@althur.dev", "hash", true, domain.RoleAdmin, now, now))
	mock.ExpectQuery(query).
		WithArgs("ghost@althur.dev").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetUserByEmail("admin@althur.dev")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleAdmin, user.RoleID)

	user, err = repo.GetUserByEmail("ghost@althur.dev")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListUser(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewUserRepository(conn)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM admin_users ORDER BY name ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "active", "role_id", "created_at", "updated_at"}).
			AddRow(2, "Bea", "bea@althur.dev", "hash-b", true, domain.RoleEditor, now, now).
			AddRow(1, "Caio", "caio@althur.dev", "hash-c", false, domain.RoleAdmin, now, now))

	users, err := repo.ListUser()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bea", users[0].Name)
	assert.Empty(t, users[0].PasswordHash)
	assert.False(t, users[1].Active)

	assert.NoError(t, mock.ExpectationsWereMet())
}
