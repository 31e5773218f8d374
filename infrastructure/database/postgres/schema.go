package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Migration é um passo de schema aplicado em ordem pelo cmd/migrate
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create_page_views",
		SQL: `CREATE TABLE IF NOT EXISTS page_views (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	path TEXT NOT NULL,
	user_agent TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_page_views_created_at ON page_views (created_at);`,
	},
	{
		Version: 2,
		Name:    "create_resources",
		SQL: `CREATE TABLE IF NOT EXISTS resources (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	type TEXT NOT NULL CHECK (type IN ('free', 'paid')),
	link TEXT NOT NULL,
	button_label TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
	{
		Version: 3,
		Name:    "create_resource_clicks",
		SQL: `CREATE TABLE IF NOT EXISTS resource_clicks (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	resource_id TEXT,
	resource_title TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
	{
		Version: 4,
		Name:    "create_site_config",
		SQL: `CREATE TABLE IF NOT EXISTS site_config (
	key TEXT PRIMARY KEY,
	value TEXT,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
	{
		Version: 5,
		Name:    "create_admin_users",
		SQL: `CREATE TABLE IF NOT EXISTS admin_users (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	active BOOLEAN NOT NULL DEFAULT FALSE,
	role_id INTEGER NOT NULL DEFAULT 2,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
}

const schemaMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migrate aplica as migrations pendentes, cada uma na sua transação.
// Retorna as versões aplicadas nesta execução.
func Migrate(ctx context.Context, conn *Connection, migrations []Migration) ([]int, error) {
	if _, err := conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return nil, fmt.Errorf("erro ao criar tabela schema_migrations: %w", err)
	}

	applied := make([]int, 0)
	for _, m := range migrations {
		var exists bool
		err := conn.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", m.Version).Scan(&exists)
		if err != nil {
			return applied, fmt.Errorf("erro ao consultar migration %d: %w", m.Version, err)
		}

		if exists {
			continue
		}

		err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", m.Version, m.Name)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("erro ao aplicar migration %d (%s): %w", m.Version, m.Name, err)
		}

		applied = append(applied, m.Version)
	}

	return applied, nil
}
