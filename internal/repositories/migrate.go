package repositories

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/sbilibin2017/gw-trading-hub/internal/migrations"
)

// RunMigrations applies the embedded goose migrations against the provided
// database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
