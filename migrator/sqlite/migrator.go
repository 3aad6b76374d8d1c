// Package sqlite applies the embedded schema migrations for channels and predefined ranges.
package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var SqlFiles embed.FS

func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate picker schema: %w", err)
	}
	return nil
}
