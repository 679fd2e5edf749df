package system

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/focusdeck/focusdeck/internal/cli"
	"github.com/focusdeck/focusdeck/internal/migration"
	"github.com/focusdeck/focusdeck/internal/storage/postgres"
	"github.com/focusdeck/focusdeck/internal/storage/sqlite"
	"github.com/focusdeck/focusdeck/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	defer ctx.Store.Close()

	var db *sql.DB
	var dialect string
	switch s := ctx.Store.(type) {
	case *sqlite.Store:
		db, dialect = s.GetDB(), "sqlite"
	case *postgres.Store:
		db, dialect = s.GetDB(), "postgres"
	default:
		return fmt.Errorf("unsupported storage backend")
	}
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, dialect)
	if err != nil {
		return fmt.Errorf("failed to access %s migrations: %w", dialect, err)
	}

	count, err := migration.NewRunner(db, subFS).ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}

	return nil
}
