package storage

import (
	"context"
	"embed"
	"sort"

	"github.com/metrondb/metrond/internal/errors"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// errMigrationMismatch means the store's applied migration history does
// not line up with the embedded files.
var errMigrationMismatch = errors.New("migration history mismatch")

// migrate applies all embedded migrations that are not yet recorded in
// schema_migrations. Migrations are applied in file-name order, each in
// its own transaction together with the record marking it applied, so a
// partially applied migration is never recorded. Re-running against an
// up-to-date store is a no-op; a store whose applied history does not
// match the embedded files is rejected rather than repaired.
func (e *Engine) migrate(ctx context.Context) error {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return errors.Wrap(err, "read migrations")
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	if _, err := e.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY
		)
	`); err != nil {
		return errors.Wrap(err, "create schema_migrations")
	}

	applied, err := e.appliedMigrations(ctx)
	if err != nil {
		return err
	}

	for i, name := range files {
		if i < len(applied) {
			if applied[i] != name {
				return errors.Wrapf(errMigrationMismatch, "applied %q, embedded %q", applied[i], name)
			}
			continue
		}

		sql, err := migrationFiles.ReadFile("migrations/" + name)
		if err != nil {
			return errors.Wrapf(err, "read migration %s", name)
		}

		tx, err := e.db.BeginTx(ctx, nil)
		if err != nil {
			return errors.Wrapf(err, "begin migration %s", name)
		}
		if _, err := tx.ExecContext(ctx, string(sql)); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "apply migration %s", name)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES (?)`, name); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "record migration %s", name)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "commit migration %s", name)
		}
	}

	return nil
}

// appliedMigrations returns the recorded migration names in applied order.
func (e *Engine) appliedMigrations(ctx context.Context) ([]string, error) {
	rows, err := e.db.QueryContext(ctx, `SELECT name FROM schema_migrations ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "list applied migrations")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
