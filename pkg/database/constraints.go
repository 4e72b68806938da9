package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// sessionOverlapDDL installs the guard ent cannot express: a range
// exclusion constraint making the database the source of truth for the
// no-double-booking rule. The service-level conflict check stays as a
// pre-flight for friendly error messages; two requests racing past it
// both hit this constraint and only one insert survives.
var sessionOverlapDDL = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`ALTER TABLE sessions DROP CONSTRAINT IF EXISTS sessions_psychologist_no_overlap`,
	`ALTER TABLE sessions ADD CONSTRAINT sessions_psychologist_no_overlap
		EXCLUDE USING gist (
			psychologist_id WITH =,
			tstzrange(scheduled_at, scheduled_at + make_interval(mins => duration_minutes)) WITH &&
		) WHERE (status NOT IN ('cancelled', 'no_show'))`,
}

// ApplyConstraints runs the raw DDL that complements ent auto-migration.
// Call it after MigrateEnt; it is idempotent.
func ApplyConstraints(ctx context.Context, cfg Config) error {
	conn, err := openSQLDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, stmt := range sessionOverlapDDL {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply constraint: %w", err)
		}
	}
	return nil
}

// IsExclusionViolation reports whether err is a Postgres exclusion
// constraint violation (SQLSTATE 23P01), the signature of a lost
// scheduling race.
func IsExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23P01"
}
