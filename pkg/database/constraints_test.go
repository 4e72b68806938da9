package database

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"

	"github.com/amparasaude/ampara_backend/config"
)

func TestSessionOverlapDDLUsesTimestamptzRange(t *testing.T) {
	// ent maps time fields to timestamptz, and Postgres has no tsrange
	// overload for that type; the constraint must build a tstzrange.
	var constraint string
	for _, stmt := range sessionOverlapDDL {
		if strings.Contains(stmt, "ADD CONSTRAINT") {
			constraint = stmt
		}
	}
	if constraint == "" {
		t.Fatal("no ADD CONSTRAINT statement in sessionOverlapDDL")
	}
	if !strings.Contains(constraint, "tstzrange(") {
		t.Errorf("constraint does not use tstzrange:\n%s", constraint)
	}
	if strings.Contains(constraint, " tsrange(") {
		t.Errorf("constraint still uses tsrange:\n%s", constraint)
	}
	if !strings.Contains(sessionOverlapDDL[0], "btree_gist") {
		t.Errorf("extension statement missing btree_gist: %q", sessionOverlapDDL[0])
	}
}

func TestIsExclusionViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "exclusion violation",
			err:  &pq.Error{Code: "23P01"},
			want: true,
		},
		{
			name: "wrapped exclusion violation",
			err:  fmt.Errorf("create occurrence: %w", &pq.Error{Code: "23P01"}),
			want: true,
		},
		{
			name: "unique violation",
			err:  &pq.Error{Code: "23505"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExclusionViolation(tt.err); got != tt.want {
				t.Errorf("IsExclusionViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDatabaseNames(t *testing.T) {
	tests := []struct {
		name   string
		main   string
		casbin string
		want   []string
	}{
		{name: "distinct databases", main: "ampara", casbin: "ampara_casbin", want: []string{"ampara", "ampara_casbin"}},
		{name: "shared database deduplicated", main: "ampara", casbin: "ampara", want: []string{"ampara"}},
		{name: "empty casbin name skipped", main: "ampara", casbin: "", want: []string{"ampara"}},
		{name: "nothing configured", main: "", casbin: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Database.DBName = tt.main
			cfg.CasbinDatabase.DBName = tt.casbin

			got := databaseNames(cfg)
			if len(got) != len(tt.want) {
				t.Fatalf("databaseNames() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("databaseNames()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
