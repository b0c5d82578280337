package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalizeSQL(stmt string) string {
	return strings.Join(strings.Fields(stmt), " ")
}

// ADD CONSTRAINT has no IF NOT EXISTS form in Postgres; the statement must
// never combine them or the migration fails on first boot.
func TestConstraintStatements_NoAddConstraintIfNotExists(t *testing.T) {
	for _, stmt := range constraintStatements {
		assert.NotContains(t, normalizeSQL(stmt), "ADD CONSTRAINT IF NOT EXISTS")
	}
}

func TestConstraintStatements_UniqueAddonGuardedViaCatalog(t *testing.T) {
	var guarded string
	for _, stmt := range constraintStatements {
		if strings.Contains(stmt, "unique_addon_per_booking") {
			guarded = normalizeSQL(stmt)
		}
	}
	require.NotEmpty(t, guarded, "unique addon constraint statement missing")

	// Idempotency comes from probing pg_constraint inside a DO block
	assert.Contains(t, guarded, "pg_constraint")
	assert.Contains(t, guarded, "conname = 'unique_addon_per_booking'")
	assert.Contains(t, guarded, "DO $$")
	assert.Contains(t, guarded, "UNIQUE (booking_id, addon_id)")
}

func TestConstraintStatements_IndexesAreIdempotent(t *testing.T) {
	for _, stmt := range constraintStatements {
		normalized := normalizeSQL(stmt)
		if !strings.Contains(normalized, "CREATE INDEX") {
			continue
		}
		assert.Contains(t, normalized, "CREATE INDEX CONCURRENTLY IF NOT EXISTS")
	}
}
