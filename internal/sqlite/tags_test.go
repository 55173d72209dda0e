package sqlite

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petwell/petbase/internal/schema"
)

func TestApplyTags(t *testing.T) {
	db := newOldGen2DB(t)
	require.NoError(t, ApplyPlan(db, schema.Gen2Plan))

	updated, missing, err := ApplyTags(db)
	require.NoError(t, err)

	// The fixture holds two of the known plans; the rest are reported as
	// missing without failing the run.
	assert.Equal(t, 2, updated)
	assert.Len(t, missing, len(planTags)-2)
	assert.NotContains(t, missing, "Essential Plan")
	assert.NotContains(t, missing, "Love Pet - Type A")

	var tag sql.NullString
	require.NoError(t, db.QueryRow(
		"SELECT tag FROM product WHERE insurance_name = 'Essential Plan'",
	).Scan(&tag))
	require.True(t, tag.Valid)
	assert.Equal(t, "#NoSubLimitEntry #HospitalizationFocus", tag.String)
}

func TestApplyTagsRequiresEvolvedSchema(t *testing.T) {
	db := newTestDB(t)

	_, _, err := ApplyTags(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation 1")
}

func TestApplyTagsIdempotent(t *testing.T) {
	db := newOldGen2DB(t)
	require.NoError(t, ApplyPlan(db, schema.Gen2Plan))

	first, _, err := ApplyTags(db)
	require.NoError(t, err)
	second, _, err := ApplyTags(db)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
