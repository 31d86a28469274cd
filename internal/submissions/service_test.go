package submissions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarywatch/backend/internal/common"

	_ "modernc.org/sqlite"
)

func TestServiceCreate_AssignsIDAndDefaults(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := NewService(NewSQLiteRepository(db))

	p := validPayload()
	p.Benefits = nil
	p.AdditionalNotes = ""

	created, err := s.Create(ctx, p)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{}, created.Benefits)
	assert.Equal(t, "", created.AdditionalNotes)
	assert.Equal(t, "2024-06-01T00:00:00Z", created.SubmittedAt, "submittedAt passes through untouched")

	created2, err := s.Create(ctx, validPayload())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, created2.ID, "ids must be unique")
}

func TestServiceCreate_InvalidPayloadNeverReachesStore(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := NewService(NewSQLiteRepository(db))

	p := validPayload()
	p.SelfEmployed = "maybe"

	_, err := s.Create(ctx, p)
	require.ErrorIs(t, err, common.ErrorValidation)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM salary_submissions`).Scan(&n))
	assert.Equal(t, 0, n, "no row may be persisted for a rejected payload")
}

func TestServiceList_NormalizesSelfEmployed(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	// stored values written outside the gate: one legacy NULL, one garbage
	_, err := db.Exec(`INSERT INTO salary_submissions
		(id, position, location, baseSalary, totalComp, experience, selfEmployed, submittedAt) VALUES
		('n', 'Veterinarian', 'Portland, OR', 1, 1, 1, NULL, '2024-01-01T00:00:00Z'),
		('g', 'Veterinarian', 'Portland, OR', 1, 1, 1, 'YES', '2024-02-01T00:00:00Z'),
		('y', 'Veterinarian', 'Portland, OR', 1, 1, 1, 'yes', '2024-03-01T00:00:00Z')`)
	require.NoError(t, err)

	s := NewService(NewSQLiteRepository(db))
	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	bySelf := map[string]string{}
	for _, sub := range got {
		bySelf[sub.ID] = sub.SelfEmployed
	}
	assert.Equal(t, "no", bySelf["n"])
	assert.Equal(t, "no", bySelf["g"], `anything other than "yes" coerces to "no"`)
	assert.Equal(t, "yes", bySelf["y"])
}

func TestServiceDelete_PropagatesNotFound(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := NewService(NewSQLiteRepository(db))

	err := s.Delete(ctx, "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
