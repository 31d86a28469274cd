package submissions

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarywatch/backend/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE salary_submissions (
  id TEXT PRIMARY KEY,
  position TEXT NOT NULL,
  location TEXT NOT NULL,
  company TEXT,
  baseSalary REAL NOT NULL,
  totalComp REAL NOT NULL,
  experience REAL NOT NULL,
  selfEmployed TEXT,
  clinicalHoursPerWeek TEXT,
  benefits TEXT,
  additionalNotes TEXT,
  submittedAt TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestCreate_PersistsAllFields(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	r := NewSQLiteRepository(db)

	_, err := r.Create(ctx, &Submission{
		ID:                   "id1",
		Position:             "Veterinarian",
		Location:             "Portland, OR",
		Company:              "Happy Paws Clinic",
		BaseSalary:           110000,
		TotalComp:            125000,
		Experience:           5,
		SelfEmployed:         "no",
		ClinicalHoursPerWeek: "30-40",
		Benefits:             []string{"Health Insurance", "Dental Insurance"},
		AdditionalNotes:      "includes bonus",
		SubmittedAt:          "2024-06-01T00:00:00Z",
	})
	require.NoError(t, err)

	var position, benefits string
	var base float64
	err = db.QueryRow(`SELECT position, benefits, baseSalary FROM salary_submissions WHERE id = ?`, "id1").
		Scan(&position, &benefits, &base)
	require.NoError(t, err)
	assert.Equal(t, "Veterinarian", position)
	assert.JSONEq(t, `["Health Insurance","Dental Insurance"]`, benefits)
	assert.Equal(t, 110000.0, base)
}

func TestGetAll_OrdersBySubmittedAtDescending(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	r := NewSQLiteRepository(db)

	seed := []struct{ id, submittedAt string }{
		{"a", "2024-01-01T00:00:00Z"},
		{"b", "2024-06-01T00:00:00Z"},
		{"c", "2023-12-31T23:59:59Z"},
	}
	for _, row := range seed {
		_, err := r.Create(ctx, &Submission{
			ID: row.id, Position: "Veterinarian", Location: "Portland, OR",
			BaseSalary: 1, TotalComp: 1, Experience: 1,
			SelfEmployed: "no", SubmittedAt: row.submittedAt,
		})
		require.NoError(t, err)
	}

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestGetAll_BenefitsRoundTrip(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	r := NewSQLiteRepository(db)

	want := []string{"Health Insurance", "Dental Insurance"}
	_, err := r.Create(ctx, &Submission{
		ID: "rt", Position: "Veterinarian", Location: "Portland, OR",
		BaseSalary: 1, TotalComp: 1, Experience: 1,
		SelfEmployed: "yes", Benefits: want, SubmittedAt: "2024-06-01T00:00:00Z",
	})
	require.NoError(t, err)

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0].Benefits, "order and values must survive the round trip")
}

func TestGetAll_NullAndLegacyColumnsNormalize(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	// row written by an older version: optional columns NULL
	_, err := db.Exec(`INSERT INTO salary_submissions
		(id, position, location, baseSalary, totalComp, experience, submittedAt)
		VALUES ('old', 'Veterinary Technician', 'Austin, TX', 50000, 52000, 2, '2024-03-01T00:00:00Z')`)
	require.NoError(t, err)

	r := NewSQLiteRepository(db)
	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, []string{}, got[0].Benefits, "NULL benefits must read as empty slice")
	assert.Equal(t, "", got[0].Company)
	assert.Equal(t, "", got[0].AdditionalNotes)
}

func TestDeleteByID_SuccessAndNotFound(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	r := NewSQLiteRepository(db)

	_, err := r.Create(ctx, &Submission{
		ID: "x", Position: "Veterinarian", Location: "Portland, OR",
		BaseSalary: 1, TotalComp: 1, Experience: 1,
		SelfEmployed: "no", SubmittedAt: "2024-06-01T00:00:00Z",
	})
	require.NoError(t, err)

	require.NoError(t, r.DeleteByID(ctx, "x"))

	err = r.DeleteByID(ctx, "x")
	require.ErrorIs(t, err, common.ErrorNotFound)

	err = r.DeleteByID(ctx, "never-existed")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestEncodeBenefits_NilBecomesEmptyArray(t *testing.T) {
	s, err := encodeBenefits(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", s)
}

func TestDecodeBenefits(t *testing.T) {
	tests := []struct {
		name   string
		stored sql.NullString
		want   []string
	}{
		{"null", sql.NullString{}, []string{}},
		{"empty string", sql.NullString{String: "", Valid: true}, []string{}},
		{"json null", sql.NullString{String: "null", Valid: true}, []string{}},
		{"malformed", sql.NullString{String: "{broken", Valid: true}, []string{}},
		{"values", sql.NullString{String: `["a","b"]`, Valid: true}, []string{"a", "b"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, decodeBenefits(tc.stored))
		})
	}
}
