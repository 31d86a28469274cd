package submissions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/salarywatch/backend/internal/common"
	"github.com/salarywatch/backend/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// encodeBenefits serializes the benefits labels to the TEXT column form.
// SQLite has no array type, so the slice crosses this boundary as JSON.
// A nil slice is stored as "[]".
func encodeBenefits(benefits []string) (string, error) {
	if benefits == nil {
		benefits = []string{}
	}
	b, err := json.Marshal(benefits)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeBenefits parses the stored TEXT column back into labels.
// NULL, empty, or malformed values normalize to an empty slice.
func decodeBenefits(stored sql.NullString) []string {
	if !stored.Valid || stored.String == "" {
		return []string{}
	}
	var benefits []string
	if err := json.Unmarshal([]byte(stored.String), &benefits); err != nil {
		return []string{}
	}
	if benefits == nil {
		return []string{}
	}
	return benefits
}

func (r *SQLiteRepository) Create(ctx context.Context, submission *Submission) (*Submission, error) {

	benefits, err := encodeBenefits(submission.Benefits)
	if err != nil {
		return nil, fmt.Errorf("error encoding benefits: %v", err)
	}

	query :=
		`INSERT INTO salary_submissions
		 (id, position, location, company, baseSalary, totalComp, experience,
		  selfEmployed, clinicalHoursPerWeek, benefits, additionalNotes, submittedAt)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 `

	_, err = r.db.ExecContext(ctx, query,
		submission.ID, submission.Position, submission.Location, submission.Company,
		submission.BaseSalary, submission.TotalComp, submission.Experience,
		submission.SelfEmployed, submission.ClinicalHoursPerWeek, benefits,
		submission.AdditionalNotes, submission.SubmittedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return submission, nil
}

// GetAll returns every submission ordered by submittedAt descending. The
// ordering is a lexicographic TEXT compare on the stored timestamp, which
// coincides with chronological order as long as producers emit ISO-8601 UTC.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]*Submission, error) {

	query :=
		`SELECT id, position, location, company, baseSalary, totalComp, experience,
		        selfEmployed, clinicalHoursPerWeek, benefits, additionalNotes, submittedAt
		 FROM salary_submissions
		 ORDER BY submittedAt DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	result := make([]*Submission, 0)

	for rows.Next() {
		var s Submission
		// optional columns may be NULL in rows written by older versions
		var company, selfEmployed, clinicalHours, benefits, notes sql.NullString

		err := rows.Scan(&s.ID, &s.Position, &s.Location, &company,
			&s.BaseSalary, &s.TotalComp, &s.Experience,
			&selfEmployed, &clinicalHours, &benefits, &notes, &s.SubmittedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}

		s.Company = company.String
		s.SelfEmployed = selfEmployed.String
		s.ClinicalHoursPerWeek = clinicalHours.String
		s.AdditionalNotes = notes.String
		s.Benefits = decodeBenefits(benefits)

		result = append(result, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return result, nil
}

// DeleteByID removes at most one row. Returns common.ErrorNotFound when no
// row matched, so a second delete of the same id is a reportable no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM salary_submissions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %v", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
