package admins

import (
	"context"
	"database/sql"
	"errors"
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

func (r *SQLiteRepository) Create(ctx context.Context, admin *Admin) (*Admin, error) {

	query :=
		`INSERT INTO admin_users (id, username, password_hash, created_at)
		 VALUES (?, ?, ?, ?)
		 `

	_, err := r.db.ExecContext(ctx, query,
		admin.ID, admin.Username, admin.PasswordHash, admin.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return admin, nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	query :=
		`SELECT id, username, password_hash, created_at FROM admin_users
		 WHERE username = ?
		 `

	admin := &Admin{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return admin, nil
}

// GetByCredentials looks up an admin by exact match on username and the
// precomputed password hash. No rows means the credentials are wrong; the
// caller decides how to report that.
func (r *SQLiteRepository) GetByCredentials(ctx context.Context, username string, passwordHash string) (*Admin, error) {
	query :=
		`SELECT id, username, password_hash, created_at FROM admin_users
		 WHERE username = ? AND password_hash = ?
		 `

	admin := &Admin{}
	err := r.db.QueryRowContext(ctx, query, username, passwordHash).
		Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return admin, nil
}

func (r *SQLiteRepository) UpdatePasswordHash(ctx context.Context, username string, passwordHash string) error {
	query := `UPDATE admin_users SET password_hash = ? WHERE username = ?`

	res, err := r.db.ExecContext(ctx, query, passwordHash, username)
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
