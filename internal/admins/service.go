package admins

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salarywatch/backend/internal/common"
	"github.com/salarywatch/backend/internal/dbx"
)

// Default credentials seeded on first startup. Operators are expected to
// rotate the password out-of-band (see cmd/adminctl); there is no endpoint
// for it.
const (
	DefaultUsername = "admin"
	defaultPassword = "admin123"
)

const tokenSizeBytes = 32

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// HashPassword returns the hex-encoded sha256 digest of password. The digest
// is unsalted so that lookups can exact-match the stored hash.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Login checks the credentials against the store and, on success, returns a
// fresh opaque session token (random bytes, hex-encoded). The token is not
// persisted and is never verified against the admin record on later requests;
// protected endpoints only check that some bearer token is present.
func (s *Service) Login(ctx context.Context, username string, password string) (string, error) {

	_, err := s.repo.GetByCredentials(ctx, username, HashPassword(password))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("error checking credentials: %w", err)
	}

	token, err := common.MakeRandHexString(tokenSizeBytes)
	if err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return token, nil
}

// RotatePassword replaces the stored hash for username with the hash of
// newPassword. Returns common.ErrorNotFound if no such admin exists.
func (s *Service) RotatePassword(ctx context.Context, username string, newPassword string) error {
	return s.repo.UpdatePasswordHash(ctx, username, HashPassword(newPassword))
}

// SeedDefault creates the default admin account if no admin with that
// username exists yet. The existence check and insert run in one transaction
// so concurrent startups cannot insert twice.
func SeedDefault(ctx context.Context, db *sql.DB) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)

		_, err := repo.GetByUsername(ctx, DefaultUsername)
		if err == nil {
			return nil // already seeded
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		admin := &Admin{
			ID:           uuid.NewString(),
			Username:     DefaultUsername,
			PasswordHash: HashPassword(defaultPassword),
			CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		}

		if _, err := repo.Create(ctx, admin); err != nil {
			return fmt.Errorf("error seeding default admin: %w", err)
		}
		return nil
	})
}
