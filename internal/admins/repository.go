package admins

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, admin *Admin) (*Admin, error)
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	GetByCredentials(ctx context.Context, username string, passwordHash string) (*Admin, error)
	UpdatePasswordHash(ctx context.Context, username string, passwordHash string) error
}
