package submissions

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, submission *Submission) (*Submission, error)
	GetAll(ctx context.Context) ([]*Submission, error)
	DeleteByID(ctx context.Context, id string) error
}
