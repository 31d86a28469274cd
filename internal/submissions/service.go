package submissions

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the payload and, on acceptance, assigns a fresh id,
// defaults unset optional fields, and persists the record. The store is
// never called for a payload that fails validation.
//
// SubmittedAt is passed through exactly as the client supplied it.
func (s *Service) Create(ctx context.Context, p *Payload) (*Submission, error) {

	if err := Validate(p); err != nil {
		return nil, err
	}

	benefits := p.Benefits
	if benefits == nil {
		benefits = []string{}
	}

	submission := &Submission{
		ID:                   uuid.NewString(),
		Position:             p.Position,
		Location:             p.Location,
		Company:              p.Company,
		BaseSalary:           *p.BaseSalary,
		TotalComp:            *p.TotalComp,
		Experience:           *p.Experience,
		SelfEmployed:         p.SelfEmployed,
		ClinicalHoursPerWeek: p.ClinicalHoursPerWeek,
		Benefits:             benefits,
		AdditionalNotes:      p.AdditionalNotes,
		SubmittedAt:          p.SubmittedAt,
	}

	submission, err := s.repo.Create(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("error creating submission: %v", err)
	}

	return submission, nil
}

// List returns all submissions newest-first. Stored selfEmployed values are
// normalized on read: anything other than "yes" coerces to "no".
func (s *Service) List(ctx context.Context) ([]*Submission, error) {

	result, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing submissions: %v", err)
	}

	for _, sub := range result {
		if sub.SelfEmployed != "yes" {
			sub.SelfEmployed = "no"
		}
	}

	return result, nil
}

// Delete removes the submission with the given id. The repository reports
// common.ErrorNotFound when the id does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
