package submissions

import "github.com/salarywatch/backend/internal/common"

// Validate applies the acceptance rules to an inbound payload, in order:
// position and location must be non-empty, baseSalary/totalComp/experience
// must be present (not null), and selfEmployed must be exactly "yes" or "no".
//
// All checks form one atomic gate: any failure yields the same generic
// common.ErrorValidation without field-level detail.
func Validate(p *Payload) error {
	if p.Position == "" {
		return common.ErrorValidation
	}
	if p.Location == "" {
		return common.ErrorValidation
	}
	if p.BaseSalary == nil {
		return common.ErrorValidation
	}
	if p.TotalComp == nil {
		return common.ErrorValidation
	}
	if p.Experience == nil {
		return common.ErrorValidation
	}
	if p.SelfEmployed != "yes" && p.SelfEmployed != "no" {
		return common.ErrorValidation
	}
	return nil
}
