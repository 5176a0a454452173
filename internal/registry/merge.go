package registry

import "github.com/praguedigital/leadgen-cli/internal/model"

// Merge copies registry-sourced legal fields from src onto dst. A registry
// value wins only when it is present; an absent registry value never
// clears what dst already has.
func Merge(dst, src *model.Prospect) {
	if src == nil {
		return
	}
	if src.ICO != "" {
		dst.ICO = src.ICO
	}
	if src.LegalName != "" {
		dst.LegalName = src.LegalName
	}
	if src.Status != "" {
		dst.Status = src.Status
	}
	if src.RegistrationDate != nil {
		dst.RegistrationDate = src.RegistrationDate
	}
}
