package models

import "strings"

// CapabilityReviewWithdrawals allows reviewing withdrawal requests and reading donor data and the audit log.
const CapabilityReviewWithdrawals = "review_withdrawals"

// Principal is the verified caller resolved from a bearer credential.
type Principal struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Capabilities []string `json:"capabilities"`
}

func (p Principal) HasCapability(capability string) bool {
	for _, c := range p.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
