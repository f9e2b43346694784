package models

import (
	"fmt"
	"time"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type ReviewAction string

const (
	ReviewApprove ReviewAction = "approve"
	ReviewReject  ReviewAction = "reject"
)

func (a ReviewAction) Valid() bool {
	return a == ReviewApprove || a == ReviewReject
}

// TargetStatus is the terminal status a pending request moves to.
func (a ReviewAction) TargetStatus() RequestStatus {
	if a == ReviewApprove {
		return StatusApproved
	}
	return StatusRejected
}

func (a ReviewAction) AuditAction() Action {
	if a == ReviewApprove {
		return ActionWithdrawRequestApproved
	}
	return ActionWithdrawRequestRejected
}

type WithdrawalRequest struct {
	ID          string        `json:"id" db:"id"`
	Amount      Amount        `json:"amount" db:"amount"`
	Note        string        `json:"note" db:"note"`
	RequestedBy string        `json:"requestedBy" db:"requested_by"`
	Status      RequestStatus `json:"status" db:"status"`
	ApprovedBy  *string       `json:"approvedBy" db:"approved_by"`
	ReviewedAt  *time.Time    `json:"reviewedAt" db:"reviewed_at"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
}

type WithdrawalRequestInput struct {
	Amount Amount `json:"amount"`
	Note   string `json:"note"`
}

type Withdrawal struct {
	ID        string    `json:"id" db:"id"`
	RequestID string    `json:"requestId" db:"request_id"`
	Amount    Amount    `json:"amount" db:"amount"`
	Note      string    `json:"note" db:"note"`
	AdminID   string    `json:"adminId" db:"admin_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Review carries everything a store needs to apply a review in one transaction.
// WithdrawalID is only used on approval.
type Review struct {
	RequestID    string
	Action       ReviewAction
	Reviewer     Principal
	ReviewedAt   time.Time
	WithdrawalID string
	LogEntryID   string
}

// Apply moves a pending request to its reviewed state.
func (r Review) Apply(req *WithdrawalRequest) {
	reviewer := r.Reviewer.ID
	reviewedAt := r.ReviewedAt
	req.Status = r.Action.TargetStatus()
	req.ApprovedBy = &reviewer
	req.ReviewedAt = &reviewedAt
}

func (r Review) Withdrawal(req WithdrawalRequest) Withdrawal {
	return Withdrawal{
		ID:        r.WithdrawalID,
		RequestID: req.ID,
		Amount:    req.Amount,
		Note:      req.Note,
		AdminID:   r.Reviewer.ID,
		CreatedAt: r.ReviewedAt,
	}
}

func (r Review) LogEntry(req WithdrawalRequest) ManagementLogEntry {
	return ManagementLogEntry{
		ID:         r.LogEntryID,
		Action:     r.Action.AuditAction(),
		ActorID:    r.Reviewer.ID,
		ActorEmail: r.Reviewer.Email,
		Details:    fmt.Sprintf("requestId=%s; amount=%s", req.ID, req.Amount),
		CreatedAt:  r.ReviewedAt,
	}
}

type ReviewResult struct {
	Request    WithdrawalRequest `json:"request"`
	Withdrawal *Withdrawal       `json:"withdrawal,omitempty"`
}

type Overview struct {
	TotalReceived          Amount      `json:"totalReceived"`
	TotalWithdrawn         Amount      `json:"totalWithdrawn"`
	Balance                Amount      `json:"balance"`
	DonationCount          int         `json:"donationCount"`
	WithdrawalCount        int         `json:"withdrawalCount"`
	PendingRequestCount    int         `json:"pendingRequestCount"`
	PendingRequestedAmount Amount      `json:"pendingRequestedAmount"`
	LastWithdrawal         *Withdrawal `json:"lastWithdrawal"`
}
