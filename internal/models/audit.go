package models

import "time"

type Action string

const (
	ActionRegister                Action = "REGISTER"
	ActionDonationReceived        Action = "DONATION_RECEIVED"
	ActionWithdrawRequestCreated  Action = "WITHDRAW_REQUEST_CREATED"
	ActionWithdrawRequestApproved Action = "WITHDRAW_REQUEST_APPROVED"
	ActionWithdrawRequestRejected Action = "WITHDRAW_REQUEST_REJECTED"
	ActionProgramCreated          Action = "PROGRAM_CREATED"
	ActionProgramUpdated          Action = "PROGRAM_UPDATED"
	ActionProgramDeleted          Action = "PROGRAM_DELETED"
)

func (a Action) Valid() bool {
	switch a {
	case ActionRegister, ActionDonationReceived,
		ActionWithdrawRequestCreated, ActionWithdrawRequestApproved, ActionWithdrawRequestRejected,
		ActionProgramCreated, ActionProgramUpdated, ActionProgramDeleted:
		return true
	}
	return false
}

type ManagementLogEntry struct {
	ID         string    `json:"id" db:"id"`
	Action     Action    `json:"action" db:"action"`
	ActorID    string    `json:"actorId" db:"actor_id"`
	ActorEmail string    `json:"actorEmail" db:"actor_email"`
	Details    string    `json:"details" db:"details"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
