package models

import "time"

type DonationType string

const (
	DonationMonthly DonationType = "monthly"
	DonationOnce    DonationType = "once"
)

func (t DonationType) Valid() bool {
	return t == DonationMonthly || t == DonationOnce
}

// DefaultAmount is the plan amount used when a donor leaves the amount empty.
func (t DonationType) DefaultAmount() Amount {
	if t == DonationMonthly {
		return MajorUnits(25)
	}
	return MajorUnits(60)
}

type PaymentMethod string

const (
	PaymentQR         PaymentMethod = "qr"
	PaymentCreditCard PaymentMethod = "creditcard"
	PaymentDebitCard  PaymentMethod = "debitcard"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentQR, PaymentCreditCard, PaymentDebitCard:
		return true
	}
	return false
}

type Donation struct {
	ID            string        `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Country       string        `json:"country" db:"country"`
	Email         string        `json:"email" db:"email"`
	Phone         string        `json:"phone" db:"phone"`
	Amount        Amount        `json:"amount" db:"amount"`
	DonationType  DonationType  `json:"donationType" db:"donation_type"`
	PaymentMethod PaymentMethod `json:"paymentMethod" db:"payment_method"`
	SelectedQuote string        `json:"selectedQuote,omitempty" db:"selected_quote"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

type DonationInput struct {
	Name          string        `json:"name"`
	Country       string        `json:"country"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Amount        Amount        `json:"amount"`
	DonationType  DonationType  `json:"donationType"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	SelectedQuote string        `json:"selectedQuote"`
}

// DonationFilter narrows donation listings and exports. Zero values match everything.
type DonationFilter struct {
	Country       string
	PaymentMethod PaymentMethod
	DateFrom      *time.Time
	DateTo        *time.Time
}

func (f DonationFilter) Match(d Donation) bool {
	if f.Country != "" && !equalFold(d.Country, f.Country) {
		return false
	}
	if f.PaymentMethod != "" && d.PaymentMethod != f.PaymentMethod {
		return false
	}
	if f.DateFrom != nil && d.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && d.CreatedAt.After(*f.DateTo) {
		return false
	}
	return true
}

type PublicStats struct {
	DonorCount      int    `json:"donorCount"`
	TotalPaidAmount Amount `json:"totalPaidAmount"`
}
