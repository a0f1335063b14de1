package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods accepted on an expense
const (
	PaymentCash         = "Cash"
	PaymentCard         = "Card"
	PaymentUPI          = "UPI"
	PaymentBankTransfer = "Bank Transfer"
	PaymentOther        = "Other"
)

// PaymentMethods lists every accepted payment method
var PaymentMethods = []string{PaymentCash, PaymentCard, PaymentUPI, PaymentBankTransfer, PaymentOther}

// SourceKind identifies the kind of definition an expense was materialized from
type SourceKind string

const (
	SourceManual    SourceKind = ""
	SourceEMI       SourceKind = "emi"
	SourceRecurring SourceKind = "recurring"
)

// SourceRef links a materialized expense back to its originating definition
type SourceRef struct {
	Kind SourceKind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

// Expense represents a single spending record
type Expense struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes,omitempty"`
	SourceKind    SourceKind      `json:"source_kind,omitempty"`
	SourceID      uuid.NullUUID   `json:"source_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// LinkedTo reports whether the expense was materialized from ref
func (e Expense) LinkedTo(ref SourceRef) bool {
	return e.SourceKind != SourceManual && e.SourceKind == ref.Kind && e.SourceID.Valid && e.SourceID.UUID == ref.ID
}

// ExpenseDraft is an expense that has been computed but not yet persisted
type ExpenseDraft struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Source      SourceRef       `json:"source"`
}

// ToExpense turns the draft into an expense owned by userID
func (d ExpenseDraft) ToExpense(userID uuid.UUID) *Expense {
	return &Expense{
		UserID:        userID,
		Description:   d.Description,
		Amount:        d.Amount,
		Category:      d.Category,
		Date:          d.Date,
		PaymentMethod: PaymentOther,
		SourceKind:    d.Source.Kind,
		SourceID:      uuid.NullUUID{UUID: d.Source.ID, Valid: true},
	}
}
