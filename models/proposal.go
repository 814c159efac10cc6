package models

import (
	"time"

	"gorm.io/gorm"
)

// Wedding proposal status constants
const (
	ProposalStatusDraft     = "DRAFT"
	ProposalStatusSent      = "SENT"
	ProposalStatusAccepted  = "ACCEPTED"
	ProposalStatusDeclined  = "DECLINED"
	ProposalStatusCompleted = "COMPLETED"
)

// Installment status constants
const (
	InstallmentStatusDue  = "DUE"
	InstallmentStatusPaid = "PAID"
)

// WeddingProposal is a quoted event package paid off in installments
// before the event date.
type WeddingProposal struct {
	gorm.Model
	Name          string                   `json:"name" gorm:"not null"`
	CustomerName  string                   `json:"customer_name" gorm:"not null"`
	CustomerEmail string                   `json:"customer_email"`
	EventDate     time.Time                `json:"event_date" gorm:"type:date;not null"`
	TotalAmount   float64                  `json:"total_amount"`
	Status        string                   `json:"status" gorm:"default:'DRAFT'"`
	Installments  []PaymentPlanInstallment `json:"installments,omitempty" gorm:"foreignKey:ProposalID"`
}

// PaymentPlanInstallment is one scheduled payment of a proposal's plan.
type PaymentPlanInstallment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ProposalID uint       `json:"proposal_id" gorm:"index:idx_installment_seq,unique"`
	Sequence   int        `json:"sequence" gorm:"index:idx_installment_seq,unique"`
	Amount     float64    `json:"amount"`
	DueDate    time.Time  `json:"due_date" gorm:"type:date"`
	Status     string     `json:"status" gorm:"default:'DUE'"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
