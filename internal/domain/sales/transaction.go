package sales

import (
	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/domain/shared"
)

// TransactionResult is the payment outcome, stored as an ordinal
type TransactionResult int

const (
	TransactionFailed TransactionResult = iota
	TransactionSuccess
)

// ParseTransactionResult decodes a stored ordinal into a TransactionResult
func ParseTransactionResult(code int) (TransactionResult, error) {
	switch TransactionResult(code) {
	case TransactionFailed, TransactionSuccess:
		return TransactionResult(code), nil
	default:
		return 0, shared.ErrInvalidState
	}
}

// Valid reports whether the result is a defined ordinal
func (r TransactionResult) Valid() bool {
	_, err := ParseTransactionResult(int(r))
	return err == nil
}

// String returns the result name
func (r TransactionResult) String() string {
	switch r {
	case TransactionFailed:
		return "failed"
	case TransactionSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Transaction is a payment attempt recorded against an invoice
type Transaction struct {
	shared.BaseEntity
	InvoiceID            uuid.UUID         `gorm:"type:uuid;not null;index"`
	Result               TransactionResult `gorm:"not null"`
	CreditCardNumber     string            `gorm:"type:varchar(30)"`
	CreditCardExpiration string            `gorm:"type:varchar(10)"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// NewTransaction records a payment attempt for an invoice
func NewTransaction(invoiceID uuid.UUID, result TransactionResult, cardNumber, cardExpiration string) (*Transaction, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Transaction requires an invoice")
	}
	if !result.Valid() {
		return nil, shared.ErrInvalidState
	}
	return &Transaction{
		BaseEntity:           shared.NewBaseEntity(),
		InvoiceID:            invoiceID,
		Result:               result,
		CreditCardNumber:     cardNumber,
		CreditCardExpiration: cardExpiration,
	}, nil
}

// Succeeded reports whether the payment went through
func (t *Transaction) Succeeded() bool {
	return t.Result == TransactionSuccess
}
