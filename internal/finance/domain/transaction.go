package domain

import (
	"time"

	"github.com/shopspring/decimal"

	financeErrors "github.com/SergioRicJr/financial-boost/internal/finance/errors"
)

// Operation is the cash-flow sign of a transaction. The numeric codes are
// persisted; never renumber them.
type Operation int16

const (
	OperationPositive Operation = 0 // inflow (+)
	OperationNegative Operation = 1 // outflow (-)
)

var operationNames = map[Operation]string{
	OperationPositive: "POSITIVE",
	OperationNegative: "NEGATIVE",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "UNKNOWN"
}

func (o Operation) Valid() bool {
	_, ok := operationNames[o]
	return ok
}

func ParseOperation(s string) (Operation, error) {
	for op, name := range operationNames {
		if name == s {
			return op, nil
		}
	}
	return 0, financeErrors.NewValidationError("Operation must be 'POSITIVE' or 'NEGATIVE'")
}

// PaymentType is the payment rail of a transaction. The numeric codes are
// persisted; never renumber them.
type PaymentType int16

const (
	PaymentTypePix    PaymentType = 0
	PaymentTypeTed    PaymentType = 1
	PaymentTypeDoc    PaymentType = 2
	PaymentTypeTef    PaymentType = 3
	PaymentTypeBoleto PaymentType = 4
)

var paymentTypeNames = map[PaymentType]string{
	PaymentTypePix:    "PIX",
	PaymentTypeTed:    "TED",
	PaymentTypeDoc:    "DOC",
	PaymentTypeTef:    "TEF",
	PaymentTypeBoleto: "BOLETO",
}

func (t PaymentType) String() string {
	if name, ok := paymentTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

func (t PaymentType) Valid() bool {
	_, ok := paymentTypeNames[t]
	return ok
}

func ParsePaymentType(s string) (PaymentType, error) {
	for pt, name := range paymentTypeNames {
		if name == s {
			return pt, nil
		}
	}
	return 0, financeErrors.NewValidationError("Type must be one of 'PIX', 'TED', 'DOC', 'TEF', 'BOLETO'")
}

// DatetimeLayout is the wire format for transaction timestamps. No timezone
// component, matching the stored TIMESTAMP columns.
const DatetimeLayout = "2006-01-02T15:04:05"

type Transaction struct {
	ID         int
	Value      decimal.Decimal
	Operation  Operation
	Type       PaymentType
	Datetime   time.Time
	CategoryID int
	UserID     string // user UUID
	ImgURL     *string
}

func (t *Transaction) Validate() error {
	if t.Value.IsNegative() {
		return financeErrors.NewValidationError("Value must not be negative")
	}
	if !t.Operation.Valid() {
		return financeErrors.NewValidationError("Operation must be 'POSITIVE' or 'NEGATIVE'")
	}
	if !t.Type.Valid() {
		return financeErrors.NewValidationError("Type must be one of 'PIX', 'TED', 'DOC', 'TEF', 'BOLETO'")
	}
	if t.Datetime.IsZero() {
		return financeErrors.NewValidationError("Datetime is required")
	}
	if t.CategoryID == 0 {
		return financeErrors.NewValidationError("CategoryId is required")
	}
	return nil
}

// TransactionUpdate carries a partial update. Nil fields are left unchanged;
// none of the fields can be cleared, only overwritten.
type TransactionUpdate struct {
	Value      *decimal.Decimal
	Operation  *Operation
	Type       *PaymentType
	Datetime   *time.Time
	CategoryID *int
	ImgURL     *string
}

// TransactionFilter lists the active clauses of a filtered scan. UserID is
// mandatory; every query is scoped to one user. Each non-nil optional field
// adds one AND-ed clause, range bounds are inclusive and independent. The
// structure itself performs no I/O; the storage layer translates it.
type TransactionFilter struct {
	UserID      string
	CategoryID  *int
	Operation   *Operation
	Type        *PaymentType
	ValueMin    *decimal.Decimal
	ValueMax    *decimal.Decimal
	DatetimeMin *time.Time
	DatetimeMax *time.Time
}

// TransactionWithCategory is a scan row joined with the owning category's
// name, used to denormalize responses without a second lookup.
type TransactionWithCategory struct {
	Transaction
	CategoryName string
}

type TransactionRepository interface {
	Save(transaction *Transaction) error
	FindByID(transactionID int) (*Transaction, error)
	FindByFilter(filter TransactionFilter, limit, offset int) ([]TransactionWithCategory, error)
	CountByFilter(filter TransactionFilter) (int, error)
	Update(transaction *Transaction) error
	Delete(transactionID int) error
}
