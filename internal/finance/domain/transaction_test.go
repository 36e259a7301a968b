package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	financeErrors "github.com/SergioRicJr/financial-boost/internal/finance/errors"
)

func validTransaction() Transaction {
	return Transaction{
		Value:      decimal.NewFromFloat(120.50),
		Operation:  OperationNegative,
		Type:       PaymentTypePix,
		Datetime:   time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC),
		CategoryID: 1,
		UserID:     "0b8d7f3e-1111-4222-8333-444455556666",
	}
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("POSITIVE")
	require.NoError(t, err)
	assert.Equal(t, OperationPositive, op)

	op, err = ParseOperation("NEGATIVE")
	require.NoError(t, err)
	assert.Equal(t, OperationNegative, op)

	_, err = ParseOperation("negative")
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestParsePaymentType(t *testing.T) {
	for name, want := range map[string]PaymentType{
		"PIX":    PaymentTypePix,
		"TED":    PaymentTypeTed,
		"DOC":    PaymentTypeDoc,
		"TEF":    PaymentTypeTef,
		"BOLETO": PaymentTypeBoleto,
	} {
		pt, err := ParsePaymentType(name)
		require.NoError(t, err)
		assert.Equal(t, want, pt)
		assert.Equal(t, name, pt.String())
	}

	_, err := ParsePaymentType("CASH")
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestStableCodes(t *testing.T) {
	// Persisted values; a renumbering would corrupt existing rows.
	assert.Equal(t, int16(0), int16(OperationPositive))
	assert.Equal(t, int16(1), int16(OperationNegative))
	assert.Equal(t, int16(0), int16(PaymentTypePix))
	assert.Equal(t, int16(1), int16(PaymentTypeTed))
	assert.Equal(t, int16(2), int16(PaymentTypeDoc))
	assert.Equal(t, int16(3), int16(PaymentTypeTef))
	assert.Equal(t, int16(4), int16(PaymentTypeBoleto))
}

func TestTransactionValidate(t *testing.T) {
	transaction := validTransaction()
	assert.NoError(t, transaction.Validate())

	negative := validTransaction()
	negative.Value = decimal.NewFromFloat(-1)
	assert.True(t, financeErrors.IsValidationError(negative.Validate()))

	zeroValue := validTransaction()
	zeroValue.Value = decimal.Zero
	assert.NoError(t, zeroValue.Validate())

	badOperation := validTransaction()
	badOperation.Operation = Operation(7)
	assert.True(t, financeErrors.IsValidationError(badOperation.Validate()))

	badType := validTransaction()
	badType.Type = PaymentType(9)
	assert.True(t, financeErrors.IsValidationError(badType.Validate()))

	noDatetime := validTransaction()
	noDatetime.Datetime = time.Time{}
	assert.True(t, financeErrors.IsValidationError(noDatetime.Validate()))

	noCategory := validTransaction()
	noCategory.CategoryID = 0
	assert.True(t, financeErrors.IsValidationError(noCategory.Validate()))
}

func TestDatetimeLayoutRoundTrip(t *testing.T) {
	parsed, err := time.Parse(DatetimeLayout, "2024-03-10T14:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10T14:00:00", parsed.Format(DatetimeLayout))
}
