package interfaces

import (
	"context"

	"github.com/SergioRicJr/financial-boost/internal/finance/application"
	"github.com/SergioRicJr/financial-boost/internal/finance/domain"
)

type MockTransactionService struct {
	view *application.TransactionView
	page *application.TransactionPage
	err  error

	lastUserID      string
	lastPage        int
	lastSize        int
	lastFilter      domain.TransactionFilter
	lastTransaction *domain.Transaction
	lastUpdate      domain.TransactionUpdate
	lastImage       *application.ReceiptImage
	deletedID       int
}

func (m *MockTransactionService) CreateTransaction(_ context.Context, userID string, transaction *domain.Transaction, image *application.ReceiptImage) (*application.TransactionView, error) {
	m.lastUserID = userID
	m.lastTransaction = transaction
	m.lastImage = image
	return m.view, m.err
}

func (m *MockTransactionService) GetTransaction(userID string, transactionID int) (*application.TransactionView, error) {
	m.lastUserID = userID
	return m.view, m.err
}

func (m *MockTransactionService) ListTransactions(userID string, page, size int, filter domain.TransactionFilter) (*application.TransactionPage, error) {
	m.lastUserID = userID
	m.lastPage = page
	m.lastSize = size
	m.lastFilter = filter
	return m.page, m.err
}

func (m *MockTransactionService) UpdateTransaction(_ context.Context, userID string, transactionID int, update domain.TransactionUpdate, image *application.ReceiptImage) (*application.TransactionView, error) {
	m.lastUserID = userID
	m.lastUpdate = update
	m.lastImage = image
	return m.view, m.err
}

func (m *MockTransactionService) DeleteTransaction(userID string, transactionID int) error {
	m.lastUserID = userID
	m.deletedID = transactionID
	return m.err
}
