package application

import (
	"context"
	"fmt"

	"github.com/SergioRicJr/financial-boost/internal/finance/domain"
	financeErrors "github.com/SergioRicJr/financial-boost/internal/finance/errors"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// CategoryGuard is the slice of the category service the transaction service
// needs: ownership-checked category resolution.
type CategoryGuard interface {
	GetCategory(userID string, categoryID int) (*domain.Category, error)
}

// Uploader stores a receipt image and returns a stable URL for it.
type Uploader interface {
	Upload(ctx context.Context, data []byte, originalName string) (string, error)
}

// ReceiptImage is a raw image payload taken from a multipart request.
type ReceiptImage struct {
	Data []byte
	Name string
}

type TransactionView struct {
	ID           int     `json:"id"`
	CategoryName string  `json:"categoryName"`
	CategoryID   int     `json:"categoryId"`
	Operation    string  `json:"operation"`
	Type         string  `json:"type"`
	Datetime     string  `json:"datetime"`
	Value        string  `json:"value"`
	ImgURL       *string `json:"imgUrl,omitempty"`
}

type TransactionPage struct {
	Content       []TransactionView `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int               `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

type TransactionService struct {
	repo       domain.TransactionRepository
	categories CategoryGuard
	uploader   Uploader
}

func NewTransactionService(repo domain.TransactionRepository, categories CategoryGuard, uploader Uploader) *TransactionService {
	return &TransactionService{repo: repo, categories: categories, uploader: uploader}
}

func newTransactionView(t *domain.Transaction, categoryName string) *TransactionView {
	return &TransactionView{
		ID:           t.ID,
		CategoryName: categoryName,
		CategoryID:   t.CategoryID,
		Operation:    t.Operation.String(),
		Type:         t.Type.String(),
		Datetime:     t.Datetime.Format(domain.DatetimeLayout),
		Value:        t.Value.String(),
		ImgURL:       t.ImgURL,
	}
}

func (s *TransactionService) uploadReceipt(ctx context.Context, image *ReceiptImage) (*string, error) {
	url, err := s.uploader.Upload(ctx, image.Data, image.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", financeErrors.ErrUploadFailed, err)
	}
	return &url, nil
}

// CreateTransaction persists a new transaction for userID. The category must
// resolve within the user's own set first; a failed receipt upload aborts the
// whole request, nothing is saved without its image.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, transaction *domain.Transaction, image *ReceiptImage) (*TransactionView, error) {
	transaction.UserID = userID

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categories.GetCategory(userID, transaction.CategoryID)
	if err != nil {
		return nil, err
	}

	if image != nil && len(image.Data) > 0 {
		url, err := s.uploadReceipt(ctx, image)
		if err != nil {
			return nil, err
		}
		transaction.ImgURL = url
	}

	if err := s.repo.Save(transaction); err != nil {
		return nil, err
	}
	return newTransactionView(transaction, category.Name), nil
}

// getOwned loads a transaction and applies the ownership guard: a foreign
// owner collapses to not-found.
func (s *TransactionService) getOwned(userID string, transactionID int) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.UserID != userID {
		return nil, financeErrors.ErrTransactionNotFound
	}
	return transaction, nil
}

func (s *TransactionService) GetTransaction(userID string, transactionID int) (*TransactionView, error) {
	transaction, err := s.getOwned(userID, transactionID)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.GetCategory(userID, transaction.CategoryID)
	if err != nil {
		return nil, err
	}
	return newTransactionView(transaction, category.Name), nil
}

// ListTransactions runs a filtered, paginated scan over the user's
// transactions. The filter's user scoping is forced to userID regardless of
// what the caller put there; page is zero-based.
func (s *TransactionService) ListTransactions(userID string, page, size int, filter domain.TransactionFilter) (*TransactionPage, error) {
	filter.UserID = userID

	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	total, err := s.repo.CountByFilter(filter)
	if err != nil {
		return nil, err
	}

	transactions, err := s.repo.FindByFilter(filter, size, page*size)
	if err != nil {
		return nil, err
	}

	views := make([]TransactionView, 0, len(transactions))
	for i := range transactions {
		views = append(views, *newTransactionView(&transactions[i].Transaction, transactions[i].CategoryName))
	}

	totalPages := (total + size - 1) / size

	return &TransactionPage{
		Content:       views,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// UpdateTransaction applies a partial update: only non-nil fields overwrite
// the stored record. Reassigning the category re-runs the ownership check on
// the new id.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID string, transactionID int, update domain.TransactionUpdate, image *ReceiptImage) (*TransactionView, error) {
	transaction, err := s.getOwned(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if update.Value != nil {
		transaction.Value = *update.Value
	}
	if update.Operation != nil {
		transaction.Operation = *update.Operation
	}
	if update.Type != nil {
		transaction.Type = *update.Type
	}
	if update.Datetime != nil {
		transaction.Datetime = *update.Datetime
	}
	if update.CategoryID != nil {
		if _, err := s.categories.GetCategory(userID, *update.CategoryID); err != nil {
			return nil, err
		}
		transaction.CategoryID = *update.CategoryID
	}
	if image != nil && len(image.Data) > 0 {
		url, err := s.uploadReceipt(ctx, image)
		if err != nil {
			return nil, err
		}
		transaction.ImgURL = url
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(transaction); err != nil {
		return nil, err
	}

	category, err := s.categories.GetCategory(userID, transaction.CategoryID)
	if err != nil {
		return nil, err
	}
	return newTransactionView(transaction, category.Name), nil
}

func (s *TransactionService) DeleteTransaction(userID string, transactionID int) error {
	if _, err := s.getOwned(userID, transactionID); err != nil {
		return err
	}
	return s.repo.Delete(transactionID)
}
