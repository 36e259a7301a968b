package infrastructure

import (
	"sort"

	"github.com/SergioRicJr/financial-boost/internal/finance/domain"
	financeErrors "github.com/SergioRicJr/financial-boost/internal/finance/errors"
)

// MockTransactionRepository is an in-memory TransactionRepository used by
// service tests. It applies filters with the same semantics as the SQL
// translation, including the deterministic datetime/id ordering.
type MockTransactionRepository struct {
	Transactions  []domain.TransactionWithCategory
	CategoryNames map[int]string
	SaveErr       error
	nextID        int
}

func matchesFilter(t domain.TransactionWithCategory, f domain.TransactionFilter) bool {
	if t.UserID != f.UserID {
		return false
	}
	if f.CategoryID != nil && t.CategoryID != *f.CategoryID {
		return false
	}
	if f.Operation != nil && t.Operation != *f.Operation {
		return false
	}
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.ValueMin != nil && t.Value.LessThan(*f.ValueMin) {
		return false
	}
	if f.ValueMax != nil && t.Value.GreaterThan(*f.ValueMax) {
		return false
	}
	if f.DatetimeMin != nil && t.Datetime.Before(*f.DatetimeMin) {
		return false
	}
	if f.DatetimeMax != nil && t.Datetime.After(*f.DatetimeMax) {
		return false
	}
	return true
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.nextID++
	transaction.ID = m.nextID
	m.Transactions = append(m.Transactions, domain.TransactionWithCategory{
		Transaction:  *transaction,
		CategoryName: m.CategoryNames[transaction.CategoryID],
	})
	return nil
}

func (m *MockTransactionRepository) FindByID(transactionID int) (*domain.Transaction, error) {
	for _, t := range m.Transactions {
		if t.ID == transactionID {
			transaction := t.Transaction
			return &transaction, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) FindByFilter(filter domain.TransactionFilter, limit, offset int) ([]domain.TransactionWithCategory, error) {
	var matched []domain.TransactionWithCategory
	for _, t := range m.Transactions {
		if matchesFilter(t, filter) {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Datetime.Equal(matched[j].Datetime) {
			return matched[i].Datetime.After(matched[j].Datetime)
		}
		return matched[i].ID > matched[j].ID
	})
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *MockTransactionRepository) CountByFilter(filter domain.TransactionFilter) (int, error) {
	count := 0
	for _, t := range m.Transactions {
		if matchesFilter(t, filter) {
			count++
		}
	}
	return count, nil
}

func (m *MockTransactionRepository) Update(transaction *domain.Transaction) error {
	for i, t := range m.Transactions {
		if t.ID == transaction.ID {
			m.Transactions[i] = domain.TransactionWithCategory{
				Transaction:  *transaction,
				CategoryName: m.CategoryNames[transaction.CategoryID],
			}
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Delete(transactionID int) error {
	for i, t := range m.Transactions {
		if t.ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

// MockCategoryRepository is the in-memory CategoryRepository counterpart.
type MockCategoryRepository struct {
	Categories        []domain.Category
	TransactionCounts map[int]int
	nextID            int
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	for _, c := range m.Categories {
		if c.ID == categoryID {
			category := c
			return &category, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	var categories []domain.Category
	for _, c := range m.Categories {
		if c.UserID == userID {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) Delete(categoryID int) error {
	for i, c := range m.Categories {
		if c.ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) DoesCategoryExistByID(categoryID int, userID string) (bool, error) {
	for _, c := range m.Categories {
		if c.ID == categoryID && c.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) CountTransactions(categoryID int) (int, error) {
	return m.TransactionCounts[categoryID], nil
}
