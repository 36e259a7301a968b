package interfaces

import (
	"errors"

	"github.com/SergioRicJr/financial-boost/internal/finance/domain"
	financeErrors "github.com/SergioRicJr/financial-boost/internal/finance/errors"
)

type MockCategoryService struct {
	categories []domain.Category
	deleteErr  error
	shouldFail bool
}

func (m *MockCategoryService) CreateCategory(userID, name, icon string) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	category := domain.Category{ID: len(m.categories) + 1, Name: name, Icon: icon, UserID: userID}
	m.categories = append(m.categories, category)
	return &category, nil
}

func (m *MockCategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	var categories []domain.Category
	for _, c := range m.categories {
		if c.UserID == userID {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (m *MockCategoryService) GetCategory(userID string, categoryID int) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	for _, c := range m.categories {
		if c.ID == categoryID && c.UserID == userID {
			category := c
			return &category, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) DeleteCategory(userID string, categoryID int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, err := m.GetCategory(userID, categoryID); err != nil {
		return err
	}
	return nil
}
