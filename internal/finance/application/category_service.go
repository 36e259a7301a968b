package application

import (
	"github.com/SergioRicJr/financial-boost/internal/finance/domain"
	financeErrors "github.com/SergioRicJr/financial-boost/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) CreateCategory(userID, name, icon string) (*domain.Category, error) {
	if name == "" {
		return nil, financeErrors.NewValidationError("Name is required")
	}
	category := &domain.Category{
		Name:   name,
		Icon:   icon,
		UserID: userID,
	}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	categories, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// GetCategory loads a category by id and confirms it belongs to userID. A
// missing row and a row owned by someone else are indistinguishable to the
// caller.
func (s *CategoryService) GetCategory(userID string, categoryID int) (*domain.Category, error) {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, financeErrors.ErrCategoryNotFound
	}
	return category, nil
}

// DeleteCategory removes an owned category. Deletion is refused while
// transactions still reference the category, so no orphaned references can be
// created.
func (s *CategoryService) DeleteCategory(userID string, categoryID int) error {
	if _, err := s.GetCategory(userID, categoryID); err != nil {
		return err
	}
	count, err := s.repo.CountTransactions(categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return financeErrors.ErrCategoryInUse
	}
	return s.repo.Delete(categoryID)
}
