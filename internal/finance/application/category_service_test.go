package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergioRicJr/financial-boost/internal/finance/domain"
	financeErrors "github.com/SergioRicJr/financial-boost/internal/finance/errors"
	"github.com/SergioRicJr/financial-boost/internal/finance/infrastructure"
)

func TestCreateCategory_AssignsID(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	category, err := service.CreateCategory(userAlice, "Groceries", "cart")
	require.NoError(t, err)

	assert.NotZero(t, category.ID)
	assert.Equal(t, userAlice, category.UserID)
}

func TestCreateCategory_NameRequired(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	_, err := service.CreateCategory(userAlice, "", "cart")
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestGetCategory_ForeignOwnerLooksNonexistent(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	category := &domain.Category{Name: "Rent", UserID: userBob}
	require.NoError(t, repo.Save(category))

	_, err := service.GetCategory(userAlice, category.ID)
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)

	_, err = service.GetCategory(userAlice, 424242)
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
}

func TestGetUserCategories_OnlyOwn(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	require.NoError(t, repo.Save(&domain.Category{Name: "Groceries", UserID: userAlice}))
	require.NoError(t, repo.Save(&domain.Category{Name: "Rent", UserID: userBob}))

	categories, err := service.GetUserCategories(userAlice)
	require.NoError(t, err)

	require.Len(t, categories, 1)
	assert.Equal(t, "Groceries", categories[0].Name)
}

func TestDeleteCategory_BlockedWhileReferenced(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{TransactionCounts: map[int]int{}}
	service := NewCategoryService(repo)

	category := &domain.Category{Name: "Groceries", UserID: userAlice}
	require.NoError(t, repo.Save(category))
	repo.TransactionCounts[category.ID] = 3

	err := service.DeleteCategory(userAlice, category.ID)
	assert.ErrorIs(t, err, financeErrors.ErrCategoryInUse)
	assert.Len(t, repo.Categories, 1)
}

func TestDeleteCategory_OwnedAndUnreferenced(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{TransactionCounts: map[int]int{}}
	service := NewCategoryService(repo)

	category := &domain.Category{Name: "Groceries", UserID: userAlice}
	require.NoError(t, repo.Save(category))

	require.NoError(t, service.DeleteCategory(userAlice, category.ID))
	assert.Empty(t, repo.Categories)
}
