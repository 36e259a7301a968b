package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergioRicJr/financial-boost/internal/finance/domain"
	financeErrors "github.com/SergioRicJr/financial-boost/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	query := `
		INSERT INTO categories (name, icon, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(query, category.Name, category.Icon, category.UserID).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("could not save category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	query := "SELECT id, name, icon, user_id FROM categories WHERE id = $1"

	var category domain.Category
	err := r.db.QueryRow(query, categoryID).Scan(&category.ID, &category.Name, &category.Icon, &category.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("could not find category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	rows, err := r.db.Query("SELECT id, name, icon, user_id FROM categories WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("could not query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Icon, &category.UserID); err != nil {
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Delete(categoryID int) error {
	_, err := r.db.Exec("DELETE FROM categories WHERE id = $1", categoryID)
	if err != nil {
		return fmt.Errorf("could not delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) DoesCategoryExistByID(categoryID int, userID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)"
	err := r.db.QueryRow(query, categoryID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) CountTransactions(categoryID int) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM transactions WHERE category_id = $1", categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("could not count category transactions: %w", err)
	}
	return count, nil
}
