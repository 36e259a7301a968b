package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergioRicJr/financial-boost/internal/finance/domain"
	financeErrors "github.com/SergioRicJr/financial-boost/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// buildFilterClauses renders the active clauses of a filter as an AND-joined
// WHERE body plus its positional arguments. The user scoping clause is always
// first; the remaining clauses appear only when their filter field is set.
func buildFilterClauses(filter domain.TransactionFilter) (string, []interface{}) {
	clauses := []string{"t.user_id = $1"}
	args := []interface{}{filter.UserID}

	add := func(condition string, value interface{}) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(condition, len(args)))
	}

	if filter.CategoryID != nil {
		add("t.category_id = $%d", *filter.CategoryID)
	}
	if filter.Operation != nil {
		add("t.operation = $%d", int16(*filter.Operation))
	}
	if filter.Type != nil {
		add("t.type = $%d", int16(*filter.Type))
	}
	if filter.ValueMin != nil {
		add("t.value >= $%d", filter.ValueMin.String())
	}
	if filter.ValueMax != nil {
		add("t.value <= $%d", filter.ValueMax.String())
	}
	if filter.DatetimeMin != nil {
		add("t.datetime >= $%d", *filter.DatetimeMin)
	}
	if filter.DatetimeMax != nil {
		add("t.datetime <= $%d", *filter.DatetimeMax)
	}

	return strings.Join(clauses, " AND "), args
}

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (value, operation, type, datetime, category_id, user_id, img_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(
		query,
		transaction.Value.String(), int16(transaction.Operation), int16(transaction.Type),
		transaction.Datetime, transaction.CategoryID, transaction.UserID, transaction.ImgURL,
	).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("could not save transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindByID(transactionID int) (*domain.Transaction, error) {
	query := `
		SELECT id, value, operation, type, datetime, category_id, user_id, img_url
		FROM transactions
		WHERE id = $1
	`
	var transaction domain.Transaction
	err := r.db.QueryRow(query, transactionID).Scan(
		&transaction.ID, &transaction.Value, &transaction.Operation, &transaction.Type,
		&transaction.Datetime, &transaction.CategoryID, &transaction.UserID, &transaction.ImgURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("could not find transaction: %w", err)
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindByFilter(filter domain.TransactionFilter, limit, offset int) ([]domain.TransactionWithCategory, error) {
	where, args := buildFilterClauses(filter)
	query := fmt.Sprintf(`
		SELECT t.id, t.value, t.operation, t.type, t.datetime, t.category_id, c.name, t.user_id, t.img_url
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE %s
		ORDER BY t.datetime DESC, t.id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.TransactionWithCategory
	for rows.Next() {
		var t domain.TransactionWithCategory
		if err := rows.Scan(
			&t.ID, &t.Value, &t.Operation, &t.Type, &t.Datetime,
			&t.CategoryID, &t.CategoryName, &t.UserID, &t.ImgURL,
		); err != nil {
			return nil, fmt.Errorf("could not scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) CountByFilter(filter domain.TransactionFilter) (int, error) {
	where, args := buildFilterClauses(filter)
	query := fmt.Sprintf("SELECT COUNT(*) FROM transactions t WHERE %s", where)

	var count int
	if err := r.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("could not count transactions: %w", err)
	}
	return count, nil
}

func (r *TransactionRepository) Update(transaction *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET value = $1, operation = $2, type = $3, datetime = $4, category_id = $5, img_url = $6
		WHERE id = $7
	`
	_, err := r.db.Exec(
		query,
		transaction.Value.String(), int16(transaction.Operation), int16(transaction.Type),
		transaction.Datetime, transaction.CategoryID, transaction.ImgURL, transaction.ID,
	)
	if err != nil {
		return fmt.Errorf("could not update transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Delete(transactionID int) error {
	_, err := r.db.Exec("DELETE FROM transactions WHERE id = $1", transactionID)
	if err != nil {
		return fmt.Errorf("could not delete transaction: %w", err)
	}
	return nil
}
