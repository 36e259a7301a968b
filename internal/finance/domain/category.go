package domain

type Category struct {
	ID     int
	Name   string
	Icon   string
	UserID string // user UUID
}

type CategoryRepository interface {
	Save(category *Category) error
	FindByID(categoryID int) (*Category, error)
	FindByUser(userID string) ([]Category, error)
	Delete(categoryID int) error
	DoesCategoryExistByID(categoryID int, userID string) (bool, error)
	CountTransactions(categoryID int) (int, error)
}
