package domain

type CategoryRepository interface {
	GetCategoryByID(id int) (*Category, error)
	ListCategories() ([]Category, error)
}
