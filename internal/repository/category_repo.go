package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresCategoryRepository) GetCategoryByID(id int) (*domain.Category, error) {
	query := `SELECT id, type FROM categories WHERE id = $1`
	category := &domain.Category{}
	err := r.db.QueryRow(query, id).Scan(&category.ID, &category.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found", id)
			return nil, fmt.Errorf("category with id %d: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	return category, nil
}

func (r *postgresCategoryRepository) ListCategories() ([]domain.Category, error) {
	query := `SELECT id, type FROM categories ORDER BY id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Type); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, fmt.Errorf("error scanning category data: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.log.Infof("Retrieved %d categories", len(categories))
	return categories, nil
}
