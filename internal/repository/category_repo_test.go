package repository

import (
	"database/sql"
	"io"
	"regexp"
	"testing"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockCategoryRepo(t *testing.T) (domain.CategoryRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewPostgresCategoryRepository(db, logger), mock
}

func TestGetCategoryByID(t *testing.T) {
	repo, mock := newMockCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, type FROM categories WHERE id = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).AddRow(1, "Science"))

	category, err := repo.GetCategoryByID(1)

	require.NoError(t, err)
	assert.Equal(t, "Science", category.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategoryByIDNotFound(t *testing.T) {
	repo, mock := newMockCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, type FROM categories WHERE id = $1`)).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCategoryByID(99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategories(t *testing.T) {
	repo, mock := newMockCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, type FROM categories ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).
			AddRow(1, "Science").
			AddRow(2, "Art"))

	categories, err := repo.ListCategories()

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Art", categories[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
