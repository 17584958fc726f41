package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"venue/infras/otel/mocks"
	pgMocks "venue/infras/postgres/mocks"
	"venue/internal/domains/menu/repository"
)

var uncategorize = regexp.QuoteMeta("UPDATE menu_items SET category_id = NULL, modified_at = NOW() WHERE category_id = $1")

func TestCategory_Delete(t *testing.T) {
	t.Run("moves items to uncategorized in the same transaction", func(t *testing.T) {
		db, mock := pgMocks.NewConnection(t)
		repo := repository.NewCategory(db, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectExec(uncategorize).WithArgs("category-1").WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec("DELETE FROM menu_categories").WithArgs("category-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(context.Background(), "category-1"))
	})

	t.Run("failed reassignment keeps the category", func(t *testing.T) {
		db, mock := pgMocks.NewConnection(t)
		repo := repository.NewCategory(db, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectExec(uncategorize).WithArgs("category-1").WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		assert.Error(t, repo.Delete(context.Background(), "category-1"))
	})
}

func TestItem_InUse(t *testing.T) {
	db, mock := pgMocks.NewConnection(t)
	repo := repository.NewItem(db, mocks.NewOtel())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM menu_selections WHERE menu_item_id = $1)")).
		WithArgs("item-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	inUse, err := repo.InUse(context.Background(), "item-1")

	assert.NoError(t, err)
	assert.True(t, inUse)
}
