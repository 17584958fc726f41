package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue/infras/otel/mocks"
	pgMocks "venue/infras/postgres/mocks"
	bookingModel "venue/internal/domains/booking/model"
	"venue/internal/domains/planner/model"
	"venue/internal/domains/planner/repository"
)

const token = "menu-token"

var lockByToken = regexp.QuoteMeta("SELECT id, status FROM bookings WHERE menu_customer_token = $1 FOR UPDATE")

func TestSelection_ReplaceSelections(t *testing.T) {
	t.Run("swaps selections under the booking lock", func(t *testing.T) {
		db, mock := pgMocks.NewConnection(t)
		repo := repository.New(db, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectQuery(lockByToken).WithArgs(token).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("booking-1", "MENU_OPEN"))
		mock.ExpectExec("DELETE FROM menu_selections").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("INSERT INTO menu_selections").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET menu_submitted_at = $2")).
			WithArgs("booking-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		selections := []model.Selection{{ID: "selection-1", MenuItemID: "item-1", Qty: 1}}

		submittedAt, err := repo.ReplaceSelections(context.Background(), token, selections, true)

		require.NoError(t, err)
		assert.NotNil(t, submittedAt)
		assert.Equal(t, "booking-1", selections[0].BookingID)
	})

	t.Run("draft save leaves submission untouched", func(t *testing.T) {
		db, mock := pgMocks.NewConnection(t)
		repo := repository.New(db, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectQuery(lockByToken).WithArgs(token).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("booking-1", "MENU_OPEN"))
		mock.ExpectExec("DELETE FROM menu_selections").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		submittedAt, err := repo.ReplaceSelections(context.Background(), token, []model.Selection{}, false)

		require.NoError(t, err)
		assert.Nil(t, submittedAt)
	})

	t.Run("locked menu rolls back before touching selections", func(t *testing.T) {
		db, mock := pgMocks.NewConnection(t)
		repo := repository.New(db, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectQuery(lockByToken).WithArgs(token).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("booking-1", "MENU_LOCKED"))
		mock.ExpectRollback()

		_, err := repo.ReplaceSelections(context.Background(), token, []model.Selection{{MenuItemID: "item-1", Qty: 1}}, true)

		assert.ErrorIs(t, err, bookingModel.ErrMenuLocked)
	})

	t.Run("unknown token", func(t *testing.T) {
		db, mock := pgMocks.NewConnection(t)
		repo := repository.New(db, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectQuery(lockByToken).WithArgs(token).WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))
		mock.ExpectRollback()

		_, err := repo.ReplaceSelections(context.Background(), token, nil, false)

		assert.ErrorIs(t, err, bookingModel.ErrBookingNotFound)
	})

	t.Run("insert failure rolls back the delete", func(t *testing.T) {
		db, mock := pgMocks.NewConnection(t)
		repo := repository.New(db, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectQuery(lockByToken).WithArgs(token).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("booking-1", "MENU_OPEN"))
		mock.ExpectExec("DELETE FROM menu_selections").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("INSERT INTO menu_selections").WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := repo.ReplaceSelections(context.Background(), token, []model.Selection{{MenuItemID: "item-1", Qty: 1}}, true)

		assert.Error(t, err)
	})
}
