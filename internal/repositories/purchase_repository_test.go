package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPurchaseRepoTest(t *testing.T) (repository.PurchaseRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewPurchaseRepo(db), mock
}

func TestCreatePurchaseOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupPurchaseRepoTest(t)
		order := &models.PurchaseOrder{
			Number:     "PO-20260101-ABCD1234",
			SupplierID: uuid.New(),
			Status:     models.POStatusDraft,
			Total:      1200,
			CreatedBy:  uuid.New(),
			Items: []models.PurchaseOrderItem{
				{ProductID: uuid.New(), Quantity: 10, UnitCost: 100},
				{ProductID: uuid.New(), Quantity: 4, UnitCost: 50},
			},
		}
		orderID, itemA, itemB := uuid.New(), uuid.New(), uuid.New()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO purchase_orders`)).
			WithArgs(order.Number, order.SupplierID, nil, order.Status, order.Notes, order.Total, order.CreatedBy).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(orderID, now, now))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO purchase_order_items`)).
			WithArgs(orderID, order.Items[0].ProductID, 10, 100.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(itemA))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO purchase_order_items`)).
			WithArgs(orderID, order.Items[1].ProductID, 4, 50.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(itemB))
		mock.ExpectCommit()

		// Act
		err := repo.CreatePurchaseOrder(t.Context(), order)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, orderID, order.ID)
		assert.Equal(t, itemA, order.Items[0].ID)
		assert.Equal(t, orderID, order.Items[1].PurchaseOrderID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - item insert rolls back", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)
		order := &models.PurchaseOrder{
			SupplierID: uuid.New(),
			Status:     models.POStatusDraft,
			Items:      []models.PurchaseOrderItem{{ProductID: uuid.New(), Quantity: 1}},
		}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO purchase_orders`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(uuid.New(), time.Now(), time.Now()))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO purchase_order_items`)).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.CreatePurchaseOrder(t.Context(), order)

		assert.ErrorIs(t, err, assert.AnError)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransitionStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE purchase_orders SET status = $1, updated_at = NOW() WHERE id = $2 AND status = ANY($3)`)).
			WithArgs(models.POStatusOrdered, id, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.TransitionStatus(t.Context(), id, []models.PurchaseOrderStatus{models.POStatusDraft}, models.POStatusOrdered)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - wrong state", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE purchase_orders SET status = $1`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.TransitionStatus(t.Context(), id, []models.PurchaseOrderStatus{models.POStatusDraft, models.POStatusOrdered}, models.POStatusCancelled)

		assert.ErrorIs(t, err, repository.ErrInvalidState)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReceiveGoods(t *testing.T) {
	orderID := uuid.New()
	rice, oil := uuid.New(), uuid.New()
	riceItem, oilItem := uuid.New(), uuid.New()
	itemCols := []string{"id", "product_id", "quantity", "received_quantity"}

	newGRN := func(items ...models.GoodsReceivedItem) *models.GoodsReceivedNote {
		return &models.GoodsReceivedNote{
			Number:          "GRN-20260101-0001",
			PurchaseOrderID: orderID,
			ReceivedBy:      uuid.New(),
			Items:           items,
		}
	}

	t.Run("Success - partial delivery", func(t *testing.T) {
		// Arrange
		repo, mock := setupPurchaseRepoTest(t)
		grn := newGRN(models.GoodsReceivedItem{ProductID: rice, Quantity: 4, UnitCost: 95})
		grnID, grnItemID := uuid.New(), uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM purchase_orders WHERE id = $1 FOR UPDATE`)).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ordered"))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM purchase_order_items WHERE purchase_order_id = $1 FOR UPDATE`)).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows(itemCols).
				AddRow(riceItem, rice, 10, 0).
				AddRow(oilItem, oil, 5, 0))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO goods_received_notes`)).
			WithArgs(grn.Number, orderID, grn.ReceivedBy, "").
			WillReturnRows(sqlmock.NewRows([]string{"id", "received_at"}).AddRow(grnID, time.Now()))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO goods_received_items`)).
			WithArgs(grnID, rice, 4, 95.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(grnItemID))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE purchase_order_items SET received_quantity = received_quantity + $1`)).
			WithArgs(4, riceItem).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET stock_quantity = stock_quantity + $1, cost_price = $2`)).
			WithArgs(4, 95.0, rice).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE purchase_orders SET status = $1`)).
			WithArgs(models.POStatusPartiallyReceived, orderID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		status, err := repo.ReceiveGoods(t.Context(), grn)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.POStatusPartiallyReceived, status)
		assert.Equal(t, grnID, grn.ID)
		assert.Equal(t, grnID, grn.Items[0].GRNID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - final delivery closes the order", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)
		grn := newGRN(models.GoodsReceivedItem{ProductID: rice, Quantity: 6, UnitCost: 100})
		grnID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM purchase_orders`)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("partially_received"))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM purchase_order_items`)).
			WillReturnRows(sqlmock.NewRows(itemCols).
				AddRow(riceItem, rice, 10, 4).
				AddRow(oilItem, oil, 5, 5))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO goods_received_notes`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "received_at"}).AddRow(grnID, time.Now()))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO goods_received_items`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE purchase_order_items`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE products`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE purchase_orders SET status = $1`)).
			WithArgs(models.POStatusReceived, orderID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		status, err := repo.ReceiveGoods(t.Context(), grn)

		require.NoError(t, err)
		assert.Equal(t, models.POStatusReceived, status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - over receipt", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)
		grn := newGRN(models.GoodsReceivedItem{ProductID: oil, Quantity: 3, UnitCost: 40})

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM purchase_orders`)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ordered"))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM purchase_order_items`)).
			WillReturnRows(sqlmock.NewRows(itemCols).AddRow(oilItem, oil, 5, 4))
		mock.ExpectRollback()

		_, err := repo.ReceiveGoods(t.Context(), grn)

		assert.ErrorIs(t, err, repository.ErrExceedsOutstanding)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - product not on the order", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)
		grn := newGRN(models.GoodsReceivedItem{ProductID: uuid.New(), Quantity: 1, UnitCost: 1})

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM purchase_orders`)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("ordered"))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM purchase_order_items`)).
			WillReturnRows(sqlmock.NewRows(itemCols).AddRow(riceItem, rice, 10, 0))
		mock.ExpectRollback()

		_, err := repo.ReceiveGoods(t.Context(), grn)

		assert.ErrorIs(t, err, repository.ErrExceedsOutstanding)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - already received", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM purchase_orders`)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("received"))
		mock.ExpectRollback()

		_, err := repo.ReceiveGoods(t.Context(), newGRN(models.GoodsReceivedItem{ProductID: rice, Quantity: 1}))

		assert.ErrorIs(t, err, repository.ErrInvalidState)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - unknown order", func(t *testing.T) {
		repo, mock := setupPurchaseRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM purchase_orders`)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}))
		mock.ExpectRollback()

		_, err := repo.ReceiveGoods(t.Context(), newGRN(models.GoodsReceivedItem{ProductID: rice, Quantity: 1}))

		assert.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetPurchaseOrderByID(t *testing.T) {
	repo, mock := setupPurchaseRepoTest(t)
	id, supplier, creator := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM purchase_orders WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "supplier_id", "branch_id", "status", "notes", "total", "created_by", "created_at", "updated_at"}).
			AddRow(id, "PO-1", supplier, nil, "ordered", "", 1000.0, creator, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM purchase_order_items WHERE purchase_order_id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "purchase_order_id", "product_id", "quantity", "unit_cost", "received_quantity"}).
			AddRow(uuid.New(), id, uuid.New(), 10, 100.0, 3))

	order, err := repo.GetPurchaseOrderByID(t.Context(), id)

	require.NoError(t, err)
	assert.Equal(t, models.POStatusOrdered, order.Status)
	assert.Nil(t, order.BranchID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(7), order.Items[0].Outstanding())
	require.NoError(t, mock.ExpectationsWereMet())
}
