package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PurchaseRepository interface {
	CreatePurchaseOrder(ctx context.Context, order *models.PurchaseOrder) error
	GetPurchaseOrderByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, filter models.PurchaseOrderFilter) ([]*models.PurchaseOrder, int, error)
	ReplaceDraft(ctx context.Context, order *models.PurchaseOrder) error
	TransitionStatus(ctx context.Context, id uuid.UUID, from []models.PurchaseOrderStatus, to models.PurchaseOrderStatus) error
	ReceiveGoods(ctx context.Context, grn *models.GoodsReceivedNote) (models.PurchaseOrderStatus, error)
	ListGoodsReceived(ctx context.Context, orderID uuid.UUID) ([]*models.GoodsReceivedNote, error)
}

type purchaseRepository struct {
	DB *sql.DB
}

func NewPurchaseRepo(db *sql.DB) PurchaseRepository {
	return &purchaseRepository{DB: db}
}

const purchaseOrderColumns = `id, number, supplier_id, branch_id, status, notes, total, created_by, created_at, updated_at`

func scanPurchaseOrder(row rowScanner) (*models.PurchaseOrder, error) {
	po := &models.PurchaseOrder{}
	var branch uuid.NullUUID

	if err := row.Scan(&po.ID, &po.Number, &po.SupplierID, &branch, &po.Status, &po.Notes, &po.Total, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt); err != nil {
		return nil, err
	}

	po.BranchID = uuidPtr(branch)
	po.Items = []models.PurchaseOrderItem{}
	return po, nil
}

func insertPurchaseItems(ctx context.Context, tx *sql.Tx, order *models.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_order_items (purchase_order_id, product_id, quantity, unit_cost, received_quantity)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING id`

	for i := range order.Items {
		item := &order.Items[i]
		item.PurchaseOrderID = order.ID
		if err := tx.QueryRowContext(ctx, query, order.ID, item.ProductID, item.Quantity, item.UnitCost).Scan(&item.ID); err != nil {
			return fmt.Errorf("failed to insert purchase order item: %w", mapError(err))
		}
	}

	return nil
}

func (r *purchaseRepository) CreatePurchaseOrder(ctx context.Context, order *models.PurchaseOrder) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		query := `
			INSERT INTO purchase_orders (number, supplier_id, branch_id, status, notes, total, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at`

		err := tx.QueryRowContext(dbCtx, query, order.Number, order.SupplierID, nullUUID(order.BranchID),
			order.Status, order.Notes, order.Total, order.CreatedBy,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create purchase order: %w", mapError(err))
		}

		return insertPurchaseItems(dbCtx, tx, order)
	})
}

func (r *purchaseRepository) GetPurchaseOrderByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`

	order, err := scanPurchaseOrder(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying purchase order %s: %w", id, mapError(err))
	}

	itemsQuery := `
		SELECT id, purchase_order_id, product_id, quantity, unit_cost, received_quantity
		FROM purchase_order_items
		WHERE purchase_order_id = $1
		ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.PurchaseOrderItem
		if err := rows.Scan(&item.ID, &item.PurchaseOrderID, &item.ProductID, &item.Quantity, &item.UnitCost, &item.ReceivedQuantity); err != nil {
			return nil, fmt.Errorf("failed to scan purchase order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return order, nil
}

// ListPurchaseOrders returns headers only; Items is left empty.
func (r *purchaseRepository) ListPurchaseOrders(ctx context.Context, filter models.PurchaseOrderFilter) ([]*models.PurchaseOrder, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where := `WHERE ($1 = '' OR status = $1) AND ($2::uuid IS NULL OR supplier_id = $2) AND number ILIKE $3`
	args := []any{string(filter.Status), nullUUID(filter.SupplierID), likePattern(filter.Query)}

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM purchase_orders `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count purchase orders: %w", err)
	}

	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders ` + where + `
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5`

	rows, err := r.DB.QueryContext(dbCtx, query, append(args, filter.PageSize, filter.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.PurchaseOrder{}

	for rows.Next() {
		order, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return orders, total, nil
}

// ReplaceDraft rewrites the notes, total and item list of an order that is
// still a draft.
func (r *purchaseRepository) ReplaceDraft(ctx context.Context, order *models.PurchaseOrder) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		query := `
			UPDATE purchase_orders SET notes = $1, total = $2, updated_at = NOW()
			WHERE id = $3 AND status = 'draft'
			RETURNING updated_at`

		err := tx.QueryRowContext(dbCtx, query, order.Notes, order.Total, order.ID).Scan(&order.UpdatedAt)
		if err != nil {
			if mapped := mapError(err); mapped == ErrNotFound {
				return ErrInvalidState
			}
			return fmt.Errorf("failed to update purchase order: %w", err)
		}

		if _, err := tx.ExecContext(dbCtx, `DELETE FROM purchase_order_items WHERE purchase_order_id = $1`, order.ID); err != nil {
			return fmt.Errorf("failed to clear purchase order items: %w", err)
		}

		return insertPurchaseItems(dbCtx, tx, order)
	})
}

func (r *purchaseRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from []models.PurchaseOrderStatus, to models.PurchaseOrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	query := `UPDATE purchase_orders SET status = $1, updated_at = NOW() WHERE id = $2 AND status = ANY($3)`

	result, err := r.DB.ExecContext(dbCtx, query, to, id, pq.Array(allowed))
	if err != nil {
		return fmt.Errorf("failed to update purchase order status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if affected == 0 {
		return ErrInvalidState
	}

	return nil
}

// ReceiveGoods books a GRN: it checks quantities against what is still
// outstanding, raises stock and cost price, and moves the order to
// partially_received or received. Everything happens in one transaction with
// the order row locked.
func (r *purchaseRepository) ReceiveGoods(ctx context.Context, grn *models.GoodsReceivedNote) (models.PurchaseOrderStatus, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var next models.PurchaseOrderStatus

	err := withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		var status models.PurchaseOrderStatus
		err := tx.QueryRowContext(dbCtx, `SELECT status FROM purchase_orders WHERE id = $1 FOR UPDATE`, grn.PurchaseOrderID).Scan(&status)
		if err != nil {
			return mapError(err)
		}
		if !status.Receivable() {
			return ErrInvalidState
		}

		rows, err := tx.QueryContext(dbCtx, `
			SELECT id, product_id, quantity, received_quantity
			FROM purchase_order_items
			WHERE purchase_order_id = $1
			FOR UPDATE`, grn.PurchaseOrderID)
		if err != nil {
			return fmt.Errorf("failed to lock purchase order items: %w", err)
		}

		items := map[uuid.UUID]*models.PurchaseOrderItem{}
		for rows.Next() {
			item := &models.PurchaseOrderItem{}
			if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.ReceivedQuantity); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan purchase order item: %w", err)
			}
			items[item.ProductID] = item
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating over the rows: %w", err)
		}

		for _, in := range grn.Items {
			item, ok := items[in.ProductID]
			if !ok || in.Quantity > item.Outstanding() {
				return fmt.Errorf("product %s: %w", in.ProductID, ErrExceedsOutstanding)
			}
			item.ReceivedQuantity += in.Quantity
		}

		err = tx.QueryRowContext(dbCtx, `
			INSERT INTO goods_received_notes (number, purchase_order_id, received_by, notes)
			VALUES ($1, $2, $3, $4)
			RETURNING id, received_at`, grn.Number, grn.PurchaseOrderID, grn.ReceivedBy, grn.Notes,
		).Scan(&grn.ID, &grn.ReceivedAt)
		if err != nil {
			return fmt.Errorf("failed to create goods received note: %w", mapError(err))
		}

		for i := range grn.Items {
			in := &grn.Items[i]
			in.GRNID = grn.ID

			err := tx.QueryRowContext(dbCtx, `
				INSERT INTO goods_received_items (grn_id, product_id, quantity, unit_cost)
				VALUES ($1, $2, $3, $4)
				RETURNING id`, grn.ID, in.ProductID, in.Quantity, in.UnitCost).Scan(&in.ID)
			if err != nil {
				return fmt.Errorf("failed to insert goods received item: %w", err)
			}

			if _, err := tx.ExecContext(dbCtx, `
				UPDATE purchase_order_items SET received_quantity = received_quantity + $1
				WHERE id = $2`, in.Quantity, items[in.ProductID].ID); err != nil {
				return fmt.Errorf("failed to update received quantity: %w", err)
			}

			if _, err := tx.ExecContext(dbCtx, `
				UPDATE products SET stock_quantity = stock_quantity + $1, cost_price = $2, updated_at = NOW()
				WHERE id = $3`, in.Quantity, in.UnitCost, in.ProductID); err != nil {
				return fmt.Errorf("failed to update product stock: %w", err)
			}
		}

		next = models.POStatusReceived
		for _, item := range items {
			if item.Outstanding() > 0 {
				next = models.POStatusPartiallyReceived
				break
			}
		}

		if _, err := tx.ExecContext(dbCtx, `UPDATE purchase_orders SET status = $1, updated_at = NOW() WHERE id = $2`, next, grn.PurchaseOrderID); err != nil {
			return fmt.Errorf("failed to update purchase order status: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return next, nil
}

func (r *purchaseRepository) ListGoodsReceived(ctx context.Context, orderID uuid.UUID) ([]*models.GoodsReceivedNote, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT g.id, g.number, g.purchase_order_id, g.received_by, g.notes, g.received_at,
			i.id, i.product_id, i.quantity, i.unit_cost
		FROM goods_received_notes g
		JOIN goods_received_items i ON i.grn_id = g.id
		WHERE g.purchase_order_id = $1
		ORDER BY g.received_at, i.id`

	rows, err := r.DB.QueryContext(dbCtx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goods received notes: %w", err)
	}
	defer rows.Close()

	notes := []*models.GoodsReceivedNote{}
	byID := map[uuid.UUID]*models.GoodsReceivedNote{}

	for rows.Next() {
		var g models.GoodsReceivedNote
		var item models.GoodsReceivedItem
		if err := rows.Scan(&g.ID, &g.Number, &g.PurchaseOrderID, &g.ReceivedBy, &g.Notes, &g.ReceivedAt,
			&item.ID, &item.ProductID, &item.Quantity, &item.UnitCost); err != nil {
			return nil, fmt.Errorf("failed to scan goods received note: %w", err)
		}

		note, ok := byID[g.ID]
		if !ok {
			note = &g
			byID[g.ID] = note
			notes = append(notes, note)
		}
		item.GRNID = note.ID
		note.Items = append(note.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return notes, nil
}
