package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/google/uuid"
)

type SaleRepository interface {
	CreateSale(ctx context.Context, sale *models.Sale) error
	GetSaleByID(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	ListSales(ctx context.Context, filter models.SaleFilter) ([]*models.Sale, int, error)
	SalesReport(ctx context.Context, filter models.ReportFilter) (*models.SalesReport, error)
}

type saleRepository struct {
	DB *sql.DB
}

func NewSaleRepo(db *sql.DB) SaleRepository {
	return &saleRepository{DB: db}
}

const saleColumns = `id, number, branch_id, cashier_id, customer_id, customer_name, customer_email, is_wholesale,
	payment_method, payment_reference, subtotal, item_discount, wholesale_discount, total_discount, tax,
	grand_total, adjustment, net_total, cash_in, balance, created_at`

func scanSale(row rowScanner) (*models.Sale, error) {
	s := &models.Sale{}
	var branch, customer uuid.NullUUID

	err := row.Scan(&s.ID, &s.Number, &branch, &s.CashierID, &customer, &s.CustomerName, &s.CustomerEmail, &s.IsWholesale,
		&s.PaymentMethod, &s.PaymentReference, &s.Subtotal, &s.ItemDiscount, &s.WholesaleDiscount, &s.TotalDiscount, &s.Tax,
		&s.GrandTotal, &s.Adjustment, &s.NetTotal, &s.CashIn, &s.Balance, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	s.BranchID = uuidPtr(branch)
	s.CustomerID = uuidPtr(customer)
	s.Lines = []models.SaleLine{}
	return s, nil
}

// CreateSale decrements stock for every line and stores the sale with its
// lines in one transaction. A line whose product lacks stock aborts the sale
// with a *StockError.
func (r *saleRepository) CreateSale(ctx context.Context, sale *models.Sale) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		for _, line := range sale.Lines {
			result, err := tx.ExecContext(dbCtx, `
				UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = NOW()
				WHERE id = $2 AND stock_quantity >= $1`, line.Quantity, line.ProductID)
			if err != nil {
				return fmt.Errorf("failed to decrement stock: %w", err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to get updated rows: %w", err)
			}
			if affected == 0 {
				return &StockError{ProductID: line.ProductID}
			}
		}

		err := tx.QueryRowContext(dbCtx, `
			INSERT INTO sales (number, branch_id, cashier_id, customer_id, customer_name, customer_email, is_wholesale,
				payment_method, payment_reference, subtotal, item_discount, wholesale_discount, total_discount, tax,
				grand_total, adjustment, net_total, cash_in, balance)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
			RETURNING id, created_at`,
			sale.Number, nullUUID(sale.BranchID), sale.CashierID, nullUUID(sale.CustomerID), sale.CustomerName, sale.CustomerEmail,
			sale.IsWholesale, sale.PaymentMethod, sale.PaymentReference, sale.Subtotal, sale.ItemDiscount, sale.WholesaleDiscount,
			sale.TotalDiscount, sale.Tax, sale.GrandTotal, sale.Adjustment, sale.NetTotal, sale.CashIn, sale.Balance,
		).Scan(&sale.ID, &sale.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create sale: %w", mapError(err))
		}

		for i := range sale.Lines {
			line := &sale.Lines[i]
			line.SaleID = sale.ID

			err := tx.QueryRowContext(dbCtx, `
				INSERT INTO sale_lines (sale_id, product_id, barcode, name, size, quantity, unit_price, discount, gross, net)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING id`,
				sale.ID, line.ProductID, line.Barcode, line.Name, line.Size, line.Quantity, line.UnitPrice, line.Discount, line.Gross, line.Net,
			).Scan(&line.ID)
			if err != nil {
				return fmt.Errorf("failed to insert sale line: %w", err)
			}
		}

		return nil
	})
}

func (r *saleRepository) GetSaleByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	sale, err := scanSale(r.DB.QueryRowContext(dbCtx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("querying sale %s: %w", id, mapError(err))
	}

	rows, err := r.DB.QueryContext(dbCtx, `
		SELECT id, sale_id, product_id, barcode, name, size, quantity, unit_price, discount, gross, net
		FROM sale_lines
		WHERE sale_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Barcode, &l.Name, &l.Size, &l.Quantity, &l.UnitPrice, &l.Discount, &l.Gross, &l.Net); err != nil {
			return nil, fmt.Errorf("failed to scan sale line: %w", err)
		}
		sale.Lines = append(sale.Lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return sale, nil
}

// ListSales returns sale headers newest first; Lines is left empty.
func (r *saleRepository) ListSales(ctx context.Context, filter models.SaleFilter) ([]*models.Sale, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where := `WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		AND ($2::timestamptz IS NULL OR created_at < $2)
		AND ($3::uuid IS NULL OR cashier_id = $3)
		AND (number ILIKE $4 OR customer_name ILIKE $4)`

	var from, to sql.NullTime
	if filter.From != nil {
		from = sql.NullTime{Time: *filter.From, Valid: true}
	}
	if filter.To != nil {
		to = sql.NullTime{Time: *filter.To, Valid: true}
	}
	args := []any{from, to, nullUUID(filter.CashierID), likePattern(filter.Query)}

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM sales `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	query := `SELECT ` + saleColumns + ` FROM sales ` + where + `
		ORDER BY created_at DESC
		LIMIT $5 OFFSET $6`

	rows, err := r.DB.QueryContext(dbCtx, query, append(args, filter.PageSize, filter.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []*models.Sale{}

	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return sales, total, nil
}

// SalesReport aggregates sales in [From, To), optionally for one branch.
func (r *saleRepository) SalesReport(ctx context.Context, filter models.ReportFilter) (*models.SalesReport, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	report := &models.SalesReport{
		From:            filter.From,
		To:              filter.To,
		BranchID:        filter.BranchID,
		ByPaymentMethod: []models.PaymentMethodTotal{},
		TopProducts:     []models.TopProduct{},
	}

	where := `WHERE s.created_at >= $1 AND s.created_at < $2 AND ($3::uuid IS NULL OR s.branch_id = $3)`
	args := []any{filter.From, filter.To, nullUUID(filter.BranchID)}

	err := r.DB.QueryRowContext(dbCtx, `
		SELECT COUNT(*), COALESCE(SUM(s.subtotal), 0), COALESCE(SUM(s.total_discount), 0),
			COALESCE(SUM(s.tax), 0), COALESCE(SUM(s.net_total), 0)
		FROM sales s `+where, args...,
	).Scan(&report.SaleCount, &report.Gross, &report.Discounts, &report.Tax, &report.Net)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	methodRows, err := r.DB.QueryContext(dbCtx, `
		SELECT s.payment_method, COUNT(*), COALESCE(SUM(s.net_total), 0)
		FROM sales s `+where+`
		GROUP BY s.payment_method
		ORDER BY s.payment_method`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payment methods: %w", err)
	}
	defer methodRows.Close()

	for methodRows.Next() {
		var m models.PaymentMethodTotal
		if err := methodRows.Scan(&m.Method, &m.Count, &m.Net); err != nil {
			return nil, fmt.Errorf("failed to scan payment method total: %w", err)
		}
		report.ByPaymentMethod = append(report.ByPaymentMethod, m)
	}
	if err := methodRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	productRows, err := r.DB.QueryContext(dbCtx, `
		SELECT l.product_id, l.name, SUM(l.quantity), SUM(l.net)
		FROM sale_lines l
		JOIN sales s ON s.id = l.sale_id `+where+`
		GROUP BY l.product_id, l.name
		ORDER BY SUM(l.net) DESC
		LIMIT $4`, append(args, filter.TopN)...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top products: %w", err)
	}
	defer productRows.Close()

	for productRows.Next() {
		var p models.TopProduct
		if err := productRows.Scan(&p.ProductID, &p.Name, &p.Quantity, &p.Net); err != nil {
			return nil, fmt.Errorf("failed to scan top product: %w", err)
		}
		report.TopProducts = append(report.TopProducts, p)
	}
	if err := productRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return report, nil
}
