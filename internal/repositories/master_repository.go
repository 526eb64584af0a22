package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/google/uuid"
)

// MasterRepository serves the brand, category, unit, container and branch
// tables. They share one shape, so the kind picks the table.
type MasterRepository interface {
	CreateMaster(ctx context.Context, record *models.MasterRecord) error
	GetMasterByID(ctx context.Context, kind models.MasterKind, id uuid.UUID) (*models.MasterRecord, error)
	UpdateMaster(ctx context.Context, record *models.MasterRecord) error
	SetMasterActive(ctx context.Context, kind models.MasterKind, id uuid.UUID, active bool) error
	ListMasters(ctx context.Context, kind models.MasterKind, filter models.ListFilter) ([]*models.MasterRecord, int, error)
	ListActiveMasters(ctx context.Context, kind models.MasterKind) ([]*models.MasterRecord, error)
}

type masterRepository struct {
	DB *sql.DB
}

func NewMasterRepo(db *sql.DB) MasterRepository {
	return &masterRepository{DB: db}
}

// masterTable only ever returns one of the fixed table names.
func masterTable(kind models.MasterKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown master kind %q", kind)
	}
	return string(kind), nil
}

func (r *masterRepository) CreateMaster(ctx context.Context, record *models.MasterRecord) error {
	table, err := masterTable(record.Kind)
	if err != nil {
		return err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		INSERT INTO %s (code, name, description, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`, table)

	err = r.DB.QueryRowContext(dbCtx, query, record.Code, record.Name, record.Description, record.Active).
		Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create %s record: %w", table, mapError(err))
	}

	return nil
}

func (r *masterRepository) GetMasterByID(ctx context.Context, kind models.MasterKind, id uuid.UUID) (*models.MasterRecord, error) {
	table, err := masterTable(kind)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT id, code, name, description, active, created_at, updated_at FROM %s WHERE id = $1`, table)

	record := &models.MasterRecord{Kind: kind}
	err = r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&record.ID, &record.Code, &record.Name, &record.Description, &record.Active, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying %s %s: %w", table, id, mapError(err))
	}

	return record, nil
}

func (r *masterRepository) UpdateMaster(ctx context.Context, record *models.MasterRecord) error {
	table, err := masterTable(record.Kind)
	if err != nil {
		return err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		UPDATE %s SET code = $1, name = $2, description = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`, table)

	err = r.DB.QueryRowContext(dbCtx, query, record.Code, record.Name, record.Description, record.ID).Scan(&record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update %s record: %w", table, mapError(err))
	}

	return nil
}

func (r *masterRepository) SetMasterActive(ctx context.Context, kind models.MasterKind, id uuid.UUID, active bool) error {
	table, err := masterTable(kind)
	if err != nil {
		return err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`UPDATE %s SET active = $1, updated_at = NOW() WHERE id = $2`, table)

	result, err := r.DB.ExecContext(dbCtx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update %s status: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *masterRepository) ListMasters(ctx context.Context, kind models.MasterKind, filter models.ListFilter) ([]*models.MasterRecord, int, error) {
	table, err := masterTable(kind)
	if err != nil {
		return nil, 0, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	pattern := likePattern(filter.Query)

	var total int

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE name ILIKE $1 OR code ILIKE $1`, table)
	if err := r.DB.QueryRowContext(dbCtx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	query := fmt.Sprintf(`
		SELECT id, code, name, description, active, created_at, updated_at FROM %s
		WHERE name ILIKE $1 OR code ILIKE $1
		ORDER BY name
		LIMIT $2 OFFSET $3`, table)

	records, err := r.queryMasters(dbCtx, kind, query, pattern, filter.PageSize, filter.Offset())
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *masterRepository) ListActiveMasters(ctx context.Context, kind models.MasterKind) ([]*models.MasterRecord, error) {
	table, err := masterTable(kind)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT id, code, name, description, active, created_at, updated_at FROM %s WHERE active = TRUE ORDER BY name`, table)

	return r.queryMasters(dbCtx, kind, query)
}

func (r *masterRepository) queryMasters(ctx context.Context, kind models.MasterKind, query string, args ...any) ([]*models.MasterRecord, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", kind, err)
	}
	defer rows.Close()

	records := []*models.MasterRecord{}

	for rows.Next() {
		record := &models.MasterRecord{Kind: kind}
		if err := rows.Scan(&record.ID, &record.Code, &record.Name, &record.Description, &record.Active, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return records, nil
}
