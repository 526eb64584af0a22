package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/google/uuid"
)

type PartyRepository interface {
	CreateParty(ctx context.Context, party *models.Party) error
	GetPartyByID(ctx context.Context, kind models.PartyKind, id uuid.UUID) (*models.Party, error)
	UpdateParty(ctx context.Context, party *models.Party) error
	SetPartyActive(ctx context.Context, kind models.PartyKind, id uuid.UUID, active bool) error
	ListParties(ctx context.Context, kind models.PartyKind, filter models.ListFilter) ([]*models.Party, int, error)
	ListActiveParties(ctx context.Context, kind models.PartyKind) ([]*models.Party, error)
}

type partyRepository struct {
	DB *sql.DB
}

func NewPartyRepo(db *sql.DB) PartyRepository {
	return &partyRepository{DB: db}
}

func partyTable(kind models.PartyKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown party kind %q", kind)
	}
	return string(kind), nil
}

const partyColumns = `id, name, phone, email, address, active, created_at, updated_at`

func scanParty(row rowScanner, kind models.PartyKind) (*models.Party, error) {
	p := &models.Party{Kind: kind}
	if err := row.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Address, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *partyRepository) CreateParty(ctx context.Context, party *models.Party) error {
	table, err := partyTable(party.Kind)
	if err != nil {
		return err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		INSERT INTO %s (name, phone, email, address, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`, table)

	err = r.DB.QueryRowContext(dbCtx, query, party.Name, party.Phone, party.Email, party.Address, party.Active).
		Scan(&party.ID, &party.CreatedAt, &party.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create %s record: %w", table, mapError(err))
	}

	return nil
}

func (r *partyRepository) GetPartyByID(ctx context.Context, kind models.PartyKind, id uuid.UUID) (*models.Party, error) {
	table, err := partyTable(kind)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, partyColumns, table)

	party, err := scanParty(r.DB.QueryRowContext(dbCtx, query, id), kind)
	if err != nil {
		return nil, fmt.Errorf("querying %s %s: %w", table, id, mapError(err))
	}

	return party, nil
}

func (r *partyRepository) UpdateParty(ctx context.Context, party *models.Party) error {
	table, err := partyTable(party.Kind)
	if err != nil {
		return err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		UPDATE %s SET name = $1, phone = $2, email = $3, address = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`, table)

	err = r.DB.QueryRowContext(dbCtx, query, party.Name, party.Phone, party.Email, party.Address, party.ID).Scan(&party.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update %s record: %w", table, mapError(err))
	}

	return nil
}

func (r *partyRepository) SetPartyActive(ctx context.Context, kind models.PartyKind, id uuid.UUID, active bool) error {
	table, err := partyTable(kind)
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

func (r *partyRepository) ListParties(ctx context.Context, kind models.PartyKind, filter models.ListFilter) ([]*models.Party, int, error) {
	table, err := partyTable(kind)
	if err != nil {
		return nil, 0, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	pattern := likePattern(filter.Query)

	var total int

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1`, table)
	if err := r.DB.QueryRowContext(dbCtx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1
		ORDER BY name
		LIMIT $2 OFFSET $3`, partyColumns, table)

	parties, err := r.queryParties(dbCtx, kind, query, pattern, filter.PageSize, filter.Offset())
	if err != nil {
		return nil, 0, err
	}

	return parties, total, nil
}

func (r *partyRepository) ListActiveParties(ctx context.Context, kind models.PartyKind) ([]*models.Party, error) {
	table, err := partyTable(kind)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE active = TRUE ORDER BY name`, partyColumns, table)

	return r.queryParties(dbCtx, kind, query)
}

func (r *partyRepository) queryParties(ctx context.Context, kind models.PartyKind, query string, args ...any) ([]*models.Party, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", kind, err)
	}
	defer rows.Close()

	parties := []*models.Party{}

	for rows.Next() {
		party, err := scanParty(rows, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		parties = append(parties, party)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return parties, nil
}
