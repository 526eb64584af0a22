package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context, filter models.ListFilter) ([]*models.User, int, error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role models.Role) error
	SetUserActive(ctx context.Context, id uuid.UUID, active bool) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	var branch uuid.NullUUID

	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &branch, &user.Active, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}

	user.BranchID = uuidPtr(branch)
	return user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users (name, email, password, role, branch_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, user.Name, user.Email, user.Password, user.Role, nullUUID(user.BranchID), user.Active).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", mapError(err))
	}

	return nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, email, password, role, branch_id, active, created_at, updated_at
			  FROM users
			  WHERE email = $1`

	user, err := scanUser(r.DB.QueryRowContext(dbCtx, query, email))
	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, email, password, role, branch_id, active, created_at, updated_at
			  FROM users
			  WHERE id = $1`

	user, err := scanUser(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context, filter models.ListFilter) ([]*models.User, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	pattern := likePattern(filter.Query)

	var total int

	countQuery := `SELECT COUNT(*) FROM users WHERE name ILIKE $1 OR email ILIKE $1`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := `
		SELECT id, name, email, password, role, branch_id, active, created_at, updated_at
		FROM users
		WHERE name ILIKE $1 OR email ILIKE $1
		ORDER BY name
		LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, pattern, filter.PageSize, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return users, total, nil
}

func (r *userRepository) UpdateUserRole(ctx context.Context, id uuid.UUID, role models.Role) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.execOne(dbCtx, `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`, role, id)
}

func (r *userRepository) SetUserActive(ctx context.Context, id uuid.UUID, active bool) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.execOne(dbCtx, `UPDATE users SET active = $1, updated_at = NOW() WHERE id = $2`, active, id)
}

func (r *userRepository) execOne(ctx context.Context, query string, args ...any) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
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
