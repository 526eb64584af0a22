package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/metrics"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.ProfileResponse, error)
	ListUsers(ctx context.Context, filter models.ListFilter) ([]*models.User, int, error)
	UpdateRole(ctx context.Context, actorID, id uuid.UUID, role models.Role) (*models.User, error)
	SetUserActive(ctx context.Context, actorID, id uuid.UUID, active bool) (*models.User, error)
}

type userService struct {
	repo      repository.UserRepository
	rateLimit repository.RateLimitRepository
	jwtKey    []byte
	tokenTTL  time.Duration
}

func NewUserService(repo repository.UserRepository, rateLimit repository.RateLimitRepository, jwtKey []byte, tokenTTL time.Duration) UserService {
	return &userService{
		repo:      repo,
		rateLimit: rateLimit,
		jwtKey:    jwtKey,
		tokenTTL:  tokenTTL,
	}
}

func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Name:     utils.Sanitize(req.Name),
		Email:    strings.ToLower(req.Email),
		Password: string(hashedPassword),
		Role:     req.Role,
		BranchID: req.BranchID,
		Active:   true,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, repoError(err, "User", "create user")
	}

	middleware.LoggerFromContext(ctx).Info("User created",
		slog.String("newUserId", user.ID.String()),
		slog.String("role", string(user.Role)))

	return user, nil
}

// Login never reveals whether the email exists: unknown users, inactive users
// and wrong passwords all get the same answer.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	logger := middleware.LoggerFromContext(ctx)
	email := strings.ToLower(req.Email)

	allowed, remaining, retryAfter, err := s.rateLimit.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		metrics.RecordLogin("limited")
		logger.Warn("Login rate limited", slog.Int("retryAfter", retryAfter))
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil || !user.Active || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		metrics.RecordLogin("invalid")
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	now := time.Now()
	claims := &models.Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		BranchID: user.BranchID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	if err := s.rateLimit.ResetLoginAttempts(ctx, email); err != nil {
		logger.Warn("Failed to reset login attempts", slog.String("error", err.Error()))
	}

	metrics.RecordLogin("success")

	return &models.LoginResponse{
		Success:     true,
		Token:       tokenString,
		ExpiresIn:   int(s.tokenTTL.Seconds()),
		Role:        user.Role,
		Permissions: user.Role.Permissions(),
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*models.ProfileResponse, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "User", "fetch user")
	}

	return &models.ProfileResponse{User: user, Permissions: user.Role.Permissions()}, nil
}

func (s *userService) ListUsers(ctx context.Context, filter models.ListFilter) ([]*models.User, int, error) {
	users, total, err := s.repo.ListUsers(ctx, filter)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch users").WithError(err)
	}

	return users, total, nil
}

// UpdateRole refuses to let an admin change their own role, so the last admin
// cannot lock everyone out by accident.
func (s *userService) UpdateRole(ctx context.Context, actorID, id uuid.UUID, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, errors.AddValidationError("role", "must be one of admin, manager, cashier")
	}

	if actorID == id {
		return nil, errors.BadRequestError("You cannot change your own role")
	}

	if err := s.repo.UpdateUserRole(ctx, id, role); err != nil {
		return nil, repoError(err, "User", "update user role")
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "User", "fetch user")
	}

	return user, nil
}

func (s *userService) SetUserActive(ctx context.Context, actorID, id uuid.UUID, active bool) (*models.User, error) {
	if actorID == id && !active {
		return nil, errors.BadRequestError("You cannot deactivate your own account")
	}

	if err := s.repo.SetUserActive(ctx, id, active); err != nil {
		return nil, repoError(err, "User", "change user status")
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "User", "fetch user")
	}

	return user, nil
}
