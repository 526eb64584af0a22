package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

type Permission string

const (
	PermCatalogRead     Permission = "catalog:read"
	PermCatalogWrite    Permission = "catalog:write"
	PermPOSSell         Permission = "pos:sell"
	PermPurchasingWrite Permission = "purchasing:write"
	PermReportsRead     Permission = "reports:read"
	PermUsersManage     Permission = "users:manage"
)

var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermCatalogRead, PermCatalogWrite, PermPOSSell,
		PermPurchasingWrite, PermReportsRead, PermUsersManage,
	},
	RoleManager: {
		PermCatalogRead, PermCatalogWrite, PermPOSSell,
		PermPurchasingWrite, PermReportsRead,
	},
	RoleCashier: {
		PermCatalogRead, PermPOSSell,
	},
}

func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Can reports whether the role grants perm. Unknown roles grant nothing.
func (r Role) Can(perm Permission) bool {
	for _, p := range rolePermissions[r] {
		if p == perm {
			return true
		}
	}
	return false
}

func (r Role) Permissions() []Permission {
	perms := rolePermissions[r]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

type User struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Role      Role       `json:"role"`
	BranchID  *uuid.UUID `json:"branch_id,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CreateUserRequest struct {
	Name     string     `json:"name" validate:"required,min=2,max=100"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8"`
	Role     Role       `json:"role" validate:"required,oneof=admin manager cashier"`
	BranchID *uuid.UUID `json:"branch_id,omitempty"`
}

type UpdateRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=admin manager cashier"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success        bool         `json:"success"`
	Token          string       `json:"token,omitempty"`
	ExpiresIn      int          `json:"expires_in,omitempty"`
	Role           Role         `json:"role,omitempty"`
	Permissions    []Permission `json:"permissions,omitempty"`
	RemainingTries int          `json:"remaining_tries,omitempty"`
	RetryAfter     int          `json:"retry_after,omitempty"`
	Message        string       `json:"message,omitempty"`
}

type ProfileResponse struct {
	User        *User        `json:"user"`
	Permissions []Permission `json:"permissions"`
}

// JWT claims structure
type Claims struct {
	UserID   uuid.UUID  `json:"user_id"`
	Email    string     `json:"email"`
	Role     Role       `json:"role"`
	BranchID *uuid.UUID `json:"branch_id,omitempty"`
	jwt.RegisteredClaims
}
