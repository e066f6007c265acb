package dto

import (
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a user.
type CreateUserRequest struct {
	Username  string          `json:"username" binding:"required,min=3,max=150"`
	Email     string          `json:"email" binding:"omitempty,email"`
	FirstName string          `json:"firstName" binding:"required,max=150"`
	LastName  string          `json:"lastName" binding:"required,max=150"`
	Password  string          `json:"password" binding:"required,min=8"`
	Role      domain.RoleName `json:"role" binding:"required,oneof=SUPER_ADMIN DIGITADOR SOLO_LECTURA"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Email     *string          `json:"email" binding:"omitempty,email"`
	FirstName *string          `json:"firstName" binding:"omitempty,max=150"`
	LastName  *string          `json:"lastName" binding:"omitempty,max=150"`
	Password  *string          `json:"password" binding:"omitempty,min=8"`
	Role      *domain.RoleName `json:"role" binding:"omitempty,oneof=SUPER_ADMIN DIGITADOR SOLO_LECTURA"`
	IsActive  *bool            `json:"isActive"`
}

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// UserResponse is the public view of a user. The password hash is never exposed.
type UserResponse struct {
	UserID      string          `json:"userID"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Role        domain.RoleName `json:"role"`
	IsActive    bool            `json:"isActive"`
	LastLoginAt *time.Time      `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        user.Role,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
