package domain

import (
	"context"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleExpert Role = "expert"
	RoleParent Role = "parent"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleExpert, RoleParent:
		return true
	}
	return false
}

// ParseRole accepts the role name in any letter case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

type User struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(150);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(16);not null;index;check:role IN ('admin','expert','parent')" json:"role"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	Title        *string   `gorm:"type:varchar(150)" json:"title,omitempty"`
	Bio          *string   `gorm:"type:text" json:"bio,omitempty"`
	ImageURL     *string   `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ExpertProfile is the public view of an expert shown to parents.
type ExpertProfile struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Title    *string `json:"title,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

type UserFilter struct {
	Role   *Role
	Active *bool
}

type CreateExpertRequest struct {
	Name     string  `json:"name" valid:"required~Name is required"`
	Email    string  `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password string  `json:"password" valid:"required~Password is required,length(6|72)~Password must be 6 to 72 characters"`
	Title    *string `json:"title"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"image_url"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

type UserRepo interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id int) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter UserFilter) ([]User, error)
	SetActive(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
}

type UserUseCase interface {
	ListUsers(ctx context.Context, filter UserFilter) ([]User, error)
	ListExperts(ctx context.Context) ([]ExpertProfile, error)
	GetUser(ctx context.Context, id int) (*User, error)
	CreateExpert(ctx context.Context, req *CreateExpertRequest) (*User, error)
	SetActive(ctx context.Context, id int, active bool) (*User, error)
	DeleteUser(ctx context.Context, id int) error
}
