package repository

import (
	"context"
	"errors"

	"employee-records/internal/domain"
)

var (
	// ErrInvalidID is returned when an id is not a well-formed ObjectID hex string
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicateEmail is returned when a write violates the unique email index
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrNotFound is returned by writes that matched no document
	ErrNotFound = errors.New("not found")
)

// UserRepository defines credential storage operations. Reads return
// (nil, nil) when no document matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// EmployeeFilter narrows employee listings. When CaseInsensitive is set,
// values match as trimmed case-insensitive exact matches; otherwise as
// literal equality.
type EmployeeFilter struct {
	Department      string
	Position        string
	CaseInsensitive bool
}

// EmployeeRepository defines employee record storage operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, filter *EmployeeFilter) ([]*domain.Employee, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
