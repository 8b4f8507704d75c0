package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"employee-records/internal/domain"
)

// MemoryUserRepository implements UserRepository using in-memory storage.
// This is useful for testing and development.
type MemoryUserRepository struct {
	users   map[string]*domain.User
	byEmail map[string]string // email -> id hex
	mu      sync.RWMutex
}

// NewMemoryUserRepository creates a new in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

// Create creates a new user record
func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return ErrDuplicateEmail
	}

	now := time.Now()
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	// Clone to avoid external modifications
	u := *user
	r.users[user.ID.Hex()] = &u
	r.byEmail[user.Email] = user.ID.Hex()

	return nil
}

// GetByEmail retrieves a user by email
func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byEmail[email]
	if !exists {
		return nil, nil
	}
	u := *r.users[id]
	return &u, nil
}

// ExistsByEmail reports whether a user with the email exists
func (r *MemoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byEmail[email]
	return exists, nil
}

// MemoryEmployeeRepository implements EmployeeRepository using in-memory
// storage with the same filter and update semantics as the Mongo
// implementation.
type MemoryEmployeeRepository struct {
	employees map[string]*domain.Employee
	order     []string
	mu        sync.RWMutex
}

// NewMemoryEmployeeRepository creates a new in-memory employee repository
func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{
		employees: make(map[string]*domain.Employee),
	}
}

// Create creates a new employee record
func (r *MemoryEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.employees {
		if e.Email == employee.Email {
			return ErrDuplicateEmail
		}
	}

	now := time.Now()
	if employee.ID.IsZero() {
		employee.ID = bson.NewObjectID()
	}
	if employee.DateOfJoining.IsZero() {
		employee.DateOfJoining = now
	}
	employee.CreatedAt = now
	employee.UpdatedAt = now

	e := *employee
	r.employees[employee.ID.Hex()] = &e
	r.order = append(r.order, employee.ID.Hex())

	return nil
}

// GetByID retrieves an employee by id, (nil, nil) when absent
func (r *MemoryEmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, exists := r.employees[id]
	if !exists {
		return nil, nil
	}
	e := *employee
	return &e, nil
}

// List returns employees matching the filter in insertion order
func (r *MemoryEmployeeRepository) List(ctx context.Context, filter *EmployeeFilter) ([]*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*domain.Employee{}
	for _, id := range r.order {
		employee, exists := r.employees[id]
		if !exists {
			continue
		}
		if !matchesFilter(employee, filter) {
			continue
		}
		e := *employee
		result = append(result, &e)
	}
	return result, nil
}

// Update merges the provided fields and returns the updated record,
// (nil, nil) when the id matched nothing.
func (r *MemoryEmployeeRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*domain.Employee, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	employee, exists := r.employees[id]
	if !exists {
		return nil, nil
	}

	for k, v := range fields {
		switch k {
		case "first_name":
			employee.FirstName = v.(string)
		case "last_name":
			employee.LastName = v.(string)
		case "email":
			employee.Email = v.(string)
		case "position":
			employee.Position = v.(string)
		case "salary":
			employee.Salary = v.(float64)
		case "date_of_joining":
			employee.DateOfJoining = v.(time.Time)
		case "department":
			employee.Department = v.(string)
		}
	}
	employee.UpdatedAt = time.Now()

	e := *employee
	return &e, nil
}

// Delete removes an employee record, ErrNotFound when nothing matched
func (r *MemoryEmployeeRepository) Delete(ctx context.Context, id string) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.employees[id]; !exists {
		return ErrNotFound
	}
	delete(r.employees, id)
	return nil
}

func matchesFilter(e *domain.Employee, filter *EmployeeFilter) bool {
	if filter == nil {
		return true
	}
	if !matchesField(e.Department, filter.Department, filter.CaseInsensitive) {
		return false
	}
	if !matchesField(e.Position, filter.Position, filter.CaseInsensitive) {
		return false
	}
	return true
}

func matchesField(have, want string, caseInsensitive bool) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return true
	}
	if caseInsensitive {
		return strings.EqualFold(have, want)
	}
	return have == want
}
