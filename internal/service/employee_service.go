package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"employee-records/internal/domain"
	"employee-records/internal/dto"
	"employee-records/internal/repository"
	"employee-records/internal/telemetry"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrInvalidEmployeeID  = errors.New("invalid employee id format")
	ErrEmployeeEmailTaken = errors.New("employee email already exists")
)

// EmployeeService defines the employee record operations
type EmployeeService interface {
	// List returns employees, optionally narrowed by exact-match filters
	List(ctx context.Context, query *dto.ListEmployeeQuery) ([]*domain.Employee, error)
	// Search returns employees matching case-insensitive exact filters
	Search(ctx context.Context, query *dto.SearchEmployeeQuery) ([]*domain.Employee, error)
	// Create persists a new employee record
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	// GetByID retrieves an employee record by id
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	// Update merges the provided fields into an existing record
	Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	// Delete removes an employee record
	Delete(ctx context.Context, id string) error
}

// employeeService implements EmployeeService
type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

// List returns employees, optionally narrowed by exact-match filters
func (s *employeeService) List(ctx context.Context, query *dto.ListEmployeeQuery) ([]*domain.Employee, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.employee.list")
	defer span.End()

	filter := &repository.EmployeeFilter{}
	if query != nil {
		filter.Department = query.Department
		filter.Position = query.Position
	}

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(employees)))
	span.SetStatus(codes.Ok, "")
	return employees, nil
}

// Search returns employees whose department and/or position match the
// provided values, ignoring case. An empty result is not an error.
func (s *employeeService) Search(ctx context.Context, query *dto.SearchEmployeeQuery) ([]*domain.Employee, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.employee.search")
	defer span.End()

	filter := &repository.EmployeeFilter{
		Department:      query.Department,
		Position:        query.Position,
		CaseInsensitive: true,
	}

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(employees)))
	span.SetStatus(codes.Ok, "")
	return employees, nil
}

// Create persists a new employee record. Any client-supplied id is
// discarded; the store generates one.
func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.employee.create")
	defer span.End()

	employee := &domain.Employee{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Position:      req.Position,
		Salary:        req.SalaryValue(),
		DateOfJoining: req.DateOfJoiningValue(),
		Department:    req.Department,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			span.SetStatus(codes.Error, "duplicate email")
			return nil, ErrEmployeeEmailTaken
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("employee_id", employee.ID.Hex()))
	span.SetStatus(codes.Ok, "")
	return employee, nil
}

// GetByID retrieves an employee record by id
func (s *employeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.employee.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.String("employee_id", id))

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			span.SetStatus(codes.Error, "invalid id")
			return nil, ErrInvalidEmployeeID
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if employee == nil {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrEmployeeNotFound
	}

	span.SetStatus(codes.Ok, "")
	return employee, nil
}

// Update merges the provided fields into an existing record and returns
// the updated record.
func (s *employeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.employee.update")
	defer span.End()

	span.SetAttributes(attribute.String("employee_id", id))

	employee, err := s.employeeRepo.Update(ctx, id, req.Fields())
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			span.SetStatus(codes.Error, "invalid id")
			return nil, ErrInvalidEmployeeID
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			span.SetStatus(codes.Error, "duplicate email")
			return nil, ErrEmployeeEmailTaken
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if employee == nil {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrEmployeeNotFound
	}

	span.SetStatus(codes.Ok, "")
	return employee, nil
}

// Delete removes an employee record
func (s *employeeService) Delete(ctx context.Context, id string) error {
	ctx, span := telemetry.StartSpan(ctx, "service.employee.delete")
	defer span.End()

	span.SetAttributes(attribute.String("employee_id", id))

	err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			span.SetStatus(codes.Error, "invalid id")
			return ErrInvalidEmployeeID
		}
		if errors.Is(err, repository.ErrNotFound) {
			span.SetStatus(codes.Error, "not found")
			return ErrEmployeeNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
