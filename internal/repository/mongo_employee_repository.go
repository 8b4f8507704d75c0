package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"employee-records/internal/database"
	"employee-records/internal/domain"
)

// MongoEmployeeRepository implements EmployeeRepository on the employees collection
type MongoEmployeeRepository struct {
	coll *mongo.Collection
}

// NewMongoEmployeeRepository creates a new MongoEmployeeRepository
func NewMongoEmployeeRepository(db *database.MongoDB) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{coll: db.Collection(database.EmployeesCollection)}
}

// Create inserts a new employee record
func (r *MongoEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	now := time.Now()
	if employee.ID.IsZero() {
		employee.ID = bson.NewObjectID()
	}
	if employee.DateOfJoining.IsZero() {
		employee.DateOfJoining = now
	}
	employee.CreatedAt = now
	employee.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, employee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetByID retrieves an employee by id, (nil, nil) when absent
func (r *MongoEmployeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	employee := &domain.Employee{}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return employee, nil
}

// List returns employees matching the filter, sorted by creation time
func (r *MongoEmployeeRepository) List(ctx context.Context, filter *EmployeeFilter) ([]*domain.Employee, error) {
	query := bson.M{}
	if filter != nil {
		addFieldFilter(query, "department", filter.Department, filter.CaseInsensitive)
		addFieldFilter(query, "position", filter.Position, filter.CaseInsensitive)
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	employees := []*domain.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update applies a partial $set and returns the updated document,
// (nil, nil) when the id matched nothing.
func (r *MongoEmployeeRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*domain.Employee, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	employee := &domain.Employee{}
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return employee, nil
}

// Delete removes an employee record, ErrNotFound when nothing matched
func (r *MongoEmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// addFieldFilter adds an equality or anchored case-insensitive regex
// match for a single field. Values are trimmed first; "Engineering"
// must match "engineering" but never "Engineering Ops".
func addFieldFilter(query bson.M, field, value string, caseInsensitive bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if caseInsensitive {
		query[field] = bson.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
		return
	}
	query[field] = value
}
