package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"liebrero-server/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "usuarios"

// MongoUserRepository implements domain.UserRepository on a MongoDB collection.
type MongoUserRepository struct {
	collection *mongo.Collection
	logger     domain.Logger
}

// NewMongoUserRepository creates a new user repository.
func NewMongoUserRepository(db *mongo.Database, logger domain.Logger) domain.UserRepository {
	return &MongoUserRepository{
		collection: db.Collection(usersCollection),
		logger:     logger,
	}
}

// Create inserts a new user. CreatedAt is set once here and never updated.
func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	user.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindAll returns every user in insertion order.
func (r *MongoUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	return r.find(ctx, bson.M{})
}

// FindByField returns all users matching the resolved exact-match filter.
func (r *MongoUserRepository) FindByField(ctx context.Context, filter domain.FieldValue) ([]domain.User, error) {
	return r.find(ctx, bson.M{filter.Column: filter.Value})
}

// FindByEmail returns the user registered under the email, or nil when none
// exists. Used as the duplicate pre-check at registration; there is no
// store-level uniqueness constraint.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	return &user, nil
}

// UpdateOne applies a partial merge of the given columns onto one user.
func (r *MongoUserRepository) UpdateOne(ctx context.Context, id primitive.ObjectID, changes map[string]interface{}) error {
	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M(changes)})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNoMatch
	}
	return nil
}

// DeleteOne removes exactly one user by id.
func (r *MongoUserRepository) DeleteOne(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNoMatch
	}
	return nil
}

func (r *MongoUserRepository) find(ctx context.Context, filter bson.M) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
