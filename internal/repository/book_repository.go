package repository

import (
	"context"
	"fmt"
	"time"

	"liebrero-server/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const booksCollection = "libros"

// MongoBookRepository implements domain.BookRepository on a MongoDB collection.
type MongoBookRepository struct {
	collection *mongo.Collection
	logger     domain.Logger
}

// NewMongoBookRepository creates a new book repository.
func NewMongoBookRepository(db *mongo.Database, logger domain.Logger) domain.BookRepository {
	return &MongoBookRepository{
		collection: db.Collection(booksCollection),
		logger:     logger,
	}
}

// Create inserts a new book and fills in its generated id and timestamps.
func (r *MongoBookRepository) Create(ctx context.Context, book *domain.Book) error {
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, book)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		book.ID = oid
	}
	return nil
}

// FindAll returns every book in insertion order.
func (r *MongoBookRepository) FindAll(ctx context.Context) ([]domain.Book, error) {
	return r.find(ctx, bson.M{})
}

// FindByField returns all books matching the resolved exact-match filter.
// Match order is store-defined (natural/insertion order).
func (r *MongoBookRepository) FindByField(ctx context.Context, filter domain.FieldValue) ([]domain.Book, error) {
	return r.find(ctx, bson.M{filter.Column: filter.Value})
}

// UpdateOne applies a partial merge of the given columns onto one book.
func (r *MongoBookRepository) UpdateOne(ctx context.Context, id primitive.ObjectID, changes map[string]interface{}) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for column, value := range changes {
		set[column] = value
	}
	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

// DeleteOne removes exactly one book by id.
func (r *MongoBookRepository) DeleteOne(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *MongoBookRepository) find(ctx context.Context, filter bson.M) ([]domain.Book, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer cursor.Close(ctx)

	var books []domain.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return books, nil
}
