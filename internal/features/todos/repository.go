package todos

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound  = errors.New("todo not found")
	ErrInvalidID = errors.New("invalid todo id")
)

// Store is the persistence contract the todo handlers depend on. Every
// operation is owner-scoped: a caller can only see its own items.
type Store interface {
	Create(ctx context.Context, todo *Todo) error
	GetByID(ctx context.Context, id, userID string) (*Todo, error)
	List(ctx context.Context, userID string, q ListQuery) ([]Todo, int64, error)
	Update(ctx context.Context, id, userID string, set bson.M) (*Todo, error)
	Delete(ctx context.Context, id, userID string) error
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("todos")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, todo *Todo) error {
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, todo)
	if err != nil {
		return err
	}

	todo.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID fetches one item scoped to its owner. Returns nil, nil when the
// item is absent or owned by someone else.
func (r *Repository) GetByID(ctx context.Context, id, userID string) (*Todo, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var todo Todo
	err = r.collection.FindOne(ctx, bson.M{
		"_id":    objectID,
		"userId": userID,
	}).Decode(&todo)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &todo, nil
}

// List returns one page of the owner's todos plus the total count for the
// same filter.
func (r *Repository) List(ctx context.Context, userID string, q ListQuery) ([]Todo, int64, error) {
	filter := buildListFilter(userID, q)

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	direction := -1
	if q.Order == "asc" {
		direction = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: direction}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var todos []Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, 0, err
	}
	if todos == nil {
		todos = []Todo{}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return todos, total, nil
}

// Update applies the given fields to an owner-scoped item and returns the
// updated document. ErrNotFound covers both absent and not-owned.
func (r *Repository) Update(ctx context.Context, id, userID string, set bson.M) (*Todo, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var todo Todo
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID, "userId": userID},
		bson.M{"$set": set},
		opts,
	).Decode(&todo)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &todo, nil
}

func (r *Repository) Delete(ctx context.Context, id, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{
		"_id":    objectID,
		"userId": userID,
	})

	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// buildListFilter translates a list query into the owner-scoped Mongo
// filter. Search matches title or description case-insensitively, with
// regex metacharacters treated literally.
func buildListFilter(userID string, q ListQuery) bson.M {
	filter := bson.M{"userId": userID}

	if q.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Priority != "" {
		filter["priority"] = q.Priority
	}

	return filter
}

// DeleteAllByUser removes every todo the account owns. Account deletion
// uses this to avoid orphaned items.
func (r *Repository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
