package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/focusbot/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type subjectDocument struct {
	User      string    `bson:"user"`
	Subject   string    `bson:"subject"`
	CreatedAt time.Time `bson:"created_at"`
}

// SubjectRepository implements domain.SubjectRepository
type SubjectRepository struct {
	coll *mongo.Collection
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *DB) *SubjectRepository {
	return &SubjectRepository{coll: db.Database.Collection(subjectsCollection)}
}

func (r *SubjectRepository) Create(ctx context.Context, entry *domain.SubjectEntry) error {
	_, err := r.coll.InsertOne(ctx, subjectDocument{
		User:      entry.User,
		Subject:   entry.Subject,
		CreatedAt: entry.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSubject
		}
		return fmt.Errorf("failed to create subject: %w", err)
	}
	return nil
}

// ListByUser sorts by created_at and then _id, which keeps insertion order
// for entries created within the same millisecond.
func (r *SubjectRepository) ListByUser(ctx context.Context, user string) ([]domain.SubjectEntry, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.coll.Find(ctx, bson.M{"user": user}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []subjectDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode subjects: %w", err)
	}

	entries := make([]domain.SubjectEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, domain.SubjectEntry{
			User:      d.User,
			Subject:   d.Subject,
			CreatedAt: d.CreatedAt,
		})
	}
	return entries, nil
}

func (r *SubjectRepository) Delete(ctx context.Context, user, subject string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user": user, "subject": subject})
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
