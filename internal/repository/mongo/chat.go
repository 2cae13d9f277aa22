package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/focusbot/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type chatDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      string             `bson:"user"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Reply     string             `bson:"reply"`
	Timestamp time.Time          `bson:"timestamp"`
	Rejected  bool               `bson:"rejected"`
}

func (d chatDocument) toDomain() domain.ChatTurn {
	return domain.ChatTurn{
		ID:        d.ID.Hex(),
		User:      d.User,
		Subject:   d.Subject,
		Message:   d.Message,
		Reply:     d.Reply,
		Timestamp: d.Timestamp,
		Rejected:  d.Rejected,
	}
}

// ChatRepository implements domain.ChatRepository
type ChatRepository struct {
	coll *mongo.Collection
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *DB) *ChatRepository {
	return &ChatRepository{coll: db.Database.Collection(chatsCollection)}
}

func (r *ChatRepository) Create(ctx context.Context, turn *domain.ChatTurn) error {
	res, err := r.coll.InsertOne(ctx, chatDocument{
		User:      turn.User,
		Subject:   turn.Subject,
		Message:   turn.Message,
		Reply:     turn.Reply,
		Timestamp: turn.Timestamp,
		Rejected:  turn.Rejected,
	})
	if err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		turn.ID = id.Hex()
	}
	return nil
}

func (r *ChatRepository) ListByUser(ctx context.Context, user, subject string, limit int) ([]domain.ChatTurn, error) {
	filter := bson.M{
		"user":     user,
		"rejected": bson.M{"$ne": true},
	}
	if subject != "" {
		filter["subject"] = subject
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	defer cursor.Close(ctx)

	turns := make([]domain.ChatTurn, 0)
	for cursor.Next(ctx) {
		var doc chatDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode chat: %w", err)
		}
		turns = append(turns, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chats: %w", err)
	}
	return turns, nil
}

func (r *ChatRepository) Delete(ctx context.Context, id, user string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user": user})
	if err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ChatRepository) DeleteAllByUser(ctx context.Context, user string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"user": user})
	if err != nil {
		return 0, fmt.Errorf("failed to delete chats: %w", err)
	}
	return res.DeletedCount, nil
}
