package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lecture-whisper/internal/app/model"
	"lecture-whisper/internal/app/repository"
)

const (
	defaultDatabase = "lecture_whisper"
	usersCollection = "users"
)

// HistoryDB implements repository.HistoryDAO on top of MongoDB. One document
// per username in the users collection, field "transcriptions" holding the
// ordered history array.
type HistoryDB struct {
	client *mongo.Client
	users  *mongo.Collection
}

// NewHistoryDB connects to the given MongoDB URI and verifies the connection
// with a ping before returning.
func NewHistoryDB(ctx context.Context, uri string, database string) (*HistoryDB, error) {
	if database == "" {
		database = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &HistoryDB{
		client: client,
		users:  client.Database(database).Collection(usersCollection),
	}, nil
}

// AppendTranscription appends record to the user's history in a single
// upserted $push. The document is created on first append; concurrent appends
// for the same username serialize at the storage layer, so no update is lost.
func (db *HistoryDB) AppendTranscription(ctx context.Context, username string, record model.TranscriptionRecord) error {
	filter := bson.M{"_id": username}
	update := bson.M{"$push": bson.M{"transcriptions": record}}

	_, err := db.users.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to append transcription for user %q: %w", username, err)
	}
	return nil
}

// GetTranscriptions returns the user's full history in insertion order.
func (db *HistoryDB) GetTranscriptions(ctx context.Context, username string) ([]model.TranscriptionRecord, error) {
	var history model.UserHistory
	err := db.users.FindOne(ctx, bson.M{"_id": username}).Decode(&history)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load history for user %q: %w", username, err)
	}
	return history.Transcriptions, nil
}

// Close disconnects the underlying client.
func (db *HistoryDB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
