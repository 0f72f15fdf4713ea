package memory

import (
	"context"
	"sync"

	"lecture-whisper/internal/app/model"
	"lecture-whisper/internal/app/repository"
)

// HistoryDB is an in-memory repository.HistoryDAO used by tests and local
// runs without a MongoDB instance. Appends are serialized by a mutex, which
// gives the same no-lost-update guarantee the Mongo backend gets from $push.
type HistoryDB struct {
	mu        sync.Mutex
	histories map[string][]model.TranscriptionRecord
}

func NewHistoryDB() *HistoryDB {
	return &HistoryDB{
		histories: make(map[string][]model.TranscriptionRecord),
	}
}

func (db *HistoryDB) AppendTranscription(ctx context.Context, username string, record model.TranscriptionRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.histories[username] = append(db.histories[username], record)
	return nil
}

func (db *HistoryDB) GetTranscriptions(ctx context.Context, username string) ([]model.TranscriptionRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	history, ok := db.histories[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	// Copy so callers never observe later appends through the returned slice.
	out := make([]model.TranscriptionRecord, len(history))
	copy(out, history)
	return out, nil
}

func (db *HistoryDB) Close(ctx context.Context) error {
	return nil
}
