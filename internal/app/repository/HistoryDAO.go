package repository

import (
	"context"
	"errors"

	"lecture-whisper/internal/app/model"
)

// ErrUserNotFound is returned by GetTranscriptions when no history document
// exists for the given username. Callers treat it as informational, not as a
// failure.
var ErrUserNotFound = errors.New("user not found")

// HistoryDAO persists per-user transcription histories.
//
// AppendTranscription must be atomic at the storage layer: concurrent appends
// for the same username may not lose updates. The user document is created
// lazily on first append.
type HistoryDAO interface {
	Close(ctx context.Context) error

	AppendTranscription(ctx context.Context, username string, record model.TranscriptionRecord) error

	// GetTranscriptions returns the full history for username in insertion
	// order, or ErrUserNotFound if no document exists for that key.
	GetTranscriptions(ctx context.Context, username string) ([]model.TranscriptionRecord, error)
}
