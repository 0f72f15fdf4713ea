package services

import (
	"context"

	"lecture-whisper/internal/api/v1/dto"
)

// TranscriptionService orchestrates the submission pipeline and history
// reads.
type TranscriptionService interface {
	// Submit runs stage → translate → transcribe → persist → cleanup for one
	// uploaded clip. Failures come back as kind-tagged *errors.APIError
	// values; a failed submission never appends to history.
	Submit(ctx context.Context, req *dto.SubmitTranscriptionRequest) (*dto.SubmitTranscriptionResponse, error)

	// History returns the user's full transcription history in submission
	// order, or repository.ErrUserNotFound when the user has none.
	History(ctx context.Context, username string) (*dto.HistoryResponse, error)
}
