package dto

import (
	"mime/multipart"
	"time"
)

// SubmitTranscriptionRequest is the multipart form for a submission.
// target_language is forwarded to the speech engine unvalidated; username is
// used directly as the history key.
type SubmitTranscriptionRequest struct {
	File           *multipart.FileHeader `form:"file" binding:"required"`
	Username       string                `form:"username" binding:"required"`
	TargetLanguage string                `form:"target_language" binding:"required"`
}

// SubmitTranscriptionResponse mirrors the legacy success payload.
type SubmitTranscriptionResponse struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
}

// ErrorResponse is the legacy failure payload. Callers that predate the
// status-code mapping inspect this field instead of the status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HistoryQuery is the query string for a history fetch.
type HistoryQuery struct {
	Username string `form:"username" binding:"required"`
}

// TranscriptionDTO is one history entry as returned to callers.
type TranscriptionDTO struct {
	OriginalText   string    `json:"original_text"`
	TranslatedText string    `json:"translated_text"`
	TargetLanguage string    `json:"target_language"`
	Timestamp      time.Time `json:"timestamp"`
}

// HistoryResponse wraps a user's full transcription history.
type HistoryResponse struct {
	Transcriptions []TranscriptionDTO `json:"transcriptions"`
}

// NoHistoryResponse is the informational payload for a user with no
// transcriptions. Not an error.
type NoHistoryResponse struct {
	Message string `json:"message"`
}
