package model

import "time"

// TranscriptionRecord is a single entry in a user's transcription history.
// Records are immutable once persisted; the history they live in is
// append-only.
type TranscriptionRecord struct {
	OriginalText   string    `json:"original_text" bson:"original_text"`
	TranslatedText string    `json:"translated_text" bson:"translated_text"`
	TargetLanguage string    `json:"target_language" bson:"target_language"`
	Timestamp      time.Time `json:"timestamp" bson:"timestamp"`
}

// UserHistory is the per-user document stored in the users collection.
// The document ID is the username, taken from the caller as-is.
type UserHistory struct {
	Username       string                `json:"username" bson:"_id"`
	Transcriptions []TranscriptionRecord `json:"transcriptions" bson:"transcriptions"`
}
