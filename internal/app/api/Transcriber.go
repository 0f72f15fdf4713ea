package api

import "context"

// Transcriber converts a staged audio file to text in its original language.
type Transcriber interface {
	Transcribe(ctx context.Context, inputFilePath string) (string, error)
}

// Translator converts a staged audio file to text translated into the
// requested target language. The language code is forwarded to the remote
// engine as-is; the engine owns its interpretation.
type Translator interface {
	Translate(ctx context.Context, inputFilePath string, targetLanguage string) (string, error)
}

// SpeechEngine bundles the two remote speech operations a submission makes.
type SpeechEngine interface {
	Transcriber
	Translator
}
