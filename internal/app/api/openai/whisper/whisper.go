package whisper

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// RemoteTranscriber implements remote transcription and translation using
// the OpenAI Whisper API. Each submission makes two independent calls; no
// retry or fallback happens here — failures propagate to the caller with the
// engine's message intact.
type RemoteTranscriber struct {
	client *openai.Client
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{client: client}
}

// Transcribe uses the OpenAI API for remote transcription in the original
// language.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, inputFilePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: inputFilePath,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %s", err)
	}

	return resp.Text, nil
}

// Translate uses the OpenAI API to produce a transcript translated toward
// targetLanguage. Whisper's translation endpoint decides what it does with
// the code; it is forwarded unvalidated.
func (rt *RemoteTranscriber) Translate(ctx context.Context, inputFilePath string, targetLanguage string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: inputFilePath,
		Language: targetLanguage,
	}
	resp, err := rt.client.CreateTranslation(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranslation failed: %s", err)
	}

	return resp.Text, nil
}
