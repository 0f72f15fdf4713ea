//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"lecture-whisper/internal/api/v1/services"
	"lecture-whisper/internal/config"
)

// InitializeTranscriptionService wires the full submission pipeline: OpenAI
// speech engine, Mongo-backed history store, audio stager, metrics, and the
// orchestrating service. The returned cleanup releases the staging
// directory and the Mongo connection.
func InitializeTranscriptionService(
	ctx context.Context,
	creds *config.Credentials,
	serverCfg config.ServerConfig,
) (services.TranscriptionService, func(), error) {
	wire.Build(
		NewLogger,
		provideSpeechEngine,
		provideHistoryDAO,
		provideStager,
		provideMetrics,
		services.NewTranscriptionService,
	)
	return nil, nil, nil
}
