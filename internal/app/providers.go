package app

import (
	"context"
	"log/slog"
	"os"

	"lecture-whisper/internal/app/api"
	"lecture-whisper/internal/app/api/openai"
	"lecture-whisper/internal/app/api/openai/whisper"
	"lecture-whisper/internal/app/audio"
	"lecture-whisper/internal/app/repository"
	"lecture-whisper/internal/app/repository/mongo"
	"lecture-whisper/internal/config"
	"lecture-whisper/internal/metrics"
)

// NewLogger builds the process-wide structured logger.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// provideSpeechEngine builds the OpenAI-backed engine; OPENAI_API_KEY must be
// set (validated at startup by config).
func provideSpeechEngine(creds *config.Credentials) api.SpeechEngine {
	client := openai.NewClient(creds.OpenAIKey, creds.OpenAIBaseURL)
	return whisper.NewRemoteTranscriber(client)
}

// provideHistoryDAO connects to MongoDB. The cleanup disconnects the client.
func provideHistoryDAO(ctx context.Context, creds *config.Credentials) (repository.HistoryDAO, func(), error) {
	db, err := mongo.NewHistoryDB(ctx, creds.MongoURI, creds.MongoDatabase)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close(context.Background())
	}
	return db, cleanup, nil
}

// provideStager creates the per-process staging directory. The cleanup
// removes it with anything a crashed request may have left behind.
func provideStager(serverCfg config.ServerConfig) (*audio.Stager, func(), error) {
	stager, err := audio.NewStager(serverCfg.StagingDir)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = stager.Close()
	}
	return stager, cleanup, nil
}

func provideMetrics() *metrics.Metrics {
	return metrics.NewMetrics()
}
