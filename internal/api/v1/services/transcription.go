package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"lecture-whisper/internal/api/errors"
	"lecture-whisper/internal/api/v1/dto"
	"lecture-whisper/internal/app/api"
	"lecture-whisper/internal/app/audio"
	"lecture-whisper/internal/app/model"
	"lecture-whisper/internal/app/repository"
	"lecture-whisper/internal/metrics"
)

// Pipeline stage labels used for metrics and logs.
const (
	stageStaged      = "staged"
	stageTranslated  = "translated"
	stageTranscribed = "transcribed"
	stagePersisted   = "persisted"
)

// TranscriptionServiceImpl implements TranscriptionService.
type TranscriptionServiceImpl struct {
	stager  *audio.Stager
	engine  api.SpeechEngine
	history repository.HistoryDAO
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewTranscriptionService creates a new transcription service.
func NewTranscriptionService(
	stager *audio.Stager,
	engine api.SpeechEngine,
	history repository.HistoryDAO,
	m *metrics.Metrics,
	logger *slog.Logger,
) TranscriptionService {
	return &TranscriptionServiceImpl{
		stager:  stager,
		engine:  engine,
		history: history,
		metrics: m,
		logger:  logger,
	}
}

// Submit runs the submission pipeline. The staged file is released on every
// path once staging succeeded; a release failure is logged but does not
// change the response already computed.
func (s *TranscriptionServiceImpl) Submit(ctx context.Context, req *dto.SubmitTranscriptionRequest) (*dto.SubmitTranscriptionResponse, error) {
	start := time.Now()

	upload, err := req.File.Open()
	if err != nil {
		return nil, s.stageFailure(stageStaged, errors.NewStagingError(err))
	}
	defer upload.Close()

	staged, err := s.stager.Stage(upload, req.File.Filename)
	if err != nil {
		return nil, s.stageFailure(stageStaged, errors.NewStagingError(err))
	}
	defer func() {
		if err := staged.Release(); err != nil {
			s.logger.Warn("Failed to release staged audio",
				"path", staged.Path(),
				"error", err,
			)
		}
	}()
	s.metrics.StagedBytes.Observe(float64(staged.Size()))

	translatedText, err := s.engine.Translate(ctx, staged.Path(), req.TargetLanguage)
	if err != nil {
		return nil, s.stageFailure(stageTranslated, errors.NewTranscriptionError(err))
	}

	originalText, err := s.engine.Transcribe(ctx, staged.Path())
	if err != nil {
		return nil, s.stageFailure(stageTranscribed, errors.NewTranscriptionError(err))
	}

	record := model.TranscriptionRecord{
		OriginalText:   originalText,
		TranslatedText: translatedText,
		TargetLanguage: req.TargetLanguage,
		Timestamp:      time.Now().UTC(),
	}

	if err := s.history.AppendTranscription(ctx, req.Username, record); err != nil {
		return nil, s.stageFailure(stagePersisted, errors.NewPersistenceError(err))
	}

	s.metrics.SubmissionsTotal.WithLabelValues("success").Inc()
	s.metrics.SubmissionDuration.Observe(time.Since(start).Seconds())
	s.logger.Info("Submission persisted",
		"username", req.Username,
		"target_language", req.TargetLanguage,
		"audio_bytes", staged.Size(),
	)

	return &dto.SubmitTranscriptionResponse{
		OriginalText:   originalText,
		TranslatedText: translatedText,
	}, nil
}

// History returns the user's accumulated transcriptions. ErrUserNotFound
// passes through untouched so the handler can answer with the informational
// payload.
func (s *TranscriptionServiceImpl) History(ctx context.Context, username string) (*dto.HistoryResponse, error) {
	s.metrics.HistoryFetches.Inc()

	records, err := s.history.GetTranscriptions(ctx, username)
	if err != nil {
		return nil, err
	}

	return &dto.HistoryResponse{
		Transcriptions: lo.Map(records, func(r model.TranscriptionRecord, _ int) dto.TranscriptionDTO {
			return dto.TranscriptionDTO{
				OriginalText:   r.OriginalText,
				TranslatedText: r.TranslatedText,
				TargetLanguage: r.TargetLanguage,
				Timestamp:      r.Timestamp,
			}
		}),
	}, nil
}

func (s *TranscriptionServiceImpl) stageFailure(stage string, apiErr *errors.APIError) error {
	s.metrics.SubmissionsTotal.WithLabelValues("failure").Inc()
	s.metrics.StageFailures.WithLabelValues(stage).Inc()
	s.logger.Error("Submission pipeline failed",
		"stage", stage,
		"kind", string(apiErr.Kind),
		"error", apiErr.Message,
	)
	return apiErr
}
