package services_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "lecture-whisper/internal/api/errors"
	"lecture-whisper/internal/api/v1/dto"
	"lecture-whisper/internal/api/v1/services"
	"lecture-whisper/internal/app/audio"
	"lecture-whisper/internal/app/model"
	"lecture-whisper/internal/app/repository"
	"lecture-whisper/internal/app/repository/memory"
	"lecture-whisper/internal/metrics"
)

// fakeEngine stands in for the remote speech engine; the service takes it
// through its constructor, never through a global client.
type fakeEngine struct {
	translateText  string
	translateErr   error
	transcribeText string
	transcribeErr  error

	mu            sync.Mutex
	gotLanguage   string
	translateSeen string
}

func (f *fakeEngine) Translate(ctx context.Context, path string, targetLanguage string) (string, error) {
	f.mu.Lock()
	f.gotLanguage = targetLanguage
	f.translateSeen = path
	f.mu.Unlock()
	if f.translateErr != nil {
		return "", f.translateErr
	}
	return f.translateText, nil
}

func (f *fakeEngine) Transcribe(ctx context.Context, path string) (string, error) {
	if f.transcribeErr != nil {
		return "", f.transcribeErr
	}
	return f.transcribeText, nil
}

type fixture struct {
	service services.TranscriptionService
	engine  *fakeEngine
	history *memory.HistoryDB
	staging string
}

func newFixture(t *testing.T, engine *fakeEngine) *fixture {
	t.Helper()

	staging := t.TempDir()
	stager, err := audio.NewStager(staging)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stager.Close() })

	history := memory.NewHistoryDB()
	m := metrics.NewMetricsWith(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	return &fixture{
		service: services.NewTranscriptionService(stager, engine, history, m, logger),
		engine:  engine,
		history: history,
		staging: staging,
	}
}

// stagedFileCount counts regular files anywhere under the staging base.
func (f *fixture) stagedFileCount(t *testing.T) int {
	t.Helper()
	count := 0
	err := filepath.WalkDir(f.staging, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	require.NoError(t, err)
	return count
}

func submitRequest(t *testing.T, filename, content, username, targetLanguage string) *dto.SubmitTranscriptionRequest {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	t.Cleanup(func() { _ = req.MultipartForm.RemoveAll() })

	return &dto.SubmitTranscriptionRequest{
		File:           req.MultipartForm.File["file"][0],
		Username:       username,
		TargetLanguage: targetLanguage,
	}
}

func TestSubmit_RoundTrip(t *testing.T) {
	f := newFixture(t, &fakeEngine{
		translateText:  "hello everyone",
		transcribeText: "안녕하세요 여러분",
	})
	ctx := context.Background()

	resp, err := f.service.Submit(ctx, submitRequest(t, "lecture.mp3", "audio-bytes", "alice", "en"))
	require.NoError(t, err)
	assert.Equal(t, "hello everyone", resp.TranslatedText)
	assert.Equal(t, "안녕하세요 여러분", resp.OriginalText)
	assert.Equal(t, "en", f.engine.gotLanguage)

	history, err := f.service.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history.Transcriptions, 1)

	rec := history.Transcriptions[0]
	assert.Equal(t, resp.TranslatedText, rec.TranslatedText)
	assert.Equal(t, resp.OriginalText, rec.OriginalText)
	assert.Equal(t, "en", rec.TargetLanguage)
	assert.Equal(t, time.UTC, rec.Timestamp.Location())
}

func TestSubmit_AppendOnlyGrowthAndTimestampOrder(t *testing.T) {
	f := newFixture(t, &fakeEngine{translateText: "t", transcribeText: "o"})
	ctx := context.Background()

	const n = 4
	for i := 0; i < n; i++ {
		_, err := f.service.Submit(ctx, submitRequest(t, fmt.Sprintf("c%d.mp3", i), "bytes", "alice", "ja"))
		require.NoError(t, err)
	}

	history, err := f.service.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history.Transcriptions, n)

	for i := 1; i < n; i++ {
		prev := history.Transcriptions[i-1].Timestamp
		cur := history.Transcriptions[i].Timestamp
		assert.False(t, cur.Before(prev), "record %d timestamp went backwards", i)
	}
}

func TestSubmit_ConcurrentSameUser(t *testing.T) {
	f := newFixture(t, &fakeEngine{translateText: "t", transcribeText: "o"})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		req := submitRequest(t, "same-name.mp3", "bytes", "alice", "en")
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Submit(ctx, req)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	history, err := f.service.History(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, history.Transcriptions, 2)
	assert.Zero(t, f.stagedFileCount(t))
}

func TestSubmit_StagedAudioAlwaysReleased(t *testing.T) {
	tests := []struct {
		name   string
		engine *fakeEngine
		wantOK bool
	}{
		{"success", &fakeEngine{translateText: "t", transcribeText: "o"}, true},
		{"translate fails", &fakeEngine{translateErr: errors.New("quota exceeded")}, false},
		{"transcribe fails", &fakeEngine{translateText: "t", transcribeErr: errors.New("bad audio")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.engine)

			_, err := f.service.Submit(context.Background(), submitRequest(t, "clip.mp3", "bytes", "bob", "fr"))
			if tt.wantOK {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}

			assert.Zero(t, f.stagedFileCount(t), "staged audio left behind")
		})
	}
}

func TestSubmit_EngineFailureAppendsNothing(t *testing.T) {
	f := newFixture(t, &fakeEngine{translateErr: errors.New("engine exploded")})
	ctx := context.Background()

	_, err := f.service.Submit(ctx, submitRequest(t, "clip.mp3", "corrupt", "carol", "de"))
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindTranscription, apiErr.Kind)
	assert.Contains(t, apiErr.Message, "engine exploded")

	_, err = f.service.History(ctx, "carol")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSubmit_TranscribeFailureAppendsNothing(t *testing.T) {
	f := newFixture(t, &fakeEngine{translateText: "partial", transcribeErr: errors.New("cut off")})
	ctx := context.Background()

	_, err := f.service.Submit(ctx, submitRequest(t, "clip.mp3", "bytes", "dave", "es"))
	require.Error(t, err)

	// Partial progress (the successful translate) must not leak into history.
	_, err = f.service.History(ctx, "dave")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSubmit_PersistenceFailureKind(t *testing.T) {
	engine := &fakeEngine{translateText: "t", transcribeText: "o"}

	stager, err := audio.NewStager(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = stager.Close() })

	svc := services.NewTranscriptionService(
		stager, engine, &failingDAO{},
		metrics.NewMetricsWith(prometheus.NewRegistry()),
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
	)

	_, err = svc.Submit(context.Background(), submitRequest(t, "clip.mp3", "bytes", "erin", "it"))
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindPersistence, apiErr.Kind)
}

func TestHistory_UnknownUserPassesThrough(t *testing.T) {
	f := newFixture(t, &fakeEngine{})

	_, err := f.service.History(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

// failingDAO rejects every write, standing in for an unreachable store.
type failingDAO struct{}

func (d *failingDAO) AppendTranscription(ctx context.Context, username string, record model.TranscriptionRecord) error {
	return errors.New("write rejected")
}

func (d *failingDAO) GetTranscriptions(ctx context.Context, username string) ([]model.TranscriptionRecord, error) {
	return nil, errors.New("store unreachable")
}

func (d *failingDAO) Close(ctx context.Context) error { return nil }
