package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lecture-whisper/internal/app/model"
	"lecture-whisper/internal/app/repository"
)

func record(i int) model.TranscriptionRecord {
	return model.TranscriptionRecord{
		OriginalText:   fmt.Sprintf("original %d", i),
		TranslatedText: fmt.Sprintf("translated %d", i),
		TargetLanguage: "ko",
		Timestamp:      time.Now().UTC(),
	}
}

func TestHistoryDB_UnknownUser(t *testing.T) {
	db := NewHistoryDB()

	_, err := db.GetTranscriptions(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestHistoryDB_AppendOnlyGrowth(t *testing.T) {
	db := NewHistoryDB()
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, db.AppendTranscription(ctx, "alice", record(i)))
	}

	history, err := db.GetTranscriptions(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, n)

	for i, rec := range history {
		assert.Equal(t, fmt.Sprintf("original %d", i), rec.OriginalText)
		assert.Equal(t, fmt.Sprintf("translated %d", i), rec.TranslatedText)
	}
}

func TestHistoryDB_UsersAreIndependent(t *testing.T) {
	db := NewHistoryDB()
	ctx := context.Background()

	require.NoError(t, db.AppendTranscription(ctx, "alice", record(0)))

	_, err := db.GetTranscriptions(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestHistoryDB_ConcurrentAppendsLoseNothing(t *testing.T) {
	db := NewHistoryDB()
	ctx := context.Background()

	const goroutines = 16
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, db.AppendTranscription(ctx, "alice", record(i)))
		}(i)
	}
	wg.Wait()

	history, err := db.GetTranscriptions(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, history, goroutines)
}

func TestHistoryDB_ReturnedSliceIsASnapshot(t *testing.T) {
	db := NewHistoryDB()
	ctx := context.Background()

	require.NoError(t, db.AppendTranscription(ctx, "alice", record(0)))
	before, err := db.GetTranscriptions(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, db.AppendTranscription(ctx, "alice", record(1)))

	assert.Len(t, before, 1)
	assert.Equal(t, "original 0", before[0].OriginalText)
}
