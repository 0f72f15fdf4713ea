package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StagedAudio is an uploaded payload materialized as a temporary file for the
// duration of one request. It must be released before the handler returns.
type StagedAudio struct {
	path     string
	size     int64
	released bool
}

// Stager writes uploaded audio bytes into a service-owned temporary
// directory. File names are prefixed with a fresh UUID, so concurrent uploads
// with identical filename hints never collide.
type Stager struct {
	dir string
}

// NewStager creates the staging directory. Pass an empty dir to stage under
// the system temp directory.
func NewStager(dir string) (*Stager, error) {
	tmpDir, err := os.MkdirTemp(dir, "lecture-whisper-staging-")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	return &Stager{dir: tmpDir}, nil
}

// Stage copies r into a uniquely named file. The hint contributes only its
// sanitized base name, keeping the original extension visible to the speech
// engine.
func (s *Stager) Stage(r io.Reader, hint string) (*StagedAudio, error) {
	name := uuid.New().String() + "-" + sanitizeHint(hint)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged audio file: %w", err)
	}

	size, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write staged audio file: %w", err)
	}

	return &StagedAudio{path: path, size: size}, nil
}

// Close removes the staging directory and anything left in it.
func (s *Stager) Close() error {
	return os.RemoveAll(s.dir)
}

// Path returns the staged file's location on disk.
func (a *StagedAudio) Path() string {
	return a.path
}

// Size returns the number of bytes staged.
func (a *StagedAudio) Size() int64 {
	return a.size
}

// Release deletes the staged file. Safe to call more than once.
func (a *StagedAudio) Release() error {
	if a.released {
		return nil
	}
	a.released = true
	if err := os.Remove(a.path); err != nil {
		return fmt.Errorf("failed to remove staged audio file: %w", err)
	}
	return nil
}

// sanitizeHint strips path separators and control characters from the
// caller-supplied filename. The hint is untrusted input.
func sanitizeHint(hint string) string {
	base := filepath.Base(strings.ReplaceAll(hint, "\\", "/"))
	if base == "." || base == ".." || base == "/" || base == "" {
		return "audio"
	}
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return '_'
		}
		return r
	}, base)
}
