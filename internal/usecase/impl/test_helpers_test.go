package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"marketplace/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingActivityLogger captures admin log entries for assertions.
type recordingActivityLogger struct {
	mu      sync.Mutex
	entries []*entity.AdminLog
}

func (l *recordingActivityLogger) Log(_ context.Context, entry *entity.AdminLog) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *recordingActivityLogger) recorded() []*entity.AdminLog {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.entries
}
