package impl

import (
	"io"
	"log/slog"
	"time"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2024, time.March, 14, 15, 9, 26, 0, time.UTC)
