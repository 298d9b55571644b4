package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

func InitLogger(level slog.Level) {
	slog.SetDefault(NewLogger(os.Stdout, level))
}

// NewLogger builds the tint-backed logger used by every binary.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    w != os.Stdout,
	})

	return slog.New(handler)
}
