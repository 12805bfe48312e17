package platform

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultLogFile is the append-only process log, relative to the working directory
const DefaultLogFile = "process_log.txt"

// OpenProcessLog opens (or creates) the append-only log file and returns a
// logger writing to it and to extra. The caller closes the returned file.
func OpenProcessLog(path string, level slog.Level, extra ...io.Writer) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DefaultFilePermissions)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	writers := append([]io.Writer{f}, extra...)
	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level})
	return slog.New(handler), f, nil
}
