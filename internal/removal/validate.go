package removal

import (
	"errors"
	"fmt"
	"os"

	"github.com/ytget/bg-remover/internal/model"
)

// DefaultMaxFileSize is the input size limit (10 MB)
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// ErrFileTooLarge marks inputs above the size limit
var ErrFileTooLarge = errors.New("file too large")

// Validate checks that every path is a readable regular file no larger than
// the configured limit. Rejections are logged; they never stop the others.
func (s *Service) Validate(paths []string) ([]model.ImageRef, []model.Rejection) {
	s.mu.RLock()
	limit := s.maxFileSize
	logger := s.logger
	s.mu.RUnlock()

	accepted := make([]model.ImageRef, 0, len(paths))
	var rejected []model.Rejection

	for _, path := range paths {
		size, err := checkFile(path, limit)
		if err == nil {
			accepted = append(accepted, model.ImageRef{Path: path, Size: size})
			continue
		}

		rejection := model.Rejection{Path: path, Size: size, Severity: model.SeverityError, Err: err}
		if errors.Is(err, ErrFileTooLarge) {
			rejection.Severity = model.SeverityWarning
			logger.Warn("file is too large", "file", path, "size", size, "max_size", limit)
		} else {
			logger.Error("error checking file size", "file", path, "error", err)
		}
		rejected = append(rejected, rejection)
	}

	return accepted, rejected
}

// checkFile returns the file size, or an error if the file is unusable
func checkFile(path string, limit int64) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("check file size: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("check file size: %w", err)
	}
	if !info.Mode().IsRegular() {
		return info.Size(), fmt.Errorf("not a regular file: %s", path)
	}
	if info.Size() > limit {
		return info.Size(), fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrFileTooLarge, info.Size(), limit)
	}
	return info.Size(), nil
}
