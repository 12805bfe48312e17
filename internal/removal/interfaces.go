package removal

import (
	"context"

	"github.com/ytget/bg-remover/internal/model"
	"github.com/ytget/bg-remover/internal/rembg"
)

// Processor defines the interface for the removal service.
type Processor interface {
	// SetErrorCallback registers a handler for per-task failures; it runs on worker goroutines
	SetErrorCallback(func(*model.RemovalTask, error))

	// Validate splits paths into accepted inputs and rejections
	Validate(paths []string) ([]model.ImageRef, []model.Rejection)

	// Process runs every input to completion and blocks until the batch is done
	Process(ctx context.Context, refs []model.ImageRef, onProgress func(model.Progress)) *model.Batch

	OutputDirectory() string
	SetOutputDirectory(dir string)
	SetMaxFileSize(bytes int64)
	SetWorkers(count int)
	SetRemover(remover rembg.Remover)
}
