package removal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/ksuid"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/bg-remover/internal/model"
	"github.com/ytget/bg-remover/internal/platform"
	"github.com/ytget/bg-remover/internal/rembg"
)

// Output naming
const (
	OutputSuffix    = "_rembg"
	OutputExtension = ".png"
	tempSuffix      = ".tmp"
)

// Service handles background removal batches
type Service struct {
	mu          sync.RWMutex // guards config fields and task status
	remover     rembg.Remover
	outputDir   string
	maxFileSize int64
	workers     int
	onError     func(*model.RemovalTask, error)
	logger      *slog.Logger
}

// NewService creates a new removal service. workers <= 0 means one per CPU.
func NewService(remover rembg.Remover, outputDir string, maxFileSize int64, workers int) *Service {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Service{
		remover:     remover,
		outputDir:   outputDir,
		maxFileSize: maxFileSize,
		workers:     workers,
		logger:      slog.Default(),
	}
}

// SetLogger replaces the logger used for validation and processing events
func (s *Service) SetLogger(logger *slog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = logger
}

// SetErrorCallback sets the callback for per-task failures
func (s *Service) SetErrorCallback(callback func(*model.RemovalTask, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = callback
}

// OutputDirectory returns the directory results are written to
func (s *Service) OutputDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outputDir
}

// SetOutputDirectory sets the output directory for later batches
func (s *Service) SetOutputDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputDir = dir
}

// SetMaxFileSize sets the size limit for later validations
func (s *Service) SetMaxFileSize(bytes int64) {
	if bytes <= 0 {
		bytes = DefaultMaxFileSize
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxFileSize = bytes
}

// SetWorkers sets the pool size for later batches
func (s *Service) SetWorkers(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = count
}

// SetRemover swaps the removal engine for later batches
func (s *Service) SetRemover(remover rembg.Remover) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remover = remover
}

// PoolSize returns the number of workers a batch will use
func (s *Service) PoolSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return poolSize(s.workers)
}

func poolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	return runtime.NumCPU()
}

// OutputPath returns dir/{stem}_rembg.png for the input file
func OutputPath(dir, inputPath string) string {
	name := filepath.Base(inputPath)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		stem = name
	}
	return filepath.Join(dir, stem+OutputSuffix+OutputExtension)
}

// Process runs every input through the remover on a bounded pool and blocks
// until all of them finish. onProgress fires once per finished input,
// successful or not, from the worker goroutine.
func (s *Service) Process(ctx context.Context, refs []model.ImageRef, onProgress func(model.Progress)) *model.Batch {
	s.mu.RLock()
	remover := s.remover
	outputDir := s.outputDir
	workers := poolSize(s.workers)
	onError := s.onError
	logger := s.logger
	s.mu.RUnlock()

	batch := model.NewBatch()
	for _, ref := range refs {
		batch.Add(model.NewRemovalTask(ref, OutputPath(outputDir, ref.Path)))
	}

	total := len(batch.Tasks)
	if total == 0 {
		return batch
	}

	dirErr := platform.CreateDirectoryIfNotExists(outputDir)
	if dirErr != nil {
		dirErr = fmt.Errorf("create output directory %s: %w", outputDir, dirErr)
	}

	logger.Info("processing batch", "batch", batch.ID, "files", total, "workers", workers)
	if onProgress != nil {
		onProgress(model.Progress{Completed: 0, Total: total})
	}

	var completed atomic.Int64
	var g errgroup.Group
	g.SetLimit(workers)

	for _, task := range batch.Tasks {
		task := task
		g.Go(func() error {
			err := dirErr
			if err == nil {
				err = s.processOne(ctx, remover, logger, task)
			}
			s.finishTask(task, err)
			if err != nil {
				logger.Error("error processing image", "file", task.InputPath, "error", err)
				if onError != nil {
					onError(task, err)
				}
			}

			done := completed.Add(1)
			if onProgress != nil {
				onProgress(model.Progress{Completed: int(done), Total: total})
			}
			return nil
		})
	}
	_ = g.Wait()

	succeeded, failed := s.summary(batch)
	logger.Info("batch completed", "batch", batch.ID, "processed", total, "succeeded", succeeded, "failed", failed)
	return batch
}

// processOne reads the input, removes its background and writes the PNG result
func (s *Service) processOne(ctx context.Context, remover rembg.Remover, logger *slog.Logger, task *model.RemovalTask) error {
	s.mu.Lock()
	task.Status = model.TaskStatusProcessing
	task.StartedAt = time.Now()
	s.mu.Unlock()

	logger.Info("processing image", "file", task.InputPath)

	if remover == nil {
		return fmt.Errorf("no background remover configured")
	}

	input, err := os.ReadFile(task.InputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", task.InputPath, err)
	}

	output, err := remover.Remove(ctx, input)
	if err != nil {
		return fmt.Errorf("remove background from %s: %w", task.InputPath, err)
	}

	if err := writeFileAtomic(task.OutputPath, output); err != nil {
		return fmt.Errorf("save %s: %w", task.OutputPath, err)
	}

	logger.Info("saved image", "file", task.OutputPath, "bytes", len(output))
	return nil
}

// finishTask records the final status of a task
func (s *Service) finishTask(task *model.RemovalTask, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.StartedAt.IsZero() {
		task.StartedAt = time.Now()
	}
	task.FinishedAt = time.Now()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		return
	}
	task.Status = model.TaskStatusCompleted
}

func (s *Service) summary(batch *model.Batch) (succeeded, failed int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return batch.Summary()
}

// writeFileAtomic writes data next to path under a unique temp name and
// renames it into place, replacing any existing file.
func writeFileAtomic(path string, data []byte) error {
	dir, name := filepath.Split(path)
	tmp := filepath.Join(dir, "."+name+"."+ksuid.New().String()+tempSuffix)

	if err := os.WriteFile(tmp, data, platform.DefaultFilePermissions); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
