package model

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task and batch ID prefixes
const (
	TaskIDPrefix  = "task-"
	BatchIDPrefix = "batch-"
)

// ImageRef is a user-selected input image with its size at selection time
type ImageRef struct {
	Path string
	Size int64 // bytes
}

// Severity classifies a rejected input
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rejection describes an input excluded from a batch before processing
type Rejection struct {
	Path     string
	Size     int64
	Severity Severity
	Err      error
}

// Name returns the base name of the rejected file
func (r Rejection) Name() string {
	return filepath.Base(r.Path)
}

// RemovalTask represents a single background removal unit of work
type RemovalTask struct {
	ID         string
	InputPath  string
	OutputPath string
	Size       int64      // input size in bytes
	Status     TaskStatus // guarded by the owning service
	LastError  string     // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewRemovalTask creates a pending task for the given input
func NewRemovalTask(ref ImageRef, outputPath string) *RemovalTask {
	return &RemovalTask{
		ID:         TaskIDPrefix + uuid.NewString(),
		InputPath:  ref.Path,
		OutputPath: outputPath,
		Size:       ref.Size,
		Status:     TaskStatusPending,
	}
}

// Duration returns how long the task ran, or zero if it has not finished
func (t *RemovalTask) Duration() time.Duration {
	if t.StartedAt.IsZero() || t.FinishedAt.IsZero() {
		return 0
	}
	return t.FinishedAt.Sub(t.StartedAt)
}

// DisplayName returns the input file name without its extension
func (t *RemovalTask) DisplayName() string {
	name := filepath.Base(t.InputPath)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// Batch is the set of tasks submitted together in one dispatch call.
// Tasks keep submission order; completion order is unspecified.
type Batch struct {
	ID        string
	Tasks     []*RemovalTask
	CreatedAt time.Time
}

// NewBatch creates an empty batch
func NewBatch() *Batch {
	return &Batch{
		ID:        BatchIDPrefix + uuid.NewString(),
		Tasks:     make([]*RemovalTask, 0),
		CreatedAt: time.Now(),
	}
}

// Add appends a task to the batch
func (b *Batch) Add(task *RemovalTask) {
	b.Tasks = append(b.Tasks, task)
}

// Summary returns the number of succeeded and failed tasks
func (b *Batch) Summary() (succeeded, failed int) {
	for _, task := range b.Tasks {
		switch task.Status {
		case TaskStatusCompleted:
			succeeded++
		case TaskStatusError:
			failed++
		}
	}
	return succeeded, failed
}

// Progress is a (completed, total) counter for one batch
type Progress struct {
	Completed int
	Total     int
}

// Fraction returns progress as 0.0 to 1.0
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// Percent returns progress as 0 to 100
func (p Progress) Percent() int {
	return int(p.Fraction() * 100)
}

// Done reports whether every unit has completed
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed >= p.Total
}
