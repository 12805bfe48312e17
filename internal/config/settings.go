package config

import (
	"fyne.io/fyne/v2"
)

// Backend selects how the removal engine is reached
type Backend string

const (
	BackendHTTP Backend = "http"
	BackendCLI  Backend = "cli"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir          = "output_directory"
	KeyMaxFileSizeMB      = "max_file_size_mb"
	KeyWorkers            = "workers"
	KeyBackend            = "remover_backend"
	KeyServerURL          = "remover_server_url"
	KeyCommand            = "remover_command"
	KeyModel              = "remover_model"
	KeyGalleryRefreshSecs = "gallery_refresh_seconds"
	KeyLanguage           = "app_language"
)

// Default values
const (
	DefaultOutputDir          = "assets"
	DefaultMaxFileSizeMB      = 10
	DefaultWorkers            = 0 // auto: one per CPU
	DefaultBackend            = BackendHTTP
	DefaultServerURL          = "http://127.0.0.1:7000"
	DefaultCommand            = "rembg"
	DefaultModel              = "u2net"
	DefaultGalleryRefreshSecs = 0 // disabled
	DefaultLanguage           = "system"
)

// Limits
const (
	MaxFileSizeMBLimit     = 1024
	MaxWorkersLimit        = 64
	MaxGalleryRefreshLimit = 3600
	BytesPerMB             = 1024 * 1024
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the directory processed images are written to
func (s *Settings) GetOutputDirectory() string {
	return s.app.Preferences().StringWithFallback(KeyOutputDir, DefaultOutputDir)
}

// SetOutputDirectory sets the output directory, empty restores the default
func (s *Settings) SetOutputDirectory(dir string) {
	if dir == "" {
		dir = DefaultOutputDir
	}
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetMaxFileSizeMB returns the input size limit in megabytes
func (s *Settings) GetMaxFileSizeMB() int {
	value := s.app.Preferences().Int(KeyMaxFileSizeMB)
	if value <= 0 {
		s.SetMaxFileSizeMB(DefaultMaxFileSizeMB)
		return DefaultMaxFileSizeMB
	}
	return value
}

// GetMaxFileSizeBytes returns the input size limit in bytes
func (s *Settings) GetMaxFileSizeBytes() int64 {
	return int64(s.GetMaxFileSizeMB()) * BytesPerMB
}

// SetMaxFileSizeMB sets the input size limit, clamped to 1..1024
func (s *Settings) SetMaxFileSizeMB(mb int) {
	if mb < 1 {
		mb = 1
	}
	if mb > MaxFileSizeMBLimit {
		mb = MaxFileSizeMBLimit
	}
	s.app.Preferences().SetInt(KeyMaxFileSizeMB, mb)
}

// GetWorkers returns the worker pool size, 0 meaning one per CPU
func (s *Settings) GetWorkers() int {
	return s.app.Preferences().IntWithFallback(KeyWorkers, DefaultWorkers)
}

// SetWorkers sets the worker pool size, clamped to 0..64
func (s *Settings) SetWorkers(count int) {
	if count < 0 {
		count = 0
	}
	if count > MaxWorkersLimit {
		count = MaxWorkersLimit
	}
	s.app.Preferences().SetInt(KeyWorkers, count)
}

// GetBackend returns the configured removal backend
func (s *Settings) GetBackend() Backend {
	backend := Backend(s.app.Preferences().String(KeyBackend))
	switch backend {
	case BackendHTTP, BackendCLI:
		return backend
	default:
		return DefaultBackend
	}
}

// SetBackend sets the removal backend
func (s *Settings) SetBackend(backend Backend) {
	s.app.Preferences().SetString(KeyBackend, string(backend))
}

// GetBackendOptions returns available backends
func (s *Settings) GetBackendOptions() []Backend {
	return []Backend{BackendHTTP, BackendCLI}
}

// GetServerURL returns the rembg server base URL
func (s *Settings) GetServerURL() string {
	return s.app.Preferences().StringWithFallback(KeyServerURL, DefaultServerURL)
}

// SetServerURL sets the rembg server base URL, empty restores the default
func (s *Settings) SetServerURL(url string) {
	if url == "" {
		url = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, url)
}

// GetCommand returns the rembg executable used by the CLI backend
func (s *Settings) GetCommand() string {
	return s.app.Preferences().StringWithFallback(KeyCommand, DefaultCommand)
}

// SetCommand sets the rembg executable, empty restores the default
func (s *Settings) SetCommand(command string) {
	if command == "" {
		command = DefaultCommand
	}
	s.app.Preferences().SetString(KeyCommand, command)
}

// GetModel returns the segmentation model name passed to rembg
func (s *Settings) GetModel() string {
	return s.app.Preferences().StringWithFallback(KeyModel, DefaultModel)
}

// SetModel sets the segmentation model name, empty restores the default
func (s *Settings) SetModel(model string) {
	if model == "" {
		model = DefaultModel
	}
	s.app.Preferences().SetString(KeyModel, model)
}

// GetGalleryRefreshSeconds returns the gallery auto-refresh interval, 0 when disabled
func (s *Settings) GetGalleryRefreshSeconds() int {
	return s.app.Preferences().IntWithFallback(KeyGalleryRefreshSecs, DefaultGalleryRefreshSecs)
}

// SetGalleryRefreshSeconds sets the auto-refresh interval, clamped to 0..3600
func (s *Settings) SetGalleryRefreshSeconds(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > MaxGalleryRefreshLimit {
		seconds = MaxGalleryRefreshLimit
	}
	s.app.Preferences().SetInt(KeyGalleryRefreshSecs, seconds)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"id":     "Bahasa Indonesia",
		"ru":     "Русский",
	}
}
