package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetOutputDirectory(); dir != DefaultOutputDir {
		t.Errorf("Expected default output directory %s, got %s", DefaultOutputDir, dir)
	}

	customDir := "/custom/results"
	settings.SetOutputDirectory(customDir)
	if dir := settings.GetOutputDirectory(); dir != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, dir)
	}

	// Empty restores the default
	settings.SetOutputDirectory("")
	if dir := settings.GetOutputDirectory(); dir != DefaultOutputDir {
		t.Errorf("Empty directory should default to %s, got %s", DefaultOutputDir, dir)
	}
}

func TestMaxFileSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if mb := settings.GetMaxFileSizeMB(); mb != DefaultMaxFileSizeMB {
		t.Errorf("Expected default max file size %d, got %d", DefaultMaxFileSizeMB, mb)
	}
	if b := settings.GetMaxFileSizeBytes(); b != 10*1024*1024 {
		t.Errorf("Expected default max file size 10485760 bytes, got %d", b)
	}

	settings.SetMaxFileSizeMB(25)
	if mb := settings.GetMaxFileSizeMB(); mb != 25 {
		t.Errorf("Expected max file size 25, got %d", mb)
	}

	settings.SetMaxFileSizeMB(0) // Should be clamped to 1
	if settings.GetMaxFileSizeMB() != 1 {
		t.Error("Max file size should be clamped to minimum 1")
	}

	settings.SetMaxFileSizeMB(5000) // Should be clamped to 1024
	if settings.GetMaxFileSizeMB() != MaxFileSizeMBLimit {
		t.Error("Max file size should be clamped to maximum 1024")
	}
}

func TestWorkers(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if w := settings.GetWorkers(); w != DefaultWorkers {
		t.Errorf("Expected default workers %d, got %d", DefaultWorkers, w)
	}

	settings.SetWorkers(4)
	if w := settings.GetWorkers(); w != 4 {
		t.Errorf("Expected workers 4, got %d", w)
	}

	settings.SetWorkers(-3)
	if settings.GetWorkers() != 0 {
		t.Error("Workers should be clamped to minimum 0")
	}

	settings.SetWorkers(500)
	if settings.GetWorkers() != MaxWorkersLimit {
		t.Error("Workers should be clamped to maximum 64")
	}
}

func TestBackend(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if b := settings.GetBackend(); b != DefaultBackend {
		t.Errorf("Expected default backend %s, got %s", DefaultBackend, b)
	}

	settings.SetBackend(BackendCLI)
	if b := settings.GetBackend(); b != BackendCLI {
		t.Errorf("Expected backend %s, got %s", BackendCLI, b)
	}

	// Unknown values fall back to the default
	settings.SetBackend(Backend("grpc"))
	if b := settings.GetBackend(); b != DefaultBackend {
		t.Errorf("Unknown backend should fall back to %s, got %s", DefaultBackend, b)
	}

	options := settings.GetBackendOptions()
	if len(options) != 2 || options[0] != BackendHTTP || options[1] != BackendCLI {
		t.Errorf("Unexpected backend options: %v", options)
	}
}

func TestRemoverStrings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	tests := []struct {
		name     string
		get      func() string
		set      func(string)
		fallback string
		custom   string
	}{
		{"server url", settings.GetServerURL, settings.SetServerURL, DefaultServerURL, "http://gpu-box:7000"},
		{"command", settings.GetCommand, settings.SetCommand, DefaultCommand, "/opt/rembg/bin/rembg"},
		{"model", settings.GetModel, settings.SetModel, DefaultModel, "isnet-general-use"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.get(); got != tt.fallback {
				t.Errorf("Expected default %s, got %s", tt.fallback, got)
			}
			tt.set(tt.custom)
			if got := tt.get(); got != tt.custom {
				t.Errorf("Expected %s, got %s", tt.custom, got)
			}
			tt.set("")
			if got := tt.get(); got != tt.fallback {
				t.Errorf("Empty value should default to %s, got %s", tt.fallback, got)
			}
		})
	}
}

func TestGalleryRefreshSeconds(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if s := settings.GetGalleryRefreshSeconds(); s != 0 {
		t.Errorf("Expected auto-refresh disabled by default, got %d", s)
	}

	settings.SetGalleryRefreshSeconds(30)
	if s := settings.GetGalleryRefreshSeconds(); s != 30 {
		t.Errorf("Expected 30, got %d", s)
	}

	settings.SetGalleryRefreshSeconds(99999)
	if settings.GetGalleryRefreshSeconds() != MaxGalleryRefreshLimit {
		t.Error("Refresh interval should be clamped to maximum 3600")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("id")
	if lang := settings.GetLanguage(); lang != "id" {
		t.Errorf("Expected language 'id', got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "id", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestRemoverOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetBackend(BackendCLI)
	settings.SetCommand("/usr/local/bin/rembg")
	settings.SetModel("silueta")

	opts := settings.RemoverOptions()
	if opts.Backend != "cli" || opts.Command != "/usr/local/bin/rembg" || opts.Model != "silueta" {
		t.Errorf("Unexpected remover options: %+v", opts)
	}
	if opts.ServerURL != DefaultServerURL {
		t.Errorf("Expected default server URL, got %s", opts.ServerURL)
	}
}
