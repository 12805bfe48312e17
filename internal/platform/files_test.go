package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "assets")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"photo.png", true},
		{"photo.JPG", true},
		{"photo.jpeg", true},
		{"scan.TIFF", true},
		{"scan.tif", true},
		{"icon.bmp", true},
		{"anim.gif", true},
		{"web.webp", true},
		{"notes.txt", false},
		{"archive.png.zip", false},
		{"png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImageFile(tt.name); got != tt.expected {
				t.Errorf("IsImageFile(%q) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestFilterImageFiles(t *testing.T) {
	paths := []string{"/a/one.png", "/a/two.txt", "/a/three.JPEG"}
	got := FilterImageFiles(paths)

	if len(got) != 2 || got[0] != "/a/one.png" || got[1] != "/a/three.JPEG" {
		t.Errorf("FilterImageFiles() = %v", got)
	}
}

func TestListImageFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_rembg.png", "a.jpg", "readme.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), DefaultFilePermissions); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.png"), DefaultDirPermissions); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	got, err := ListImageFiles(dir)
	if err != nil {
		t.Fatalf("ListImageFiles() error = %v", err)
	}

	expected := []string{filepath.Join(dir, "a.jpg"), filepath.Join(dir, "b_rembg.png")}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d files, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("File %d: expected %s, got %s", i, expected[i], got[i])
		}
	}
}

func TestListImageFiles_MissingDir(t *testing.T) {
	_, err := ListImageFiles(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
}

func TestOpenFolder_UnsupportedOS(t *testing.T) {
	err := openFolderOn("plan9", t.TempDir())
	if !errors.Is(err, ErrUnsupportedOS) {
		t.Fatalf("Expected ErrUnsupportedOS, got %v", err)
	}
	if !strings.Contains(err.Error(), "plan9") {
		t.Errorf("Error should name the OS, got: %v", err)
	}
}

func TestOpenFolder_MissingFolder(t *testing.T) {
	err := OpenFolder(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Expected error for missing folder, got nil")
	}
	if !strings.Contains(err.Error(), "folder does not exist") {
		t.Errorf("Error message should contain 'folder does not exist', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_MissingFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestCreateDirectoryIfNotExists_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets")
	if err := os.WriteFile(path, []byte("x"), DefaultFilePermissions); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := CreateDirectoryIfNotExists(path); err == nil {
		t.Error("Expected error when a file occupies the directory path")
	}
}
