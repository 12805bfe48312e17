// Package gallery lists processed images in the output directory and
// produces fixed-size previews of them.
package gallery

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ytget/bg-remover/internal/platform"
)

// PreviewSize is the edge length of gallery previews in pixels
const PreviewSize = 250

// Entry is one image file in the output directory
type Entry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// List rescans dir and returns its image files sorted by name.
// Nothing is cached; every call reflects the directory as it is now.
func List(dir string) ([]Entry, error) {
	paths, err := platform.ListImageFiles(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			// removed between the directory read and the stat
			continue
		}
		entries = append(entries, Entry{
			Name:    filepath.Base(p),
			Path:    p,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Names returns the file names of entries
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// LoadPreview decodes the image at path and scales it to size x size with Lanczos3
func LoadPreview(path string, size uint) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return resize.Resize(size, size, img, resize.Lanczos3), nil
}
