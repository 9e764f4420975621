// Package uploads persists item images to a flat content directory.
// Generated filenames are collision-resistant so concurrent uploads never
// contend for the same path; nothing ever deletes a stored file.
package uploads

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/campusreg/lostfound/internal/common"
	"github.com/campusreg/lostfound/internal/filex"
)

// MaxFileSize caps a single image at 5 MiB.
const MaxFileSize = 5 << 20

// fieldTag prefixes every generated filename, mirroring the form field the
// file arrived under.
const fieldTag = "image"

// Store is what the HTTP layer depends on; tests substitute a fake.
type Store interface {
	// Save validates and persists one uploaded file, returning the relative
	// path ("uploads/<name>") to record on the item row.
	Save(fh *multipart.FileHeader) (string, error)
}

// DiskStore writes uploads into a single local directory.
type DiskStore struct {
	dir     string // absolute storage directory
	relBase string // path prefix stored on item rows and used in URLs
}

// NewDiskStore ensures dir exists and returns a store over it. The relative
// base kept on item rows is the directory's own name, so the public
// /uploads/ route can mirror the storage layout.
func NewDiskStore(dir string) (*DiskStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &DiskStore{dir: abs, relBase: filepath.Base(abs)}, nil
}

func (s *DiskStore) Save(fh *multipart.FileHeader) (string, error) {

	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", common.ErrInvalidFileType
	}
	if fh.Size > MaxFileSize {
		return "", common.ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	name := generateName(fh.Filename)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	return path.Join(s.relBase, name), nil
}

// generateName builds "image-<unix-ms>-<random><ext>". Timestamp plus a
// random suffix is unique in practice without any coordination.
func generateName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s-%d-%d%s", fieldTag, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}
