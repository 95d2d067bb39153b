// Package storage persists uploaded files (posters, actor photos) to local
// disk and reports their public URLs. Catalog logic never calls this
// directly; administrative flows upload assets first and then attach the
// returned URLs to a movie or actor via the normal update path.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFolder receives uploads that do not specify a folder.
const DefaultFolder = "default"

// SavedFile describes one stored upload.
type SavedFile struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// FileStore writes uploads below Root and serves them below PublicPath
// (e.g. Root="./uploads", PublicPath="/uploads").
type FileStore struct {
	Root       string
	PublicPath string
}

// NewFileStore constructs a FileStore rooted at root, publicly reachable
// under publicPath.
func NewFileStore(root, publicPath string) *FileStore {
	if publicPath == "" {
		publicPath = "/uploads"
	}
	return &FileStore{Root: root, PublicPath: strings.TrimRight(publicPath, "/")}
}

// SaveFiles stores every upload under folder (created on demand) and
// returns a SavedFile per input, in order. Filenames are sanitized to their
// base name so client-supplied paths cannot escape the upload root; a file
// with the same name overwrites the previous one, matching how poster
// re-uploads are expected to behave.
func (s *FileStore) SaveFiles(files []*multipart.FileHeader, folder string) ([]SavedFile, error) {
	if folder == "" {
		folder = DefaultFolder
	}
	folder = filepath.Base(folder) // no nested or relative folders

	dir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", dir, err)
	}

	out := make([]SavedFile, 0, len(files))
	for _, fh := range files {
		name := filepath.Base(fh.Filename)
		if name == "." || name == string(filepath.Separator) || name == "" {
			return nil, fmt.Errorf("storage: invalid filename %q", fh.Filename)
		}
		if err := s.saveOne(fh, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		out = append(out, SavedFile{
			URL:  s.PublicPath + "/" + folder + "/" + name,
			Name: name,
		})
	}
	return out, nil
}

func (s *FileStore) saveOne(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("storage: open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", dst, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, src); err != nil {
		return fmt.Errorf("storage: write %s: %w", dst, err)
	}
	return nil
}
