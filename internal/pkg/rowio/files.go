// Package rowio reads and writes rows as JSON lines on the local filesystem.
// It backs the example pipelines; the rowflow operators themselves never
// touch files.
package rowio

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
)

// FileInfo provides information about a file
type FileInfo struct {
	Name string // file path
	Size int64  // file size in bytes
}

func walkDir(dir string) ([]FileInfo, error) {
	files := make([]FileInfo, 0)
	err := filepath.Walk(dir, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if f.IsDir() {
			return nil
		}
		files = append(files, FileInfo{
			Name: path,
			Size: f.Size(),
		})
		return nil
	})
	return files, err
}

// ListFiles expands a glob into the files it matches. Matched directories
// are walked recursively, and a directory that cannot be read fails the
// listing. Files are returned sorted by name.
func ListFiles(pathGlob string) ([]FileInfo, error) {
	globbedFiles, err := filepath.Glob(pathGlob)
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0)
	for _, fileName := range globbedFiles {
		fInfo, err := os.Stat(fileName)
		if err != nil {
			log.Error(err)
			continue
		}
		if !fInfo.IsDir() {
			files = append(files, FileInfo{
				Name: fileName,
				Size: fInfo.Size(),
			})
		} else {
			walked, err := walkDir(fileName)
			if err != nil {
				return nil, err
			}
			files = append(files, walked...)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// OpenReader opens a file for reading
func OpenReader(filePath string) (io.ReadCloser, error) {
	return os.Open(filePath)
}

// OpenWriter opens a file for writing, creating any missing parent
// directories. An existing file is truncated.
func OpenWriter(filePath string) (io.WriteCloser, error) {
	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
}
