// Package output writes conversion results so that readers never observe a
// truncated file.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// File is one output document.
type File struct {
	Path    string
	Content []byte
}

type staged struct {
	temp string
	dest string
}

// WriteFiles writes every file to a temp file next to its destination and
// renames them into place only once all of them were written. If staging
// fails, temps are removed and no destination is touched.
func WriteFiles(files []File) error {
	var pending []staged

	for _, file := range files {
		temp, err := stage(file)
		if err != nil {
			discard(pending)

			return err
		}

		pending = append(pending, staged{temp: temp, dest: file.Path})
	}

	for i, s := range pending {
		err := os.Rename(s.temp, s.dest)
		if err != nil {
			discard(pending[i:])

			return fmt.Errorf("moving %s into place: %w", s.dest, err)
		}
	}

	return nil
}

// WriteFile writes a single file the same way as WriteFiles.
func WriteFile(path string, content []byte) error {
	return WriteFiles([]File{{Path: path, Content: content}})
}

func stage(file File) (string, error) {
	dir := filepath.Dir(file.Path)

	// Create output directory if it doesn't exist
	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(file.Path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file for %s: %w", file.Path, err)
	}

	_, werr := tmp.Write(file.Content)
	cerr := tmp.Close()

	err = errors.Join(werr, cerr)
	if err == nil {
		err = os.Chmod(tmp.Name(), filePerm)
	}

	if err != nil {
		_ = os.Remove(tmp.Name())

		return "", fmt.Errorf("writing file %s: %w", file.Path, err)
	}

	return tmp.Name(), nil
}

func discard(pending []staged) {
	for _, s := range pending {
		_ = os.Remove(s.temp)
	}
}
