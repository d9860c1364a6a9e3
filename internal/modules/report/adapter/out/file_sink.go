package out

import (
	"os"
	"path/filepath"
)

// FileSink writes rendered reports to disk.
type FileSink struct{}

func NewFileSink() FileSink {
	return FileSink{}
}

func (FileSink) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
