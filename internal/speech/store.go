package speech

import (
	"os"
	"path/filepath"
)

// fileStore saves audio bytes under a local directory.
type fileStore struct {
	dir string
}

func newFileStore(dir string) *fileStore {
	if dir == "" {
		dir = "static/uploads"
	}
	return &fileStore{dir: dir}
}

// Save writes data to {dir}/{fileName} and returns the disk path.
func (fs *fileStore) Save(data []byte, fileName string) (string, error) {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(fs.dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
