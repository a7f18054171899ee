package processor

import (
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// tempPath returns a unique path under the OS temp dir. Uniqueness comes
// from a fresh UUID so concurrent uploads never collide.
func tempPath(ext string) string {
	return filepath.Join(os.TempDir(), "parkmedia_"+uuid.NewString()+ext)
}

func writeTempFile(data []byte, ext string) (string, error) {
	path := tempPath(ext)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// removeTemp runs on every exit path; its errors are logged, never
// propagated, so cleanup can never mask the original failure.
func removeTemp(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove temp file %q: %v", path, err)
	}
}
