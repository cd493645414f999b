package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteBibFile writes content to path, replacing any existing file and
// creating parent directories as needed.
func WriteBibFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
