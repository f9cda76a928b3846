package app

import (
	"fmt"
	"path/filepath"

	"github.com/vk/fpgactl/internal/fsutil"
	projecthcl "github.com/vk/fpgactl/internal/hcl"
)

// FindProjectRoot walks upward from startDir to the nearest directory
// containing project.hcl and returns it as an absolute path.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if fsutil.Exists(filepath.Join(dir, projecthcl.ProjectFileName)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("cannot locate %s in %s or any parent directory", projecthcl.ProjectFileName, startDir)
		}
		dir = parent
	}
}
