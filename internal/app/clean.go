package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/fpgactl/internal/fsutil"
)

// Clean removes generated build outputs: the project-level build
// directory and every module's sim directory.
func (a *App) Clean(parent context.Context) error {
	ctx := a.ctx(parent)
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}

	dirs := []string{filepath.Join(a.cfg.Root, BuildDirName)}
	for _, entry := range a.reg.All() {
		dirs = append(dirs, filepath.Join(entry.Dir, "sim"))
	}

	removed, err := fsutil.RemoveDirs(dirs)
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		fmt.Fprintln(a.outW, "Nothing to clean.")
		return nil
	}
	for _, dir := range removed {
		fmt.Fprintf(a.outW, "Removed %s\n", dir)
	}
	return nil
}
