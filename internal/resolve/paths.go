package resolve

import (
	"context"
	"path/filepath"

	"github.com/vk/fpgactl/internal/ctxlog"
	"github.com/vk/fpgactl/internal/fsutil"
)

// resolvePaths joins relative path strings onto the module directory,
// producing absolute paths. A listed path that does not exist is warned
// about, not dropped: the result still includes it, so a user can inspect
// the generated command line and the downstream tool surfaces the hard
// failure.
func resolvePaths(ctx context.Context, base string, rels []string) []string {
	if len(rels) == 0 {
		return nil
	}
	logger := ctxlog.FromContext(ctx)
	resolved := make([]string, 0, len(rels))
	for _, rel := range rels {
		full := filepath.Join(base, rel)
		if !fsutil.Exists(full) {
			logger.Warn("Listed path does not exist.", "path", full)
		}
		resolved = append(resolved, full)
	}
	return resolved
}
