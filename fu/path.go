package fu

import (
	"path/filepath"

	"go-ml.dev/pkg/iokit"
)

// PlotPath resolves a relative artifact name into the user cache dir.
func PlotPath(s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	return iokit.CacheFile(filepath.Join("harboost", "Plots", s))
}
