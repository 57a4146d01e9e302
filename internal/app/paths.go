package app

import (
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem paths of the .wordmatch/ state directory
// that lives next to the result files.
type Paths struct {
	Root string // .wordmatch/

	RunDir    string // .wordmatch/run/
	WatchLock string // .wordmatch/run/watch.lock
}

// NewPaths constructs all resolved paths from the output directory.
func NewPaths(outputDir string) *Paths {
	root := filepath.Join(outputDir, ".wordmatch")
	return &Paths{
		Root: root,

		RunDir:    filepath.Join(root, "run"),
		WatchLock: filepath.Join(root, "run", "watch.lock"),
	}
}

// EnsureDirs creates all subdirectories under .wordmatch/. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.RunDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}
