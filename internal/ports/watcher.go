package ports

// Watcher monitors a fixed set of files and reports changes to them.
// Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring paths. onChange is called with the absolute
	// path of each changed file and may be invoked from any goroutine.
	// Returns an error if a parent directory doesn't exist or permissions
	// are insufficient.
	Watch(paths []string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no onChange call is running and none will fire. Stop must not be
	// called from inside onChange. Safe to call multiple times.
	Stop() error
}
