// Package app wires together adapters and domain logic.
// It runs a single match (Run) and the long-running watch loop (Watch).
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	fsw "github.com/corey/wordmatch/internal/adapters/fsnotify"
	"github.com/corey/wordmatch/internal/adapters/resultfile"
	"github.com/corey/wordmatch/internal/adapters/runlock"
	"github.com/corey/wordmatch/internal/config"
	"github.com/corey/wordmatch/internal/domain/matcher"
	"github.com/corey/wordmatch/internal/logging"
	"github.com/corey/wordmatch/internal/ports"
)

// Settings are the resolved inputs of one match run.
type Settings struct {
	InputPath      string
	VocabPath      string
	IgnoreCase     bool
	Output         bool   // write a result file
	OutputDir      string // where result files go
	DetectEncoding bool
}

// SettingsFromConfig fills Settings from configured defaults.
func SettingsFromConfig(cfg *config.Config, inputPath, vocabPath string) Settings {
	return Settings{
		InputPath:      inputPath,
		VocabPath:      vocabPath,
		IgnoreCase:     cfg.Match.IgnoreCase,
		Output:         cfg.Match.Output,
		OutputDir:      cfg.Match.OutputDir,
		DetectEncoding: cfg.Match.DetectEncoding,
	}
}

// Report describes a finished run.
type Report struct {
	RunID      string
	InputPath  string
	VocabPath  string
	VocabSize  int
	Result     *ports.MatchResult
	OutputPath string // empty when output is disabled
	Elapsed    time.Duration
}

// App is the top-level container wiring all components together.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// Now is the clock used for result file names (nil = time.Now).
	Now func() time.Time
	// NewSink builds the result sink for an output directory.
	NewSink func(dir string) ports.ResultSink
	// NewWatcher builds the file watcher for watch mode.
	NewWatcher func() (ports.Watcher, error)
}

// New creates an App with the default adapters.
func New(cfg *config.Config, logger *slog.Logger) *App {
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	a := &App{Config: cfg, Logger: logger}
	a.NewSink = func(dir string) ports.ResultSink {
		return &resultfile.Writer{Dir: dir, Now: a.Now}
	}
	a.NewWatcher = func() (ports.Watcher, error) {
		w, err := fsw.NewWatcher()
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return a
}

// Run loads the vocabulary, matches the input once and, when enabled, writes
// the result file.
func (a *App) Run(s Settings) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.NewString(), InputPath: s.InputPath, VocabPath: s.VocabPath}
	log := a.Logger.With("run_id", report.RunID)

	m, err := matcher.New(s.VocabPath, matcher.Options{
		IgnoreCase:     s.IgnoreCase,
		DetectEncoding: s.DetectEncoding,
	})
	if err != nil {
		return nil, err
	}
	report.VocabSize = m.Vocabulary().Len()
	log.Debug("vocabulary loaded", "path", s.VocabPath, "terms", report.VocabSize, "ignore_case", s.IgnoreCase)

	result, err := m.Match(s.InputPath)
	if err != nil {
		return nil, err
	}
	report.Result = result

	if s.Output {
		path, err := a.NewSink(s.OutputDir).Write(result)
		if err != nil {
			return nil, err
		}
		report.OutputPath = path
		log.Debug("result file written", "path", path)
	}

	report.Elapsed = time.Since(start)
	log.Info("match finished",
		"input", s.InputPath,
		"vocab", s.VocabPath,
		"matched", result.Len(),
		"elapsed", report.Elapsed.Round(time.Microsecond))
	return report, nil
}

// Watch runs once, then reruns whenever the input or vocabulary file
// changes, until ctx is done. Every run's outcome goes to onReport; a failed
// run does not stop the loop. Only one watcher may use an output directory
// at a time.
func (a *App) Watch(ctx context.Context, s Settings, onReport func(*Report, error)) error {
	paths := NewPaths(s.OutputDir)
	if err := paths.EnsureDirs(); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	lock := runlock.New(paths.WatchLock)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			a.Logger.Warn("failed to release watch lock", "lock", lock.Path(), "error", err)
		}
	}()

	w, err := a.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	// One pending slot coalesces bursts of events into a single rerun.
	changes := make(chan string, 1)
	if err := w.Watch([]string{s.InputPath, s.VocabPath}, func(path string) {
		select {
		case changes <- path:
		default:
		}
	}); err != nil {
		return fmt.Errorf("watch files: %w", err)
	}

	a.Logger.Info("watching for changes",
		"input", s.InputPath,
		"vocab", s.VocabPath,
		"lock", lock.Path(),
		"interval", a.Config.WatchInterval())

	limiter := rate.NewLimiter(rate.Every(a.Config.WatchInterval()), a.Config.Watch.Burst)
	runOnce := func() {
		report, err := a.Run(s)
		if err != nil {
			a.Logger.Error("match run failed", "error", err)
		}
		if onReport != nil {
			onReport(report, err)
		}
	}

	limiter.Allow()
	runOnce()

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-changes:
			a.Logger.Debug("change detected", "path", path)
			if err := limiter.Wait(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("throttle rerun: %w", err)
			}
			// Changes that arrived while throttled are covered by this run.
			select {
			case <-changes:
			default:
			}
			runOnce()
		}
	}
}

// IsLockHeld reports whether err means another watcher owns the output directory.
func IsLockHeld(err error) bool {
	return errors.Is(err, runlock.ErrHeld)
}
