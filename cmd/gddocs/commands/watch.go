package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/gddocs/internal/config"
	"git.home.luguber.info/inful/gddocs/internal/convert"
	"git.home.luguber.info/inful/gddocs/internal/errors"
	"git.home.luguber.info/inful/gddocs/internal/logfields"
)

// watchDebounce coalesces bursts of filesystem events into one rebuild.
const watchDebounce = 500 * time.Millisecond

// runWatch regenerates the documents whenever one of the input dumps
// changes, until interrupted.
func (g *GenerateCmd) runWatch(cfg *config.Config, opts convert.Options) error {
	inputs := make(map[string]struct{}, len(g.Inputs))
	dirs := make(map[string]struct{})
	for _, input := range g.Inputs {
		if input == "-" {
			return errors.ConfigError("--watch cannot be combined with stdin input")
		}
		abs, err := filepath.Abs(input)
		if err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve input path")
		}
		inputs[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create file watcher")
	}
	defer watcher.Close()

	// Watch the containing directories; editors replace files on save, which
	// drops watches registered on the files themselves.
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to watch input directory")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runGenerate(g.Inputs, cfg, opts); err != nil {
		slog.Error("Initial generation failed", logfields.Error(err))
	}
	slog.Info("Watching for changes", "inputs", g.Inputs)

	var debounce *time.Timer
	rebuild := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping watcher")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(event.Name)
			if _, tracked := inputs[abs]; !tracked {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Input changed", logfields.Input(event.Name), slog.String("op", event.Op.String()))
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case <-rebuild:
			if err := runGenerate(g.Inputs, cfg, opts); err != nil {
				slog.Error("Regeneration failed", logfields.Error(err))
			}
		}
	}
}
