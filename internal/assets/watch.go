package assets

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/bouncy/internal/logger"
)

// Watcher reports changes to a single file. It watches the parent directory
// so that editors which save by renaming a temp file are still seen.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	stopped chan struct{}
}

// Watch starts watching path.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		fs:      fs,
		changes: make(chan string, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.run()

	logger.Info("watching mesh file", zap.String("path", abs))
	return w, nil
}

// Changes delivers the watched path after it is written or replaced.
// Bursts of events collapse into one pending notification.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fs.Close()
	<-w.stopped
	return err
}

func (w *Watcher) run() {
	defer close(w.stopped)
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.changes <- w.path:
			default:
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("mesh watcher error", zap.Error(err))

		case <-w.done:
			return
		}
	}
}
