package tui

import (
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/fsnotify/fsnotify"
)

// watcher wraps an fsnotify watcher pointed at the dataset file. Watching
// the parent directory instead of the file itself survives the
// rename-and-replace save strategy most editors use.
type watcher struct {
	fsw    *fsnotify.Watcher
	target string
}

// newWatcher starts watching the directory containing path.
func newWatcher(path string) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &watcher{fsw: fsw, target: abs}, nil
}

// next returns a command that blocks until the watched file changes. The
// command must be re-armed after every datasetChangedMsg.
func (w *watcher) next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.fsw.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != w.target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				// Editors emit bursts of events for a single save; settle
				// briefly and swallow the rest of the burst.
				time.Sleep(200 * time.Millisecond)
				drainEvents(w.fsw.Events)
				return datasetChangedMsg{}

			case err, ok := <-w.fsw.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err}
			}
		}
	}
}

// close stops the underlying fsnotify watcher.
func (w *watcher) close() {
	_ = w.fsw.Close()
}

func drainEvents(ch <-chan fsnotify.Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
