package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-parses a camera options file whenever it changes on disk and
// delivers the result on Options/Errors. Events within 100ms of the
// previous one for the same file are dropped, since editors commonly fire
// several writes per save.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Options chan Options
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the options file at path. The caller receives
// re-parsed options on the Options channel and parse/watch failures on
// Errors, and must Close the watcher when done.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(path); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    path,
		Options: make(chan Options, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops watching. The Options and Errors channels stop receiving but
// stay open, so concurrent receives simply block instead of reading stale
// zero values.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case <-w.closeCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			opts, err := Load(w.path)
			if err != nil {
				select {
				case w.Errors <- err:
				default:
				}
				continue
			}
			select {
			case w.Options <- opts:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}
