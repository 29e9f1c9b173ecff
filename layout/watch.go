package layout

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNoTargets is returned when Watch is called without any file.
var ErrNoTargets = errors.New("layout: no files to watch")

// debounce suppresses the burst of events editors emit per save.
const debounce = 100 * time.Millisecond

// Watcher reports changes to a set of layout files so the embedding loop
// can reload them on its own tick. It owns one background goroutine; the
// navigation core itself stays single-threaded — apply reloads only from
// the simulation thread.
type Watcher struct {
	watcher *fsnotify.Watcher
	targets map[string]bool

	// Events receives the path of a changed layout file, debounced.
	Events chan string
	// Errors receives watcher failures.
	Errors chan error

	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the named layout files. It registers each file's
// directory (a direct file watch would be lost on rename-replace saves)
// and filters events down to the requested paths.
func Watch(paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ErrNoTargets
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, aerr := filepath.Abs(p)
		if aerr != nil {
			_ = fw.Close()
			return nil, aerr
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err = fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		targets: targets,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()

	return w, nil
}

// Close stops the watcher. Safe to call twice. The Events and Errors
// channels stop receiving but stay open; select on them rather than
// ranging to completion.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})

	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.targets[abs] {
				continue
			}
			now := time.Now()
			if t, seen := last[abs]; seen && now.Sub(t) < debounce {
				continue
			}
			last[abs] = now
			select {
			case w.Events <- abs:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}
