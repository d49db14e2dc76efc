package storage

import (
	"context"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch rescans the catalog when dataset files change on disk, so
// external edits show up without restarting. Events are debounced;
// onChange (optional) runs after each successful rescan. Watch returns
// once the watcher is installed and stops when ctx is cancelled.
func (s *DatasetStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(500*time.Millisecond, func() {
					if err := s.LoadAll(); err != nil {
						log.Printf("store watcher: rescan failed: %v", err)
						return
					}
					if onChange != nil {
						onChange()
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("store watcher: error: %v", err)
			}
		}
	}()

	return nil
}
