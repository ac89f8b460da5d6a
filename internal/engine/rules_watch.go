package engine

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// WatchRulesFile loads rulesPath once and then reloads it on every
// filesystem write/create event (§C.3). Reload is atomic: LoadRules
// leaves the previously installed rules live if the new document fails
// to parse, so a bad edit never blocks traffic with the old rules.
//
// The returned stop function stops the watch goroutine; it does not
// revert to having no rules loaded.
func (e *Engine) WatchRulesFile(rulesPath string) (stop func(), err error) {
	data, err := os.ReadFile(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("engine: read rules file %s: %w", rulesPath, err)
	}
	if err := e.LoadRules(data); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("engine: watch rules file %s: %w", rulesPath, err)
	}
	if err := watcher.Add(rulesPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("engine: watch rules file %s: %w", rulesPath, err)
	}

	done := make(chan struct{})
	go e.watchRulesLoop(watcher, rulesPath, done)

	return func() { close(done) }, nil
}

func (e *Engine) watchRulesLoop(watcher *fsnotify.Watcher, rulesPath string, done chan struct{}) {
	defer watcher.Close()
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			data, err := os.ReadFile(rulesPath)
			if err != nil {
				continue
			}
			_ = e.LoadRules(data) // a parse failure here keeps the prior rules live
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		case <-done:
			return
		}
	}
}
