package service

import (
	"context"
	"sync"
)

// ─────────────────────────────────────────────────────────────
// sceneBuildGuard — single build pipeline per scene
// ─────────────────────────────────────────────────────────────

// sceneBuildGuard ensures only one dataset-build pipeline runs against
// a given scene at a time. Builds are short; a second placement action
// while one is running is rejected, not queued.
type sceneBuildGuard struct {
	mu       sync.Mutex
	building map[string]struct{}
	wg       sync.WaitGroup
}

// TryLock attempts to mark sceneID as building. Returns true if successful.
// Returns false if a build for the scene is already running.
func (g *sceneBuildGuard) TryLock(sceneID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.building == nil {
		g.building = make(map[string]struct{})
	}
	if _, ok := g.building[sceneID]; ok {
		return false // already building
	}
	g.building[sceneID] = struct{}{}
	g.wg.Add(1)
	return true
}

// Unlock marks the scene as idle. Must be called after TryLock returns true.
func (g *sceneBuildGuard) Unlock(sceneID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.building, sceneID)
	g.wg.Done()
}

// WaitAll blocks until all running builds complete or ctx is cancelled.
func (g *sceneBuildGuard) WaitAll(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}
