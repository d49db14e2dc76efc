package service

import (
	"context"
	"testing"
	"time"
)

func TestSceneBuildGuard_RejectsConcurrentBuild(t *testing.T) {
	var g sceneBuildGuard

	if !g.TryLock("scene-1") {
		t.Fatal("first lock should succeed")
	}
	if g.TryLock("scene-1") {
		t.Fatal("second lock on same scene should fail")
	}
	if !g.TryLock("scene-2") {
		t.Fatal("lock on a different scene should succeed")
	}

	g.Unlock("scene-1")
	if !g.TryLock("scene-1") {
		t.Fatal("lock after unlock should succeed")
	}
	g.Unlock("scene-1")
	g.Unlock("scene-2")
}

func TestSceneBuildGuard_WaitAll(t *testing.T) {
	var g sceneBuildGuard
	g.TryLock("scene-1")

	released := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		g.Unlock("scene-1")
		close(released)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	g.WaitAll(ctx)

	select {
	case <-released:
	default:
		t.Fatal("WaitAll returned before the build finished")
	}
}

func TestSceneBuildGuard_WaitAllHonorsContext(t *testing.T) {
	var g sceneBuildGuard
	g.TryLock("stuck")
	defer g.Unlock("stuck")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	g.WaitAll(ctx)
	if time.Since(start) > time.Second {
		t.Fatal("WaitAll ignored context cancellation")
	}
}
