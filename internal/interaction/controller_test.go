package interaction

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"pixelnex.dev/internal/models"
)

type fakeStats struct {
	mu         sync.Mutex
	stats      map[string]*models.Stats
	viewCalls  int
	likeCalls  int
	likeErr    error
	likeGate   chan struct{}
	viewResult func() (int, error)
}

func newFakeStats(id string, views, likes int) *fakeStats {
	return &fakeStats{stats: map[string]*models.Stats{id: {Views: views, Likes: likes}}}
}

func (f *fakeStats) IncrementView(_ context.Context, id string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.viewCalls++
	if f.viewResult != nil {
		return f.viewResult()
	}
	s, ok := f.stats[id]
	if !ok {
		return 0, nil
	}
	s.Views++
	return s.Views, nil
}

func (f *fakeStats) IncrementLike(_ context.Context, id string) (bool, error) {
	if f.likeGate != nil {
		<-f.likeGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.likeCalls++
	if f.likeErr != nil {
		return false, f.likeErr
	}
	s, ok := f.stats[id]
	if !ok {
		return false, nil
	}
	s.Likes++
	return true, nil
}

func (f *fakeStats) GetStats(_ context.Context, id string) (models.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.stats[id]; ok {
		return *s, nil
	}
	return models.Stats{}, nil
}

func (f *fakeStats) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.viewCalls, f.likeCalls
}

type fakeFlags struct {
	mu     sync.Mutex
	flags  map[string]bool
	getErr error
	setErr error
}

func newFakeFlags() *fakeFlags {
	return &fakeFlags{flags: make(map[string]bool)}
}

func (f *fakeFlags) Has(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flags[key], f.getErr
}

func (f *fakeFlags) Set(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.flags[key] = true
	return nil
}

func project(id string, views, likes int) models.Project {
	return models.Project{ID: id, Stats: &models.Stats{Views: views, Likes: likes}}
}

func TestActivateCountsViewOnce(t *testing.T) {
	stats := newFakeStats("p1", 10, 4)
	c := New(project("p1", 10, 4), stats, newFakeFlags(), zap.NewNop())

	snap, err := c.Activate(context.Background())
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if snap.Views != 11 || snap.View != ViewCounted {
		t.Fatalf("after first activation: %+v", snap)
	}

	snap, err = c.Activate(context.Background())
	if err != nil {
		t.Fatalf("second Activate: %v", err)
	}
	if snap.Views != 11 {
		t.Fatalf("re-render changed views: %+v", snap)
	}
	if views, _ := stats.calls(); views != 1 {
		t.Fatalf("IncrementView calls = %d, want 1", views)
	}
}

func TestLikeTwiceIncrementsOnce(t *testing.T) {
	stats := newFakeStats("p1", 0, 7)
	flags := newFakeFlags()
	c := New(project("p1", 0, 7), stats, flags, zap.NewNop())
	ctx := context.Background()

	if _, err := c.Activate(ctx); err != nil {
		t.Fatal(err)
	}

	snap, accepted := c.Like(ctx)
	if !accepted || snap.Likes != 8 || !snap.Liked() {
		t.Fatalf("first like: accepted=%v snap=%+v", accepted, snap)
	}
	snap, accepted = c.Like(ctx)
	if accepted || snap.Likes != 8 {
		t.Fatalf("second like should be ignored: accepted=%v snap=%+v", accepted, snap)
	}

	c.Wait()
	if _, likes := stats.calls(); likes != 1 {
		t.Fatalf("IncrementLike calls = %d, want 1", likes)
	}
	if !flags.flags[LikeKey("p1")] {
		t.Fatal("like flag not persisted")
	}
}

func TestLikeWhileInFlightIsIgnored(t *testing.T) {
	stats := newFakeStats("p1", 0, 0)
	stats.likeGate = make(chan struct{})
	c := New(project("p1", 0, 0), stats, newFakeFlags(), zap.NewNop())

	if _, ok := c.Like(context.Background()); !ok {
		t.Fatal("first like rejected")
	}
	if snap := c.Snapshot(); !snap.LikePending {
		t.Fatal("expected like to be pending")
	}
	if _, ok := c.Like(context.Background()); ok {
		t.Fatal("like while in flight should be ignored")
	}

	close(stats.likeGate)
	c.Wait()
	if snap := c.Snapshot(); snap.LikePending || snap.Likes != 1 {
		t.Fatalf("after completion: %+v", snap)
	}
}

func TestExistingFlagStartsLiked(t *testing.T) {
	stats := newFakeStats("p1", 5, 42)
	flags := newFakeFlags()
	flags.flags[LikeKey("p1")] = true
	c := New(project("p1", 5, 40), stats, flags, zap.NewNop())

	snap, err := c.Activate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !snap.Liked() || snap.Likes != 42 {
		t.Fatalf("expected liked with store count: %+v", snap)
	}
	if _, ok := c.Like(context.Background()); ok {
		t.Fatal("like should be refused for an already liked project")
	}
	c.Wait()
	if _, likes := stats.calls(); likes != 0 {
		t.Fatalf("IncrementLike calls = %d", likes)
	}
}

func TestFailedLikeIsNotRolledBack(t *testing.T) {
	stats := newFakeStats("p1", 0, 3)
	stats.likeErr = errors.New("unreachable")
	c := New(project("p1", 0, 3), stats, newFakeFlags(), zap.NewNop())

	c.Like(context.Background())
	c.Wait()

	snap := c.Snapshot()
	if snap.Likes != 4 || !snap.Liked() || snap.LikePending {
		t.Fatalf("optimistic like should stand: %+v", snap)
	}
}

func TestFlagStoreFailuresAreAbsorbed(t *testing.T) {
	stats := newFakeStats("p1", 0, 0)
	flags := newFakeFlags()
	flags.getErr = errors.New("read failed")
	flags.setErr = errors.New("write failed")
	c := New(project("p1", 0, 0), stats, flags, zap.NewNop())

	snap, err := c.Activate(context.Background())
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if snap.Liked() {
		t.Fatal("unreadable flag should start unliked")
	}
	if _, ok := c.Like(context.Background()); !ok {
		t.Fatal("like should still be accepted")
	}
	c.Wait()
}

func TestClosedControllerDiscardsResults(t *testing.T) {
	stats := newFakeStats("p1", 10, 0)
	c := New(project("p1", 10, 0), stats, newFakeFlags(), zap.NewNop())
	stats.viewResult = func() (int, error) {
		c.Close()
		return 99, nil
	}

	snap, err := c.Activate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if snap.Views != 10 {
		t.Fatalf("late view result should be discarded, got %d", snap.Views)
	}
	if _, ok := c.Like(context.Background()); ok {
		t.Fatal("like after close should be ignored")
	}
}

func TestActivatePropagatesCancellation(t *testing.T) {
	stats := newFakeStats("p1", 0, 0)
	stats.viewResult = func() (int, error) { return 0, context.Canceled }
	c := New(project("p1", 0, 0), stats, newFakeFlags(), zap.NewNop())

	if _, err := c.Activate(context.Background()); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestFailedViewIsCountedOnRetry(t *testing.T) {
	stats := newFakeStats("p1", 10, 0)
	stats.viewResult = func() (int, error) { return 0, context.DeadlineExceeded }
	c := New(project("p1", 10, 0), stats, newFakeFlags(), zap.NewNop())

	snap, err := c.Activate(context.Background())
	if err == nil {
		t.Fatal("expected view error")
	}
	if snap.View != ViewUncounted || snap.Views != 10 {
		t.Fatalf("failed view should stay uncounted: %+v", snap)
	}

	stats.mu.Lock()
	stats.viewResult = nil
	stats.mu.Unlock()

	snap, err = c.Activate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if snap.View != ViewCounted || snap.Views != 11 {
		t.Fatalf("retry should count the view: %+v", snap)
	}
	if views, _ := stats.calls(); views != 2 {
		t.Fatalf("IncrementView calls = %d, want 2", views)
	}
}
