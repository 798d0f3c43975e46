// Package interaction tracks views and likes for one open project view.
//
// A Controller has two independent tracks. The view track counts a view the
// first time the controller is activated and never again. The like track
// accepts at most one like: the displayed count is bumped and the LikeFlag
// written before the stats call is made in the background. A failed stats
// call is not rolled back.
package interaction

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"pixelnex.dev/internal/models"
)

// StatsAPI is the subset of the stats store a controller needs
type StatsAPI interface {
	IncrementView(ctx context.Context, id string) (int, error)
	IncrementLike(ctx context.Context, id string) (bool, error)
	GetStats(ctx context.Context, id string) (models.Stats, error)
}

// FlagStore persists boolean flags for a single client
type FlagStore interface {
	Has(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string) error
}

// LikeKey is the flag key recording that projectID was liked
func LikeKey(projectID string) string {
	return "liked_" + projectID
}

type ViewState int

const (
	ViewUncounted ViewState = iota
	ViewCounted
)

type LikeState int

const (
	LikeUnliked LikeState = iota
	LikeLiked
)

// Snapshot is the displayed state of a controller
type Snapshot struct {
	ProjectID   string
	Views       int
	Likes       int
	View        ViewState
	Like        LikeState
	LikePending bool
}

// Liked reports whether the like track is in the liked state
func (s Snapshot) Liked() bool {
	return s.Like == LikeLiked
}

// Controller holds the interaction state for one activation of a project view
type Controller struct {
	projectID string
	stats     StatsAPI
	flags     FlagStore
	logger    *zap.Logger

	mu       sync.Mutex
	view     ViewState
	like     LikeState
	inFlight bool
	closed   bool
	views    int
	likes    int

	background conc.WaitGroup
}

// New creates a controller seeded with the project's stats snapshot
func New(project models.Project, stats StatsAPI, flags FlagStore, logger *zap.Logger) *Controller {
	initial := project.InitialStats()
	return &Controller{
		projectID: project.ID,
		stats:     stats,
		flags:     flags,
		logger:    logger.With(zap.String("project_id", project.ID)),
		views:     initial.Views,
		likes:     initial.Likes,
	}
}

// Activate runs when the view opens. The first call counts a view; later
// calls only refresh the displayed counters.
func (c *Controller) Activate(ctx context.Context) (Snapshot, error) {
	liked, err := c.flags.Has(ctx, LikeKey(c.projectID))
	if err != nil {
		c.logger.Warn("Failed to read like flag", zap.Error(err))
	}

	c.mu.Lock()
	if liked {
		c.like = LikeLiked
	}
	countView := c.view == ViewUncounted
	if countView {
		c.view = ViewCounted
	}
	c.mu.Unlock()

	if countView {
		views, err := c.stats.IncrementView(ctx, c.projectID)
		if err != nil {
			// nothing was stored, so the next activation counts again
			c.mu.Lock()
			c.view = ViewUncounted
			c.mu.Unlock()
			return c.Snapshot(), err
		}
		c.mu.Lock()
		if !c.closed {
			c.views = views
		}
		c.mu.Unlock()
	}

	stats, err := c.stats.GetStats(ctx, c.projectID)
	if err != nil {
		return c.Snapshot(), err
	}

	c.mu.Lock()
	if !c.closed && !c.inFlight {
		c.likes = stats.Likes
	}
	c.mu.Unlock()

	return c.Snapshot(), nil
}

// Like records a like. It returns false when the like was ignored because
// the project is already liked, a like is in flight, or the view is closed.
func (c *Controller) Like(ctx context.Context) (Snapshot, bool) {
	c.mu.Lock()
	if c.closed || c.like == LikeLiked || c.inFlight {
		c.mu.Unlock()
		return c.Snapshot(), false
	}
	c.inFlight = true
	c.likes++
	c.like = LikeLiked
	c.mu.Unlock()

	if err := c.flags.Set(ctx, LikeKey(c.projectID)); err != nil {
		c.logger.Warn("Failed to persist like flag", zap.Error(err))
	}

	callCtx := context.WithoutCancel(ctx)
	c.background.Go(func() {
		ok, err := c.stats.IncrementLike(callCtx, c.projectID)
		switch {
		case err != nil:
			c.logger.Debug("Like not recorded", zap.Error(err))
		case !ok:
			c.logger.Debug("Like for project without stats")
		}

		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	})

	return c.Snapshot(), true
}

// Snapshot returns the displayed state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		ProjectID:   c.projectID,
		Views:       c.views,
		Likes:       c.likes,
		View:        c.view,
		Like:        c.like,
		LikePending: c.inFlight,
	}
}

// Close tears the view down. Results of calls still running are discarded
// and Close does not wait for them.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// Wait blocks until background like calls finish
func (c *Controller) Wait() {
	c.background.Wait()
}
