package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"pixelnex.dev/internal/apperrors"
	"pixelnex.dev/internal/interaction"
	"pixelnex.dev/internal/models"
	"pixelnex.dev/internal/storage/likes"
)

// Session limits used when no option overrides them
const (
	DefaultSessionTTL  = 30 * time.Minute
	DefaultMaxSessions = 10000
)

type sessionKey struct {
	clientID  string
	projectID string
}

type session struct {
	ctrl    *interaction.Controller
	touched time.Time
}

// InteractionService keeps one interaction controller per client and open
// project view. Views idle for longer than the TTL are torn down, and once
// the table is full the least recently used view is evicted.
type InteractionService struct {
	projects *ProjectService
	stats    interaction.StatsAPI
	flags    likes.Store
	logger   *zap.Logger

	ttl         time.Duration
	maxSessions int
	now         func() time.Time

	mu       sync.Mutex
	sessions map[sessionKey]*session
}

// InteractionOption tunes an InteractionService
type InteractionOption func(*InteractionService)

// WithSessionTTL sets how long an untouched view stays open
func WithSessionTTL(ttl time.Duration) InteractionOption {
	return func(s *InteractionService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithMaxSessions caps the number of open views across all clients
func WithMaxSessions(n int) InteractionOption {
	return func(s *InteractionService) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(ps *ProjectService, stats interaction.StatsAPI, flags likes.Store, logger *zap.Logger, opts ...InteractionOption) *InteractionService {
	s := &InteractionService{
		projects:    ps,
		stats:       stats,
		flags:       flags,
		logger:      logger,
		ttl:         DefaultSessionTTL,
		maxSessions: DefaultMaxSessions,
		now:         time.Now,
		sessions:    make(map[sessionKey]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open activates a fresh view of a project for a client, counting one view.
// Any previous view of the same project by that client is torn down.
func (s *InteractionService) Open(ctx context.Context, clientID, projectID string) (*models.InteractionState, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}

	ctrl := interaction.New(*project, s.stats, likes.ForClient(s.flags, clientID), s.logger)
	key := sessionKey{clientID: clientID, projectID: projectID}

	s.mu.Lock()
	if prev, ok := s.sessions[key]; ok {
		prev.ctrl.Close()
		delete(s.sessions, key)
	}
	now := s.now()
	s.sweepLocked(now)
	for len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}
	s.sessions[key] = &session{ctrl: ctrl, touched: now}
	s.mu.Unlock()

	snap, err := ctrl.Activate(ctx)
	if err != nil {
		return nil, apperrors.FromContext(err)
	}
	return toState(snap), nil
}

// Like likes a project in the client's open view
func (s *InteractionService) Like(ctx context.Context, clientID, projectID string) (*models.InteractionState, bool, error) {
	ctrl, err := s.session(clientID, projectID)
	if err != nil {
		return nil, false, err
	}
	snap, accepted := ctrl.Like(ctx)
	return toState(snap), accepted, nil
}

// State returns the displayed state of the client's open view
func (s *InteractionService) State(clientID, projectID string) (*models.InteractionState, error) {
	ctrl, err := s.session(clientID, projectID)
	if err != nil {
		return nil, err
	}
	return toState(ctrl.Snapshot()), nil
}

// Close tears down the client's view. Closing a view that is not open is a no-op.
func (s *InteractionService) Close(clientID, projectID string) {
	key := sessionKey{clientID: clientID, projectID: projectID}

	s.mu.Lock()
	sess, ok := s.sessions[key]
	delete(s.sessions, key)
	s.mu.Unlock()

	if ok {
		sess.ctrl.Close()
	}
}

// Sweep tears down every view idle for longer than the TTL and returns how
// many were removed
func (s *InteractionService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

// Janitor sweeps expired views every interval until ctx is done
func (s *InteractionService) Janitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Debug("Expired project views closed", zap.Int("count", n))
			}
		}
	}
}

// Len returns the number of open views
func (s *InteractionService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *InteractionService) sweepLocked(now time.Time) int {
	removed := 0
	for key, sess := range s.sessions {
		if now.Sub(sess.touched) > s.ttl {
			sess.ctrl.Close()
			delete(s.sessions, key)
			removed++
		}
	}
	return removed
}

func (s *InteractionService) evictOldestLocked() {
	var (
		oldestKey sessionKey
		oldest    *session
	)
	for key, sess := range s.sessions {
		if oldest == nil || sess.touched.Before(oldest.touched) {
			oldestKey, oldest = key, sess
		}
	}
	if oldest == nil {
		return
	}
	oldest.ctrl.Close()
	delete(s.sessions, oldestKey)
}

// Shutdown closes every view and waits for background like calls
func (s *InteractionService) Shutdown() {
	s.mu.Lock()
	open := make([]*interaction.Controller, 0, len(s.sessions))
	for key, sess := range s.sessions {
		open = append(open, sess.ctrl)
		delete(s.sessions, key)
	}
	s.mu.Unlock()

	for _, ctrl := range open {
		ctrl.Close()
		ctrl.Wait()
	}
}

func (s *InteractionService) session(clientID, projectID string) (*interaction.Controller, error) {
	if _, err := s.projects.GetByID(projectID); err != nil {
		return nil, err
	}

	key := sessionKey{clientID: clientID, projectID: projectID}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if ok && now.Sub(sess.touched) > s.ttl {
		sess.ctrl.Close()
		delete(s.sessions, key)
		ok = false
	}
	if !ok {
		return nil, apperrors.Conflict("project view not open: %s", projectID)
	}
	sess.touched = now
	return sess.ctrl, nil
}

func toState(snap interaction.Snapshot) *models.InteractionState {
	return &models.InteractionState{
		ProjectID:      snap.ProjectID,
		Views:          snap.Views,
		Likes:          snap.Likes,
		ViewsFormatted: FormatCount(snap.Views),
		LikesFormatted: FormatCount(snap.Likes),
		Liked:          snap.Liked(),
		LikePending:    snap.LikePending,
	}
}
