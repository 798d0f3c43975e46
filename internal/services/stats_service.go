package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"pixelnex.dev/internal/models"
)

// StatsService is the in-process view and like counter table.
//
// Unknown project ids are never errors: increments return 0/false and
// lookups return zero counters. Likes are not deduplicated here.
type StatsService struct {
	mu      sync.Mutex
	records map[string]*models.Stats
	latency time.Duration
	logger  *zap.Logger
}

// NewStatsService seeds a counter record for every catalog entry
func NewStatsService(projects *models.ProjectList, latency time.Duration, logger *zap.Logger) *StatsService {
	records := make(map[string]*models.Stats, len(projects.Projects))
	for _, p := range projects.Projects {
		stats := p.InitialStats()
		records[p.ID] = &stats
	}
	return &StatsService{records: records, latency: latency, logger: logger}
}

// IncrementView adds one view and returns the new count
func (s *StatsService) IncrementView(ctx context.Context, id string) (int, error) {
	if err := s.delay(ctx); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		s.logger.Debug("View for unknown project", zap.String("project_id", id))
		return 0, nil
	}
	record.Views++
	return record.Views, nil
}

// IncrementLike adds one like and reports whether the project exists
func (s *StatsService) IncrementLike(ctx context.Context, id string) (bool, error) {
	if err := s.delay(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		s.logger.Debug("Like for unknown project", zap.String("project_id", id))
		return false, nil
	}
	record.Likes++
	return true, nil
}

// GetStats returns the current counters for id
func (s *StatsService) GetStats(ctx context.Context, id string) (models.Stats, error) {
	if err := s.delay(ctx); err != nil {
		return models.Stats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if record, ok := s.records[id]; ok {
		return *record, nil
	}
	return models.Stats{}, nil
}

// delay simulates the round trip to a remote stats API
func (s *StatsService) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
