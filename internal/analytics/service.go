// Package analytics tracks match-query traffic and aggregates it into the
// dashboard served by the API. Events live in a bounded in-memory log and
// are persisted to a JSON file between restarts.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lenslink/lenslink/model"
	"github.com/lenslink/lenslink/services"
)

const maxEventsToKeep = 10000

// Service implements match analytics tracking and reporting.
type Service struct {
	mutex        sync.RWMutex
	events       []model.MatchEvent
	creators     services.CreatorStore
	dataFilePath string
	logger       *zap.Logger
}

// NewService creates an analytics service persisting to dataFilePath.
// Previously saved events are loaded if the file exists.
func NewService(creators services.CreatorStore, dataFilePath string, logger *zap.Logger) *Service {
	service := &Service{
		events:       make([]model.MatchEvent, 0),
		creators:     creators,
		dataFilePath: dataFilePath,
		logger:       logger,
	}

	if err := service.loadData(); err != nil {
		logger.Warn("failed to load analytics data", zap.Error(err))
	}

	return service
}

// TrackMatchEvent records one match query.
func (s *Service) TrackMatchEvent(event model.MatchEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	event.Timestamp = time.Now()
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth.
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}

	go func() {
		if err := s.saveData(); err != nil {
			s.logger.Warn("failed to save analytics data", zap.Error(err))
		}
	}()

	return nil
}

// GetDashboardData aggregates the last 24 hours of match traffic.
func (s *Service) GetDashboardData(ctx context.Context) (model.AnalyticsDashboard, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	now := time.Now()
	last24h := s.filterEventsByTime(s.events, now.Add(-24*time.Hour))

	dashboard := model.AnalyticsDashboard{
		TotalMatches24h: len(last24h),
		AvgResponseTime: s.calculateAvgResponseTime(last24h),
		AvgPoolSize:     avgInt(last24h, func(e model.MatchEvent) int { return e.PoolSize }),
		AvgResultCount:  avgInt(last24h, func(e model.MatchEvent) int { return e.ResultCount }),
		FilteredPercent: s.calculateFilteredPercent(last24h),
		PopularStyles:   s.getPopularStyles(last24h),
		GeneratedAt:     now,
	}

	_, total, err := s.creators.ListCreators(ctx, 1, 0)
	if err != nil {
		return model.AnalyticsDashboard{}, fmt.Errorf("count creators: %w", err)
	}
	dashboard.TotalCreators = total

	return dashboard, nil
}

func (s *Service) filterEventsByTime(events []model.MatchEvent, after time.Time) []model.MatchEvent {
	var filtered []model.MatchEvent
	for _, event := range events {
		if event.Timestamp.After(after) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

func (s *Service) calculateAvgResponseTime(events []model.MatchEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	return (total / time.Duration(len(events))).Milliseconds()
}

func (s *Service) calculateFilteredPercent(events []model.MatchEvent) float64 {
	if len(events) == 0 {
		return 0
	}

	filtered := 0
	for _, event := range events {
		if event.Filtered {
			filtered++
		}
	}
	return float64(filtered) / float64(len(events)) * 100
}

// getPopularStyles returns the five most requested style tags.
func (s *Service) getPopularStyles(events []model.MatchEvent) []model.PopularStyle {
	styleCounts := make(map[string]int)
	for _, event := range events {
		for _, style := range event.Styles {
			if style != "" {
				styleCounts[style]++
			}
		}
	}

	popular := make([]model.PopularStyle, 0, len(styleCounts))
	for style, count := range styleCounts {
		popular = append(popular, model.PopularStyle{Style: style, QueryCount: count})
	}

	sort.Slice(popular, func(i, j int) bool {
		if popular[i].QueryCount != popular[j].QueryCount {
			return popular[i].QueryCount > popular[j].QueryCount
		}
		return popular[i].Style < popular[j].Style
	})

	if len(popular) > 5 {
		popular = popular[:5]
	}
	return popular
}

func avgInt(events []model.MatchEvent, pick func(model.MatchEvent) int) float64 {
	if len(events) == 0 {
		return 0
	}

	total := 0
	for _, event := range events {
		total += pick(event)
	}
	return float64(total) / float64(len(events))
}

func (s *Service) loadData() error {
	if _, err := os.Stat(s.dataFilePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(s.dataFilePath)
	if err != nil {
		return fmt.Errorf("failed to read analytics file: %w", err)
	}
	if err := json.Unmarshal(data, &s.events); err != nil {
		return fmt.Errorf("failed to unmarshal analytics data: %w", err)
	}
	return nil
}

func (s *Service) saveData() error {
	s.mutex.RLock()
	data, err := json.MarshalIndent(s.events, "", "  ")
	s.mutex.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal analytics data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.dataFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create analytics directory: %w", err)
	}
	if err := os.WriteFile(s.dataFilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write analytics file: %w", err)
	}
	return nil
}
