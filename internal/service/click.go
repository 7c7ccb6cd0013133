package service

import (
	"context"
	"fmt"

	"github.com/tmash55/Linkty/internal/model"

	"github.com/rs/zerolog/log"
)

// ClickService persists click events and maintains the realtime counters.
// Writes are best-effort from the redirect's perspective: callers run them
// off the hot path and only log failures.
type ClickService struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
}

// NewClickService creates a new Click Service
func NewClickService(mysqlRepo MySQLRepositoryInterface, redisRepo RedisRepositoryInterface) *ClickService {
	return &ClickService{
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
	}
}

// Record appends the click event, bumps the link's aggregate counters and
// refreshes the realtime Redis stats. The MySQL write is the authoritative
// one; Redis counter failures are absorbed.
func (cs *ClickService) Record(ctx context.Context, shortCode string, event *model.ClickEvent, newVisitor bool) error {
	if err := cs.mysqlRepo.RecordClick(ctx, event, newVisitor); err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}

	if _, err := cs.redisRepo.IncrementPV(ctx, shortCode); err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to increment PV")
	}

	if _, err := cs.redisRepo.AddUV(ctx, shortCode, event.VisitorID); err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to add UV")
	}

	source := event.ClickType
	if source == "" {
		source = model.ClickDirect
	}
	if err := cs.redisRepo.AddSource(ctx, shortCode, source); err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Str("source", source).Msg("Failed to add source")
	}

	return nil
}

// UpsertSession creates or refreshes the visitor-session correlation row
func (cs *ClickService) UpsertSession(ctx context.Context, session *model.VisitorSession) error {
	if err := cs.mysqlRepo.UpsertVisitorSession(ctx, session); err != nil {
		return fmt.Errorf("failed to upsert visitor session: %w", err)
	}
	return nil
}

// Stats returns the realtime PV/UV/top-source counters for a short code
func (cs *ClickService) Stats(ctx context.Context, shortCode string) (*model.LinkStats, error) {
	pv, err := cs.redisRepo.GetPV(ctx, shortCode)
	if err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to get PV")
		pv = 0
	}

	uv, err := cs.redisRepo.GetUV(ctx, shortCode)
	if err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to get UV")
		uv = 0
	}

	sources, err := cs.redisRepo.GetSources(ctx, shortCode)
	if err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to get sources")
		sources = make(map[string]int64)
	}

	return &model.LinkStats{
		ShortCode:  shortCode,
		PV:         pv,
		UV:         uv,
		TopSources: topSources(sources, 10),
	}, nil
}

// RecentClicks returns the latest persisted click events for a link
func (cs *ClickService) RecentClicks(ctx context.Context, linkID int64, limit int) ([]model.ClickEvent, error) {
	return cs.mysqlRepo.GetClickEvents(ctx, linkID, limit)
}

// topSources returns the N largest source counters, descending
func topSources(sources map[string]int64, limit int) []model.SourceStat {
	if len(sources) == 0 {
		return []model.SourceStat{}
	}

	stats := make([]model.SourceStat, 0, len(sources))
	for source, count := range sources {
		stats = append(stats, model.SourceStat{Source: source, Count: count})
	}

	for i := 0; i < len(stats); i++ {
		for j := i + 1; j < len(stats); j++ {
			if stats[j].Count > stats[i].Count {
				stats[i], stats[j] = stats[j], stats[i]
			}
		}
	}

	if len(stats) > limit {
		stats = stats[:limit]
	}

	return stats
}
