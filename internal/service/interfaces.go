package service

import (
	"context"
	"time"

	"github.com/tmash55/Linkty/internal/model"

	"github.com/redis/go-redis/v9"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	SaveShortLink(ctx context.Context, sl *model.ShortLink) error
	GetShortLinkByCode(ctx context.Context, shortCode string) (*model.ShortLink, error)
	GetShortLinkByURL(ctx context.Context, url string) (*model.ShortLink, error)
	CheckExistsByCode(ctx context.Context, shortCode string) (bool, error)
	RecordClick(ctx context.Context, event *model.ClickEvent, newVisitor bool) error
	UpsertVisitorSession(ctx context.Context, session *model.VisitorSession) error
	GetClickEvents(ctx context.Context, linkID int64, limit int) ([]model.ClickEvent, error)
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	GetClient() *redis.Client
	SaveShortLink(ctx context.Context, shortCode, originalURL string, ttl time.Duration) error
	GetShortLink(ctx context.Context, shortCode string) (string, error)
	IncrementPV(ctx context.Context, shortCode string) (int64, error)
	GetPV(ctx context.Context, shortCode string) (int64, error)
	AddUV(ctx context.Context, shortCode, visitorID string) (bool, error)
	GetUV(ctx context.Context, shortCode string) (int64, error)
	AddSource(ctx context.Context, shortCode, source string) error
	GetSources(ctx context.Context, shortCode string) (map[string]int64, error)
}

// BloomServiceInterface defines the interface for Bloom Filter operations (for testing)
type BloomServiceInterface interface {
	Add(ctx context.Context, shortCode string) error
	Exists(ctx context.Context, shortCode string) (bool, error)
	GetCapacity() int64
	IsAvailable(ctx context.Context) bool
	Reset(ctx context.Context) error
}

// ShortLinkServiceInterface defines the interface for short link operations
type ShortLinkServiceInterface interface {
	Generate(ctx context.Context, req *model.GenerateRequest) (*model.GenerateResponse, error)
	Resolve(ctx context.Context, shortCode string) (*model.ShortLink, error)
}

// ClickServiceInterface defines the interface for click attribution operations
type ClickServiceInterface interface {
	Record(ctx context.Context, shortCode string, event *model.ClickEvent, newVisitor bool) error
	UpsertSession(ctx context.Context, session *model.VisitorSession) error
	Stats(ctx context.Context, shortCode string) (*model.LinkStats, error)
	RecentClicks(ctx context.Context, linkID int64, limit int) ([]model.ClickEvent, error)
}
