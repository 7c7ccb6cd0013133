package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tmash55/Linkty/internal/encoder"
	"github.com/tmash55/Linkty/internal/model"
	"github.com/tmash55/Linkty/internal/repository"
	"github.com/tmash55/Linkty/pkg/util"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidURL is returned when the URL is invalid
	ErrInvalidURL = errors.New("invalid URL")
	// ErrShortLinkNotFound is returned when the short link is not found
	ErrShortLinkNotFound = errors.New("short link not found")
	// ErrShortLinkExpired is returned when the short link has expired
	ErrShortLinkExpired = errors.New("short link has expired")
	// ErrAliasTaken is returned when a requested alias is already in use
	ErrAliasTaken = errors.New("alias already in use")
	// ErrMaxCapacityReached is returned when maximum capacity is reached
	ErrMaxCapacityReached = errors.New("maximum capacity reached")
)

// ShortLinkService handles short link creation and resolution
type ShortLinkService struct {
	encoder   *encoder.Base32Encoder
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
	bloomSvc  BloomServiceInterface
	domain    string
}

// NewShortLinkService creates a new ShortLink Service
func NewShortLinkService(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	bloomSvc BloomServiceInterface,
	domain string,
) *ShortLinkService {
	return &ShortLinkService{
		encoder:   encoder.NewBase32Encoder(),
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
		bloomSvc:  bloomSvc,
		domain:    domain,
	}
}

// Generate creates a short link for the given URL. A user-chosen alias is
// honored when free; otherwise a base32 code is derived from the URL hash.
func (s *ShortLinkService) Generate(ctx context.Context, req *model.GenerateRequest) (*model.GenerateResponse, error) {
	if req.URL == "" {
		return nil, ErrInvalidURL
	}

	// Parse expire time if provided
	var expireAt *time.Time
	if req.ExpireAt != "" {
		t, err := time.Parse(time.RFC3339, req.ExpireAt)
		if err != nil {
			return nil, fmt.Errorf("invalid expire_at format: %w", err)
		}
		expireAt = &t
	}

	var shortCode string
	if req.Alias != "" {
		taken, err := s.mysqlRepo.CheckExistsByCode(ctx, req.Alias)
		if err != nil {
			return nil, fmt.Errorf("failed to check alias: %w", err)
		}
		if taken {
			return nil, ErrAliasTaken
		}
		shortCode = req.Alias
	} else {
		// Reuse an existing code for the same destination
		if existing, err := s.mysqlRepo.GetShortLinkByURL(ctx, req.URL); err == nil {
			s.redisRepo.SaveShortLink(ctx, existing.ShortCode, encodeCachedLink(existing), repository.ShortLinkCacheTTL)
			return s.buildResponse(existing), nil
		}

		code, err := s.generateWithCollision(ctx, req.URL)
		if err != nil {
			return nil, err
		}
		shortCode = code
	}

	now := time.Now()
	sl := &model.ShortLink{
		ShortCode:   shortCode,
		OriginalURL: req.URL,
		CreatedAt:   now,
		ExpireAt:    expireAt,
		Status:      1,
	}

	if err := s.mysqlRepo.SaveShortLink(ctx, sl); err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to save short link to MySQL")
		return nil, fmt.Errorf("failed to save short link: %w", err)
	}

	// Warm the redirect cache
	s.redisRepo.SaveShortLink(ctx, shortCode, encodeCachedLink(sl), repository.ShortLinkCacheTTL)

	if err := s.bloomSvc.Add(ctx, shortCode); err != nil {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to add to Bloom Filter")
	}

	return s.buildResponse(sl), nil
}

// Resolve returns the link for a short code, consulting the cache first.
// Callers on the redirect hot path treat ErrShortLinkNotFound and
// ErrShortLinkExpired as a 404; anything else is a resolution failure.
func (s *ShortLinkService) Resolve(ctx context.Context, shortCode string) (*model.ShortLink, error) {
	// Try cache first. The cached value carries the link id so the click
	// write does not need a second lookup.
	if cached, err := s.redisRepo.GetShortLink(ctx, shortCode); err == nil && cached != "" {
		if sl, ok := decodeCachedLink(shortCode, cached); ok {
			return sl, nil
		}
	}

	sl, err := s.mysqlRepo.GetShortLinkByCode(ctx, shortCode)
	if err != nil {
		return nil, ErrShortLinkNotFound
	}

	if !sl.IsActive() {
		return nil, ErrShortLinkExpired
	}

	s.redisRepo.SaveShortLink(ctx, shortCode, encodeCachedLink(sl), repository.ShortLinkCacheTTL)

	return sl, nil
}

// encodeCachedLink packs id and destination into the cache value
func encodeCachedLink(sl *model.ShortLink) string {
	return fmt.Sprintf("%d|%s", sl.ID, sl.OriginalURL)
}

// decodeCachedLink unpacks a cache value; unparseable values are a miss
func decodeCachedLink(shortCode, cached string) (*model.ShortLink, bool) {
	idPart, url, found := strings.Cut(cached, "|")
	if !found || url == "" {
		return nil, false
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return nil, false
	}
	return &model.ShortLink{ID: id, ShortCode: shortCode, OriginalURL: url}, true
}

// generateWithCollision generates a short code with collision handling
func (s *ShortLinkService) generateWithCollision(ctx context.Context, url string) (string, error) {
	// Start with the minimum length and grow only when a length is exhausted
	for length := encoder.MinLength; length <= encoder.MaxLength; length++ {
		hash := util.HashString(url)

		for i := 0; i < 1000; i++ {
			shortCode := s.encoder.Encode(hash+uint64(i), length)

			// Bloom Filter first (fast negative), then MySQL to be sure
			exists, err := s.bloomSvc.Exists(ctx, shortCode)
			if err != nil || !exists {
				actualExists, _ := s.mysqlRepo.CheckExistsByCode(ctx, shortCode)
				if !actualExists {
					return shortCode, nil
				}
			}
		}
	}

	return "", ErrMaxCapacityReached
}

// buildResponse builds a generate response from a short link entity
func (s *ShortLinkService) buildResponse(sl *model.ShortLink) *model.GenerateResponse {
	resp := &model.GenerateResponse{
		ShortLink:   fmt.Sprintf("%s/s/%s", s.domain, sl.ShortCode),
		ShortCode:   sl.ShortCode,
		OriginalURL: sl.OriginalURL,
	}

	if sl.ExpireAt != nil {
		resp.ExpireAt = *sl.ExpireAt
	}

	return resp
}
