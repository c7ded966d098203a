package service

import (
	"context"
	"errors"
	"time"

	"weav-api/core/config"
	"weav-api/core/constants"
	appErrors "weav-api/core/errors"
	"weav-api/core/logger"
	"weav-api/modules/recommend/client"
	"weav-api/modules/recommend/dto"
	"weav-api/modules/recommend/mapper"

	"github.com/gosimple/slug"
)

type Searcher interface {
	Search(ctx context.Context) ([]client.Event, error)
}

type ResultCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type RecommendServiceInterface interface {
	Recommend(ctx context.Context, req *dto.RecommendRequest) (*dto.RecommendResponse, *appErrors.AppError)
}

type RecommendService struct {
	search   Searcher
	cache    ResultCache
	cacheKey string
	cacheTTL time.Duration
}

// NewRecommendService caches results when cache is non-nil and cfg.CacheTTL > 0.
func NewRecommendService(search Searcher, cache ResultCache, cfg config.EventbriteConfig) RecommendServiceInterface {
	return &RecommendService{
		search:   search,
		cache:    cache,
		cacheKey: CacheKey(cfg),
		cacheTTL: cfg.CacheTTL,
	}
}

// CacheKey identifies one configured search query.
func CacheKey(cfg config.EventbriteConfig) string {
	return constants.RedisKeyRecommendations +
		slug.Make(cfg.LocationAddress) + ":" + slug.Make(cfg.Keyword) + ":" + slug.Make(cfg.SortBy)
}

// Recommend forwards to the events search. The calendars and preferences are
// accepted but do not affect the query or the ordering.
func (s *RecommendService) Recommend(ctx context.Context, req *dto.RecommendRequest) (*dto.RecommendResponse, *appErrors.AppError) {
	logger.Debug("RecommendService:Recommend", "calendars", len(req.Calendars), "preferences", req.Preferences != nil)

	if s.cache != nil && s.cacheTTL > 0 {
		var cached dto.RecommendResponse
		found, err := s.cache.GetJSON(ctx, s.cacheKey, &cached)
		if err != nil {
			logger.Warn("RecommendService:CacheGet", "key", s.cacheKey, err)
		} else if found {
			return &cached, nil
		}
	}

	events, err := s.search.Search(ctx)
	if err != nil {
		if errors.Is(err, client.ErrNotConfigured) {
			return nil, appErrors.NewAppError(appErrors.ErrInternalServer, "Eventbrite API key not configured.", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrExternalService, "Failed to generate recommendations.", err)
	}

	resp := &dto.RecommendResponse{RecommendedEvents: mapper.ToRecommendedEvents(events)}

	if s.cache != nil && s.cacheTTL > 0 {
		if err := s.cache.SetJSON(ctx, s.cacheKey, resp, s.cacheTTL); err != nil {
			logger.Warn("RecommendService:CacheSet", "key", s.cacheKey, err)
		}
	}
	return resp, nil
}
