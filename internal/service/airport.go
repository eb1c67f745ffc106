package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/androadel2014/carryon-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
)

// Airport search limit bounds: a caller-supplied limit is clamped to
// [5,50], defaulting to 20.
const (
	airportLimitDefault = 20
	airportLimitMin     = 5
	airportLimitMax     = 50

	airportMinQueryLen = 2

	airportCacheTTL = 60 * time.Second
)

// AirportService is the ranked autocomplete over the static airport
// directory. Results are briefly cached in Redis when it is reachable;
// a nil or unreachable client simply skips the cache.
type AirportService struct {
	airports repository.AirportRepository
	cache    *redis.Client
}

func NewAirportService(airports repository.AirportRepository, cache *redis.Client) *AirportService {
	return &AirportService{
		airports: airports,
		cache:    cache,
	}
}

// ClampAirportLimit coerces the caller-supplied limit and clamps it to
// the allowed window. Anything non-numeric takes the default.
func ClampAirportLimit(v any) int {
	limit := cast.ToInt(v)
	if limit == 0 {
		return airportLimitDefault
	}
	if limit < airportLimitMin {
		return airportLimitMin
	}
	if limit > airportLimitMax {
		return airportLimitMax
	}
	return limit
}

// Search runs the ranked substring lookup. A trimmed query shorter
// than 2 characters short-circuits to an empty result set, not an
// error.
func (s *AirportService) Search(ctx context.Context, query string, limit any) ([]*model.Airport, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < airportMinQueryLen {
		return []*model.Airport{}, nil
	}

	bounded := ClampAirportLimit(limit)
	cacheKey := fmt.Sprintf("airports:search:%s:%d", strings.ToLower(query), bounded)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var airports []*model.Airport
			if err := json.Unmarshal(cached, &airports); err == nil {
				return airports, nil
			}
		}
	}

	airports, err := s.airports.Search(ctx, query, bounded)
	if err != nil {
		return nil, err
	}
	if airports == nil {
		airports = []*model.Airport{}
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(airports); err == nil {
			// Cache errors are ignored; the directory is static and a
			// miss just means another query.
			s.cache.Set(ctx, cacheKey, encoded, airportCacheTTL)
		}
	}

	return airports, nil
}

// Count returns the total number of directory rows for the health
// endpoint.
func (s *AirportService) Count(ctx context.Context) (int64, error) {
	return s.airports.Count(ctx)
}
