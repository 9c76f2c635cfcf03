package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dashboard-service/internal/models"

	"gorm.io/gorm"
)

var ErrPreferencesNotFound = errors.New("preferences not found")

const prefsCacheTTL = 10 * time.Minute

// PreferenceRepository is the persistence surface the preference service
// needs. The postgres repository satisfies it; tests substitute a fake.
type PreferenceRepository interface {
	Upsert(prefs *models.UserPreferences) error
	FindByUserID(userID uint) (*models.UserPreferences, error)
}

// Cache is the key-value caching surface, satisfied by RedisService.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// PreferenceService persists per-user dashboard settings in Postgres with a
// read-through Redis cache.
type PreferenceService struct {
	repo  PreferenceRepository
	cache Cache
}

func NewPreferenceService(repo PreferenceRepository, cache Cache) *PreferenceService {
	return &PreferenceService{repo: repo, cache: cache}
}

func prefsCacheKey(userID uint) string {
	return fmt.Sprintf("prefs:%d", userID)
}

func (s *PreferenceService) Get(ctx context.Context, userID uint) (*models.UserPreferences, error) {
	var cached models.UserPreferences
	if err := s.cache.Get(ctx, prefsCacheKey(userID), &cached); err == nil {
		return &cached, nil
	}

	prefs, err := s.repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferencesNotFound
		}
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	if err := s.cache.Set(ctx, prefsCacheKey(userID), prefs, prefsCacheTTL); err != nil {
		slog.Warn("Failed to cache preferences", "userID", userID, "error", err)
	}
	return prefs, nil
}

// Update upserts the full record and invalidates the cached copy; the next
// read repopulates it from Postgres.
func (s *PreferenceService) Update(ctx context.Context, userID uint, req *models.PreferencesRequest) (*models.UserPreferences, error) {
	prefs := &models.UserPreferences{
		UserID:        userID,
		Language:      req.Language,
		Theme:         req.Theme,
		Notifications: req.Notifications,
		UpdatedAt:     time.Now(),
	}

	if err := s.repo.Upsert(prefs); err != nil {
		return nil, fmt.Errorf("failed to upsert preferences: %w", err)
	}

	if err := s.cache.Delete(ctx, prefsCacheKey(userID)); err != nil {
		slog.Warn("Failed to invalidate preferences cache", "userID", userID, "error", err)
	}
	return prefs, nil
}
