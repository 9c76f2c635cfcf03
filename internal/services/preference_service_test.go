package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dashboard-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePrefRepo struct {
	stored map[uint]*models.UserPreferences
	finds  int
}

func newFakePrefRepo() *fakePrefRepo {
	return &fakePrefRepo{stored: make(map[uint]*models.UserPreferences)}
}

func (f *fakePrefRepo) Upsert(prefs *models.UserPreferences) error {
	f.stored[prefs.UserID] = prefs
	return nil
}

func (f *fakePrefRepo) FindByUserID(userID uint) (*models.UserPreferences, error) {
	f.finds++
	prefs, ok := f.stored[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return prefs, nil
}

var errCacheMiss = errors.New("cache miss")

type fakeCache struct {
	entries map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := f.entries[key]
	if !ok {
		return errCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.entries, key)
		f.deleted = append(f.deleted, key)
	}
	return nil
}

func TestGetPopulatesCacheOnMiss(t *testing.T) {
	repo := newFakePrefRepo()
	cache := newFakeCache()
	repo.stored[7] = &models.UserPreferences{UserID: 7, Language: "en", Theme: "dark", Notifications: true}

	svc := NewPreferenceService(repo, cache)

	prefs, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "dark", prefs.Theme)
	assert.Equal(t, 1, repo.finds)
	assert.Contains(t, cache.entries, "prefs:7")
}

func TestGetServesFromCache(t *testing.T) {
	repo := newFakePrefRepo()
	cache := newFakeCache()
	repo.stored[7] = &models.UserPreferences{UserID: 7, Theme: "dark"}

	svc := NewPreferenceService(repo, cache)

	_, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	_, err = svc.Get(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.finds, "second read must come from the cache")
}

func TestGetUnknownUser(t *testing.T) {
	svc := NewPreferenceService(newFakePrefRepo(), newFakeCache())

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPreferencesNotFound)
}

func TestUpdateInvalidatesCache(t *testing.T) {
	repo := newFakePrefRepo()
	cache := newFakeCache()
	repo.stored[7] = &models.UserPreferences{UserID: 7, Theme: "dark"}

	svc := NewPreferenceService(repo, cache)

	// Warm the cache, then write through.
	_, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Contains(t, cache.entries, "prefs:7")

	updated, err := svc.Update(context.Background(), 7, &models.PreferencesRequest{
		Language:      "de",
		Theme:         "light",
		Notifications: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "light", updated.Theme)

	assert.NotContains(t, cache.entries, "prefs:7", "stale cache entry must be dropped")
	assert.Contains(t, cache.deleted, "prefs:7")

	// Next read repopulates from the repository.
	fresh, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "light", fresh.Theme)
	assert.Contains(t, cache.entries, "prefs:7")
}
