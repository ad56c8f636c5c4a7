package repository

import (
	"context"

	"postboard/internal/cache"
	"postboard/internal/models"
)

// cachedUserRepository serves GetByID through Redis. Users are never mutated after
// registration, so entries are only bounded by cache.UserTTL.
type cachedUserRepository struct {
	UserRepository
	cache *cache.Cache
}

// NewCachedUserRepository wraps inner with cache-aside lookups by ID. Users read through
// the cache carry no password digest; login reads by email and always hits the store.
func NewCachedUserRepository(inner UserRepository, c *cache.Cache) UserRepository {
	if !c.Enabled() {
		return inner
	}
	return &cachedUserRepository{UserRepository: inner, cache: c}
}

func (r *cachedUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.cache.Aside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		found, err := r.UserRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		user = *found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
