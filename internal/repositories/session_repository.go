package repository

import (
	"context"

	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storage"
)

type SessionRepository interface {
	LoadUser(ctx context.Context) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	ClearUser(ctx context.Context) error
}

type sessionRepository struct {
	kv storage.KV
}

func NewSessionRepo(kv storage.KV) SessionRepository {
	return &sessionRepository{kv: kv}
}

// LoadUser returns nil when nobody is logged in.
func (r *sessionRepository) LoadUser(ctx context.Context) (*models.User, error) {

	var user models.User

	found, err := load(ctx, r.kv, KeySession, &user)
	if err != nil || !found {
		return nil, err
	}

	return &user, nil
}

func (r *sessionRepository) SaveUser(ctx context.Context, user *models.User) error {
	return save(ctx, r.kv, KeySession, user)
}

func (r *sessionRepository) ClearUser(ctx context.Context) error {
	return r.kv.Remove(ctx, KeySession)
}
