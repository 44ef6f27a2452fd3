package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"framescribe/gen/ent"
	"framescribe/gen/ent/profile"
	"framescribe/internal/entity"
)

type ProfileRepository interface {
	Create(ctx context.Context, name string) (*entity.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type profileRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &profileRepo{client: client, logger: logger}
}

func (r *profileRepo) Create(ctx context.Context, name string) (*entity.Profile, error) {
	row, err := r.client.Profile.Create().SetName(name).Save(ctx)
	if err != nil {
		r.logger.Error("profile create failed", "name", name, "error", err)
		return nil, err
	}
	return toProfile(row), nil
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	row, err := r.client.Profile.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProfile(row), nil
}

func (r *profileRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Profile.Query().Where(profile.ID(id)).Exist(ctx)
}
