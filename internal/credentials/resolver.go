package credentials

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"framescribe/internal/inference"
	"framescribe/internal/inference/openai"
	"framescribe/internal/repository"
)

// ErrNoCredential signals that an owner has no configured inference credential.
var ErrNoCredential = errors.New("credentials: no inference credential configured")

// Resolver returns a ready-to-use inference client authenticated as the owner.
type Resolver interface {
	ClientFor(ctx context.Context, profileID uuid.UUID) (inference.Client, error)
}

// ProfileResolver reads the owner's stored credential and falls back to a
// shared key when the profile has none. Credential decryption happens in the
// external credential service before the key reaches the profile row.
type ProfileResolver struct {
	Profiles    repository.ProfileRepository
	Base        openai.Config
	FallbackKey string
	Logger      *slog.Logger
}

func NewProfileResolver(profiles repository.ProfileRepository, base openai.Config, fallbackKey string, logger *slog.Logger) *ProfileResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileResolver{Profiles: profiles, Base: base, FallbackKey: fallbackKey, Logger: logger}
}

func (r *ProfileResolver) ClientFor(ctx context.Context, profileID uuid.UUID) (inference.Client, error) {
	p, err := r.Profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	key := p.InferenceAPIKey
	if key == "" {
		key = r.FallbackKey
	}
	if key == "" {
		r.Logger.Warn("credentials.missing", "profile_id", profileID)
		return nil, ErrNoCredential
	}
	cfg := r.Base
	cfg.APIKey = key
	return openai.NewClient(cfg, r.Logger), nil
}
