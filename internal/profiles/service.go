package profiles

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"framescribe/internal/entity"
	"framescribe/internal/repository"
)

// Service handles profile business logic.
type Service struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewService creates a new profile service.
func NewService(profileRepo repository.ProfileRepository, logger *slog.Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// CreateProfile creates a new profile.
func (s *Service) CreateProfile(ctx context.Context, name string) (*entity.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	p, err := s.profileRepo.Create(ctx, name)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create profile: %v", err)
	}

	s.logger.Info("profile created successfully", "profile_id", p.ID, "name", p.Name)
	return p, nil
}

// GetProfile returns one profile by id.
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "profile not found")
	}
	return p, nil
}
