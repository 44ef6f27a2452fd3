package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	framescribepb "framescribe/gen/proto/framescribe/v1"
	"framescribe/internal/profiles"
	"framescribe/internal/utils"
)

type ProfileServer struct {
	framescribepb.UnimplementedProfilesServiceServer
	svc    *profiles.Service
	logger *slog.Logger
}

func NewProfileServer(svc *profiles.Service, logger *slog.Logger) *ProfileServer {
	return &ProfileServer{
		svc:    svc,
		logger: logger,
	}
}

// CreateProfile creates a new profile.
func (s *ProfileServer) CreateProfile(ctx context.Context, req *framescribepb.CreateProfileRequest) (*framescribepb.CreateProfileResponse, error) {
	p, err := s.svc.CreateProfile(ctx, req.GetName())
	if err != nil {
		return nil, err
	}
	return &framescribepb.CreateProfileResponse{
		Profile: utils.ToPBProfile(p),
	}, nil
}

// GetProfile returns one profile.
func (s *ProfileServer) GetProfile(ctx context.Context, req *framescribepb.GetProfileRequest) (*framescribepb.GetProfileResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetProfileId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}
	p, err := s.svc.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	return &framescribepb.GetProfileResponse{
		Profile: utils.ToPBProfile(p),
	}, nil
}
