package utils

import (
	"time"

	framescribepb "framescribe/gen/proto/framescribe/v1"
	"framescribe/internal/entity"
)

func ToPBProfile(p *entity.Profile) *framescribepb.Profile {
	return &framescribepb.Profile{
		Id:        p.ID.String(),
		Name:      p.Name,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBJob(j *entity.Job) *framescribepb.Job {
	parent := ""
	if j.ParentJobID != nil {
		parent = j.ParentJobID.String()
	}
	return &framescribepb.Job{
		Id:               j.ID.String(),
		ProfileId:        j.ProfileID.String(),
		ParentJobId:      parent,
		Kind:             string(j.Kind),
		Status:           string(j.Status),
		Step:             string(j.Step),
		ErrorMessage:     j.ErrorMsg,
		ArchiveKey:       j.ArchiveKey,
		ThumbnailKey:     j.ThumbnailKey,
		TextDocKey:       j.TextDocKey,
		RichDocKey:       j.RichDocKey,
		TotalImages:      int32(j.TotalImages),
		SubmittedImages:  int32(j.SubmittedImages),
		TotalBatches:     int32(j.TotalBatches),
		CompletedBatches: int32(j.CompletedBatches),
		CreatedAt:        j.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        j.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBFrame(f *entity.Frame) *framescribepb.Frame {
	return &framescribepb.Frame{
		Id:         f.ID.String(),
		JobId:      f.JobID.String(),
		Filename:   f.Filename,
		BaseKey:    f.BaseKey,
		FrameIndex: int32(f.FrameIndex),
		Text:       f.Text,
	}
}
