package repository

import (
	"github.com/google/uuid"

	"framescribe/constants"
	"framescribe/gen/ent"
	"framescribe/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func uuidOrNil(p *uuid.UUID) *uuid.UUID {
	if p == nil || *p == uuid.Nil {
		return nil
	}
	v := *p
	return &v
}

func toJob(j *ent.ConversionJob) *entity.Job {
	return &entity.Job{
		ID:                 j.ID,
		ProfileID:          j.ProfileID,
		ParentJobID:        uuidOrNil(j.ParentJobID),
		Kind:               constants.JobKind(j.Kind),
		Status:             constants.JobStatus(j.Status),
		Step:               constants.JobStep(j.Step),
		ErrorMsg:           strOrEmpty(j.ErrorMessage),
		ArchiveKey:         j.ArchiveKey,
		FilteredArchiveKey: j.FilteredArchiveKey,
		ThumbnailKey:       j.ThumbnailKey,
		TextDocKey:         j.TextDocKey,
		RichDocKey:         j.RichDocKey,
		TextDocSize:        j.TextDocSize,
		RichDocSize:        j.RichDocSize,
		TotalImages:        j.TotalImages,
		PreprocessedImages: j.PreprocessedImages,
		SubmittedImages:    j.SubmittedImages,
		TotalBatches:       j.TotalBatches,
		CompletedBatches:   j.CompletedBatches,
		BatchSize:          j.BatchSize,
		CurrentBatchID:     j.CurrentBatchID,
		CurrentInputFileID: j.CurrentInputFileID,
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
	}
}

func toFrame(f *ent.Frame) *entity.Frame {
	return &entity.Frame{
		ID:         f.ID,
		JobID:      f.JobID,
		Filename:   f.Filename,
		BaseKey:    f.BaseKey,
		FrameIndex: f.FrameIndex,
		Text:       f.Text,
	}
}

func toBatch(b *ent.BatchSubmission) *entity.Batch {
	return &entity.Batch{
		ID:              b.ID,
		JobID:           b.JobID,
		BatchIndex:      b.BatchIndex,
		ProviderBatchID: b.ProviderBatchID,
		InputFileID:     b.InputFileID,
		OutputFileID:    b.OutputFileID,
		ItemCount:       b.ItemCount,
		State:           constants.BatchRowState(b.State),
		Supplementary:   b.Supplementary,
		NextPollAt:      b.NextPollAt,
	}
}

func toProfile(p *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:              p.ID,
		Name:            p.Name,
		InferenceAPIKey: p.InferenceAPIKey,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
