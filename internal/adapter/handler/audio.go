package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/speakwise-team/speakwise/errors"
	dto "github.com/speakwise-team/speakwise/internal/adapter/dto/analysis"
	"github.com/speakwise-team/speakwise/internal/domain/entities"
	"github.com/speakwise-team/speakwise/internal/usecase/analysis"
)

// AudioArchiver stores submitted audio for later auditing. Optional; a nil
// archiver disables archiving without affecting analysis.
type AudioArchiver interface {
	SaveAudio(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
}

// Audio handles audio submission and result polling
type Audio struct {
	service  analysis.Service
	archiver AudioArchiver
	logger   *zap.Logger
}

// NewAudioHandler constructs the audio handler
func NewAudioHandler(service analysis.Service, archiver AudioArchiver, logger *zap.Logger) *Audio {
	return &Audio{
		service:  service,
		archiver: archiver,
		logger:   logger,
	}
}

// SubmitAudio accepts a multipart upload, transcribes it, and queues scoring.
// Responds 202 with the job ID and transcript once scoring is dispatched.
func (h *Audio) SubmitAudio(c echo.Context) error {
	var req dto.SubmitAudioRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrMissingTopic())
	}

	fileHeader, err := c.FormFile("audio_file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMissingAudioFile())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	job, err := h.service.Submit(c.Request().Context(), bytes.NewReader(data), strings.TrimSpace(req.Topic))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	h.archive(c.Request().Context(), job.ID.String(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)

	return c.JSON(http.StatusAccepted, dto.SubmitAudioResponse{
		Message:       "Audio received and queued for analysis",
		UniqueID:      job.ID.String(),
		Transcription: job.TranscriptText,
	})
}

// GetResults returns the current state of an analysis job. Completed jobs get
// 200 with scores; in-flight jobs get 202.
func (h *Audio) GetResults(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid unique ID"))
	}

	job, err := h.service.GetResult(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	switch job.Status {
	case entities.JobStatusCompleted:
		return c.JSON(http.StatusOK, dto.ResultResponse{
			Message:  "Analysis completed",
			UniqueID: job.ID.String(),
			Status:   string(job.Status),
			Scores: &dto.Scores{
				Fluency:    job.Scores.Fluency,
				Vocabulary: job.Scores.Vocabulary,
				Grammar:    job.Scores.Grammar,
				Relevancy:  job.Scores.Relevancy,
			},
		})
	case entities.JobStatusFailed:
		reason := ""
		if job.LastError != nil {
			reason = *job.LastError
		}
		return c.JSON(http.StatusOK, dto.ResultResponse{
			Message:  "Analysis failed",
			UniqueID: job.ID.String(),
			Status:   string(job.Status),
			Error:    reason,
		})
	default:
		return c.JSON(http.StatusAccepted, dto.ResultResponse{
			Message:       "Analysis still in progress",
			UniqueID:      job.ID.String(),
			Status:        string(job.Status),
			Transcription: job.TranscriptText,
		})
	}
}

// archive stores the raw upload in object storage, keyed by job ID. Failures
// are logged and swallowed; the analysis already has its own copy.
func (h *Audio) archive(ctx context.Context, jobID, filename, contentType string, data []byte) {
	if h.archiver == nil {
		return
	}
	objectName := jobID + filepath.Ext(filename)
	if err := h.archiver.SaveAudio(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		if h.logger != nil {
			h.logger.Warn("failed to archive audio",
				zap.String("object", objectName),
				zap.Error(err),
			)
		}
	}
}
