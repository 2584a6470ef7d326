package job

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"publications-backend/internal/domains/publication/model"
	"publications-backend/internal/domains/publication/repository"
)

// ViewRecordedHandler increments views_count for read publications.
type ViewRecordedHandler struct {
	repo repository.Repository
}

func NewViewRecordedHandler(repo repository.Repository) *ViewRecordedHandler {
	return &ViewRecordedHandler{
		repo: repo,
	}
}

func (h *ViewRecordedHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload ViewRecordedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal view payload")
		return err
	}

	err := h.repo.IncrementViews(ctx, payload.PublicationID)
	if err != nil {
		// The publication may have been soft-deleted between the read and
		// this task running; nothing to retry then.
		if errors.Is(err, model.ErrPublicationNotFound) {
			log.Warn().Int64("publication_id", payload.PublicationID).
				Msg("View recorded for inactive publication, skipping")
			return nil
		}
		return err
	}

	log.Info().Int64("publication_id", payload.PublicationID).Msg("View count incremented")
	return nil
}
