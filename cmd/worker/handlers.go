package main

import (
	"github.com/hibiken/asynq"

	"publications-backend/internal/domains/publication/job"
	"publications-backend/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	viewRecorded *job.ViewRecordedHandler
}

// initializeHandlers creates all job handlers with their dependencies.
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		viewRecorded: job.NewViewRecordedHandler(c.PublicationRepo),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(job.TypeViewRecorded, h.viewRecorded.ProcessTask)
}
