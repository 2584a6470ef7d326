package service

import (
	"context"

	"github.com/hibiken/asynq"

	"publications-backend/internal/clients/authors"
	"publications-backend/internal/domains/publication/model"
)

// Service is the publication lifecycle orchestrator consumed by handlers.
type Service interface {
	// Create validates the request, verifies the author exists (fail-closed),
	// and persists a new publication with status forced to DRAFT.
	Create(ctx context.Context, req *model.CreatePublicationRequest) (*model.PublicationResponse, error)

	// GetByID returns an active publication, enriched best-effort with
	// author data. Records a view event asynchronously.
	GetByID(ctx context.Context, id int64) (*model.PublicationResponse, error)

	// List / ListByAuthor / ListByStatus / Search page over active rows;
	// each result is enriched independently, so a page may be partially
	// decorated.
	List(ctx context.Context, filter model.Filter) (*model.ListResponse, error)
	ListByAuthor(ctx context.Context, authorID int64, filter model.Filter) (*model.ListResponse, error)
	ListByStatus(ctx context.Context, status model.Status, filter model.Filter) (*model.ListResponse, error)
	Search(ctx context.Context, keyword string, filter model.Filter) (*model.ListResponse, error)

	// UpdateStatus applies a lifecycle transition after checking the policy
	// table. Illegal transitions reject with no mutation.
	UpdateStatus(ctx context.Context, id int64, req *model.UpdateStatusRequest) (*model.PublicationResponse, error)

	// SoftDelete marks the publication inactive; later reads exclude it.
	SoftDelete(ctx context.Context, id int64) error

	// Aggregates over active rows.
	CountTotal(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.Status) (int64, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

// AuthorGateway is the boundary to the authors service.
// AuthorExists is fail-closed; FetchProfile is fail-open. See the client
// implementation in internal/clients/authors.
type AuthorGateway interface {
	AuthorExists(ctx context.Context, authorID int64) bool
	FetchProfile(ctx context.Context, authorID int64) (*authors.Profile, bool)
}

// Enqueuer is the subset of *asynq.Client the service needs.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
