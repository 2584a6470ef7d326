package repository

import (
	"context"

	"publications-backend/internal/domains/publication/model"
)

// Repository defines data access for publications.
//
// Every read and count operates over active rows only (is_active = TRUE);
// soft-deleted rows are invisible through this interface but are never
// physically removed.
type Repository interface {
	// Create inserts a new publication.
	// Returns the created row with id and timestamps assigned by the store.
	Create(ctx context.Context, p *model.Publication) (*model.Publication, error)

	// GetByID retrieves an active publication.
	// Returns ErrPublicationNotFound if the row is absent or inactive.
	GetByID(ctx context.Context, id int64) (*model.Publication, error)

	// List returns a page of active publications plus the total count.
	List(ctx context.Context, filter model.Filter) ([]model.Publication, int64, error)

	// ListByAuthor returns active publications referencing the author.
	ListByAuthor(ctx context.Context, authorID int64, filter model.Filter) ([]model.Publication, int64, error)

	// ListByStatus returns active publications in the given state.
	ListByStatus(ctx context.Context, status model.Status, filter model.Filter) ([]model.Publication, int64, error)

	// Search matches keyword against title and description, case-insensitive.
	Search(ctx context.Context, keyword string, filter model.Filter) ([]model.Publication, int64, error)

	// UpdateStatus applies a lifecycle transition inside a transaction.
	// The row is locked, the transition re-checked against the policy table,
	// and published_at set if and only if the target is PUBLISHED and it was
	// previously unset. reviewerNotes/rejectionReason overwrite stored values
	// only when non-nil.
	// Errors: ErrPublicationNotFound, ErrInvalidStatusTransition.
	UpdateStatus(ctx context.Context, id int64, target model.Status, reviewerNotes, rejectionReason *string) (*model.Publication, error)

	// SoftDelete flips is_active to false. The row is never purged.
	// Returns ErrPublicationNotFound if absent or already inactive.
	SoftDelete(ctx context.Context, id int64) error

	// CountActive returns the number of active publications.
	CountActive(ctx context.Context) (int64, error)

	// CountByStatus counts active publications in the given state.
	CountByStatus(ctx context.Context, status model.Status) (int64, error)

	// CountByAuthor counts active publications referencing the author.
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)

	// IncrementViews bumps views_count by one. Used by the view worker.
	IncrementViews(ctx context.Context, id int64) error
}
