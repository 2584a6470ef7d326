package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"publications-backend/internal/domains/publication/job"
	"publications-backend/internal/domains/publication/model"
	"publications-backend/internal/domains/publication/repository"
)

// publicationService implements Service.
// Depends on abstractions only: repository, author gateway, task enqueuer.
type publicationService struct {
	repo     repository.Repository
	gateway  AuthorGateway
	enqueuer Enqueuer
}

func NewPublicationService(repo repository.Repository, gateway AuthorGateway, enqueuer Enqueuer) Service {
	return &publicationService{
		repo:     repo,
		gateway:  gateway,
		enqueuer: enqueuer,
	}
}

func (s *publicationService) Create(ctx context.Context, req *model.CreatePublicationRequest) (*model.PublicationResponse, error) {
	log.Info().Str("title", req.Title).Msg("Creating new publication")

	if err := validateCreate(req); err != nil {
		return nil, err
	}

	// Existence check against the authors service. A gateway failure reads
	// as "author invalid": the create must never skip author validation.
	if !s.gateway.AuthorExists(ctx, req.AuthorID) {
		return nil, fmt.Errorf("%w: author not found with id: %d", model.ErrValidation, req.AuthorID)
	}

	// Status is forced to DRAFT no matter what the client sent.
	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	log.Info().Int64("id", created.ID).Msg("Publication created successfully")
	return s.enrich(ctx, created), nil
}

func (s *publicationService) GetByID(ctx context.Context, id int64) (*model.PublicationResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.recordView(p.ID)

	return s.enrich(ctx, p), nil
}

func (s *publicationService) List(ctx context.Context, filter model.Filter) (*model.ListResponse, error) {
	filter = normalizeFilter(filter)

	publications, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.toListResponse(ctx, publications, total, filter), nil
}

func (s *publicationService) ListByAuthor(ctx context.Context, authorID int64, filter model.Filter) (*model.ListResponse, error) {
	filter = normalizeFilter(filter)

	publications, total, err := s.repo.ListByAuthor(ctx, authorID, filter)
	if err != nil {
		return nil, err
	}

	return s.toListResponse(ctx, publications, total, filter), nil
}

func (s *publicationService) ListByStatus(ctx context.Context, status model.Status, filter model.Filter) (*model.ListResponse, error) {
	filter = normalizeFilter(filter)

	publications, total, err := s.repo.ListByStatus(ctx, status, filter)
	if err != nil {
		return nil, err
	}

	return s.toListResponse(ctx, publications, total, filter), nil
}

func (s *publicationService) Search(ctx context.Context, keyword string, filter model.Filter) (*model.ListResponse, error) {
	filter = normalizeFilter(filter)

	publications, total, err := s.repo.Search(ctx, keyword, filter)
	if err != nil {
		return nil, err
	}

	return s.toListResponse(ctx, publications, total, filter), nil
}

func (s *publicationService) UpdateStatus(ctx context.Context, id int64, req *model.UpdateStatusRequest) (*model.PublicationResponse, error) {
	log.Info().Int64("id", id).Str("target", req.Status).Msg("Updating publication status")

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
	}

	target, err := model.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Fast policy check for the user-facing error. The repository re-checks
	// under the row lock, which closes the check-then-act window.
	if err := validateStatusTransition(current.Status, target); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, id, target, req.ReviewerNotes, req.RejectionReason)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("id", id).Str("status", string(updated.Status)).
		Msg("Publication status updated successfully")
	return s.enrich(ctx, updated), nil
}

func (s *publicationService) SoftDelete(ctx context.Context, id int64) error {
	log.Info().Int64("id", id).Msg("Soft-deleting publication")

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("id", id).Msg("Publication soft-deleted")
	return nil
}

func (s *publicationService) CountTotal(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}

func (s *publicationService) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	return s.repo.CountByStatus(ctx, status)
}

func (s *publicationService) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	return s.repo.CountByAuthor(ctx, authorID)
}

// enrich decorates the response with author data when the gateway has it.
// A failed fetch degrades the shape, never the request.
func (s *publicationService) enrich(ctx context.Context, p *model.Publication) *model.PublicationResponse {
	resp := p.ToResponse()

	profile, ok := s.gateway.FetchProfile(ctx, p.AuthorID)
	if !ok {
		log.Warn().Int64("id", p.ID).Int64("author_id", p.AuthorID).
			Msg("Could not enrich publication with author data")
		return resp
	}

	resp.Author = &model.AuthorInfo{
		ID:         profile.ID,
		Name:       profile.Name,
		Email:      profile.Email,
		AuthorType: profile.AuthorType,
	}
	return resp
}

func (s *publicationService) toListResponse(ctx context.Context, publications []model.Publication, total int64, filter model.Filter) *model.ListResponse {
	responses := make([]model.PublicationResponse, len(publications))
	for i := range publications {
		responses[i] = *s.enrich(ctx, &publications[i])
	}

	totalPages := int((total + int64(filter.Size) - 1) / int64(filter.Size))

	return &model.ListResponse{
		Data: responses,
		Pagination: model.PaginationMeta{
			CurrentPage: filter.Page,
			PageSize:    filter.Size,
			TotalItems:  total,
			TotalPages:  totalPages,
		},
	}
}

// recordView enqueues a view event. Best-effort: enqueue failures are logged
// and never affect the read path.
func (s *publicationService) recordView(id int64) {
	if s.enqueuer == nil {
		return
	}

	task, err := job.NewViewRecordedTask(id)
	if err != nil {
		log.Warn().Err(err).Int64("id", id).Msg("Failed to build view task")
		return
	}

	if _, err := s.enqueuer.Enqueue(task); err != nil {
		log.Warn().Err(err).Int64("id", id).Msg("Failed to enqueue view task")
	}
}

// normalizeFilter applies pagination defaults and caps.
func normalizeFilter(f model.Filter) model.Filter {
	if f.Size <= 0 {
		f.Size = 10
	}
	if f.Size > 100 {
		f.Size = 100
	}
	if f.Page < 0 {
		f.Page = 0
	}
	if f.SortBy == "" {
		f.SortBy = "id"
	}
	return f
}
