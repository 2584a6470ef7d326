package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publications-backend/internal/domains/publication/model"
	"publications-backend/pkg/cache"
	"publications-backend/pkg/database"
)

// postgresRepository implements Repository on pgxpool, with a Redis
// read-through cache for single-row lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	publicationCacheKeyPrefix = "publication:"
	cacheTTL                  = 15 * time.Minute
)

// publicationColumns is the canonical select list; every scan uses it.
const publicationColumns = `
        id, title, description, content, author_id, status, keywords,
        category, language, views_count, reviewer_notes, rejection_reason,
        created_at, updated_at, published_at, is_active`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPublication(row rowScanner) (*model.Publication, error) {
	var p model.Publication
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Content,
		&p.AuthorID,
		&p.Status,
		&p.Keywords,
		&p.Category,
		&p.Language,
		&p.ViewsCount,
		&p.ReviewerNotes,
		&p.RejectionReason,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.PublishedAt,
		&p.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new publication; id and timestamps come from the store.
func (r *postgresRepository) Create(ctx context.Context, p *model.Publication) (*model.Publication, error) {
	query := `
        INSERT INTO publications
            (title, description, content, author_id, status, keywords, category, language)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING` + publicationColumns

	created, err := scanPublication(r.pool.QueryRow(
		ctx,
		query,
		p.Title,
		p.Description,
		p.Content,
		p.AuthorID,
		p.Status,
		p.Keywords,
		p.Category,
		p.Language,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create publication: %w", err)
	}

	return created, nil
}

// GetByID retrieves an active publication with caching.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Publication, error) {
	cacheKey := publicationCacheKeyPrefix + strconv.FormatInt(id, 10)

	var cached model.Publication
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `
        SELECT` + publicationColumns + `
        FROM publications
        WHERE id = $1 AND is_active = TRUE`

	p, err := scanPublication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPublicationNotFound
		}
		return nil, fmt.Errorf("failed to get publication by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, p, cacheTTL)

	return p, nil
}

// allowed sort columns; anything else falls back to id.
var sortColumns = map[string]string{
	"id":          "id",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
	"title":       "title",
	"views_count": "views_count",
}

// listWhere runs a paginated query plus its count over the same predicate.
// where must not include the active filter; it is added here so every read
// path shares the single is_active predicate.
func (r *postgresRepository) listWhere(ctx context.Context, where string, filter model.Filter, args ...any) ([]model.Publication, int64, error) {
	var b strings.Builder
	b.WriteString("SELECT")
	b.WriteString(publicationColumns)
	b.WriteString(" FROM publications WHERE is_active = TRUE")
	if where != "" {
		b.WriteString(" AND ")
		b.WriteString(where)
	}

	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = "id"
	}
	b.WriteString(fmt.Sprintf(" ORDER BY %s DESC", sortColumn))

	argPos := len(args) + 1
	b.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	queryArgs := append(append([]any{}, args...), filter.Size, filter.Offset())

	rows, err := r.pool.Query(ctx, b.String(), queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query publications: %w", err)
	}
	defer rows.Close()

	var publications []model.Publication
	for rows.Next() {
		p, err := scanPublication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan publication: %w", err)
		}
		publications = append(publications, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating publications: %w", err)
	}

	countQuery := "SELECT COUNT(*) FROM publications WHERE is_active = TRUE"
	if where != "" {
		countQuery += " AND " + where
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count publications: %w", err)
	}

	return publications, total, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.Filter) ([]model.Publication, int64, error) {
	return r.listWhere(ctx, "", filter)
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID int64, filter model.Filter) ([]model.Publication, int64, error) {
	return r.listWhere(ctx, "author_id = $1", filter, authorID)
}

func (r *postgresRepository) ListByStatus(ctx context.Context, status model.Status, filter model.Filter) ([]model.Publication, int64, error) {
	return r.listWhere(ctx, "status = $1", filter, status)
}

func (r *postgresRepository) Search(ctx context.Context, keyword string, filter model.Filter) ([]model.Publication, int64, error) {
	pattern := "%" + keyword + "%"
	return r.listWhere(ctx, "(title ILIKE $1 OR description ILIKE $1)", filter, pattern)
}

// UpdateStatus performs the transition as a locked read-modify-write.
// The policy check runs again under the row lock so a concurrent transition
// cannot slip in between the service-level check and this write.
func (r *postgresRepository) UpdateStatus(ctx context.Context, id int64, target model.Status, reviewerNotes, rejectionReason *string) (*model.Publication, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Publication, error) {
		var current model.Status
		err := tx.QueryRow(ctx,
			`SELECT status FROM publications WHERE id = $1 AND is_active = TRUE FOR UPDATE`,
			id,
		).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.ErrPublicationNotFound
			}
			return nil, fmt.Errorf("failed to lock publication: %w", err)
		}

		if !current.CanTransitionTo(target) {
			return nil, fmt.Errorf("%w: cannot transition from %s to %s",
				model.ErrInvalidStatusTransition, current, target)
		}

		query := `
            UPDATE publications
            SET status          = $1,
                reviewer_notes  = COALESCE($2, reviewer_notes),
                rejection_reason = COALESCE($3, rejection_reason),
                published_at = CASE
                    WHEN $1 = 'PUBLISHED' AND published_at IS NULL THEN NOW()
                    ELSE published_at
                END,
                updated_at = NOW()
            WHERE id = $4
            RETURNING` + publicationColumns

		return scanPublication(tx.QueryRow(ctx, query, target, reviewerNotes, rejectionReason, id))
	})
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, id)

	return updated, nil
}

// SoftDelete marks the row inactive; it stays in the table.
func (r *postgresRepository) SoftDelete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE publications SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to soft-delete publication: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrPublicationNotFound
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *postgresRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM publications WHERE is_active = TRUE")
}

func (r *postgresRepository) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM publications WHERE is_active = TRUE AND status = $1", status)
}

func (r *postgresRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM publications WHERE is_active = TRUE AND author_id = $1", authorID)
}

func (r *postgresRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count publications: %w", err)
	}
	return total, nil
}

// IncrementViews bumps the counter; inactive rows keep their count frozen.
func (r *postgresRepository) IncrementViews(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE publications SET views_count = views_count + 1 WHERE id = $1 AND is_active = TRUE`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrPublicationNotFound
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	r.cache.Delete(ctx, publicationCacheKeyPrefix+strconv.FormatInt(id, 10))
}
