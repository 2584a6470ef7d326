package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field size limits, matching the column definitions.
const (
	MaxTitleLength       = 500
	MaxDescriptionLength = 2000
	MaxKeywordsLength    = 500
	MaxCategoryLength    = 100
)

// notBlank rejects strings that are empty or whitespace-only.
// ozzo's Required accepts " ", which is not good enough for title/content.
func notBlank(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("validation_required", msg)
		}
		return nil
	}
}

// CreatePublicationRequest - POST /v1/publications
// Any status supplied by the client is ignored; new publications always
// start in DRAFT.
type CreatePublicationRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Content     string  `json:"content"`
	AuthorID    int64   `json:"authorId"`
	Keywords    *string `json:"keywords,omitempty"`
	Category    *string `json:"category,omitempty"`
	Language    string  `json:"language,omitempty"`
}

func (r CreatePublicationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.By(notBlank("title is required")),
			validation.RuneLength(0, MaxTitleLength).Error("title cannot exceed 500 characters"),
		),
		validation.Field(&r.Description,
			validation.RuneLength(0, MaxDescriptionLength).Error("description cannot exceed 2000 characters"),
		),
		validation.Field(&r.Content,
			validation.By(notBlank("content is required")),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("valid author id is required"),
			validation.Min(int64(1)).Error("valid author id is required"),
		),
	)
}

// ToEntity converts the request into a new DRAFT publication.
func (r *CreatePublicationRequest) ToEntity() *Publication {
	language := r.Language
	if language == "" {
		language = DefaultLanguage
	}

	return &Publication{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		AuthorID:    r.AuthorID,
		Status:      StatusDraft,
		Keywords:    r.Keywords,
		Category:    r.Category,
		Language:    language,
		IsActive:    true,
	}
}

// UpdateStatusRequest - PATCH /v1/publications/:id/status
// ReviewerNotes and RejectionReason overwrite prior values only when present;
// absent fields leave the stored values untouched.
type UpdateStatusRequest struct {
	Status          string  `json:"status"`
	ReviewerNotes   *string `json:"reviewerNotes,omitempty"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
		),
	)
}

// AuthorInfo is the author decoration fetched best-effort from the authors
// service. Consumed transiently, never persisted.
type AuthorInfo struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	AuthorType string `json:"authorType"`
}

// PublicationResponse is the API representation of a publication.
// Author is present only when the profile fetch succeeded.
type PublicationResponse struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Description     *string     `json:"description,omitempty"`
	Content         string      `json:"content"`
	AuthorID        int64       `json:"authorId"`
	Author          *AuthorInfo `json:"author,omitempty"`
	Status          Status      `json:"status"`
	Keywords        *string     `json:"keywords,omitempty"`
	Category        *string     `json:"category,omitempty"`
	Language        string      `json:"language"`
	ViewsCount      int         `json:"viewsCount"`
	ReviewerNotes   *string     `json:"reviewerNotes,omitempty"`
	RejectionReason *string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	PublishedAt     *time.Time  `json:"publishedAt,omitempty"`
	IsActive        bool        `json:"isActive"`
	Summary         string      `json:"summary"`
}

// ToResponse converts the entity to its API representation, undecorated.
func (p *Publication) ToResponse() *PublicationResponse {
	return &PublicationResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Content:         p.Content,
		AuthorID:        p.AuthorID,
		Status:          p.Status,
		Keywords:        p.Keywords,
		Category:        p.Category,
		Language:        p.Language,
		ViewsCount:      p.ViewsCount,
		ReviewerNotes:   p.ReviewerNotes,
		RejectionReason: p.RejectionReason,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		PublishedAt:     p.PublishedAt,
		IsActive:        p.IsActive,
		Summary:         p.Summary(),
	}
}

// Filter carries pagination and sorting for list queries.
type Filter struct {
	Page   int    `json:"page" form:"page"`
	Size   int    `json:"size" form:"size"`
	SortBy string `json:"sort_by" form:"sortBy"`
}

// Offset converts page+size into a row offset.
func (f Filter) Offset() int {
	return f.Page * f.Size
}

// PaginationMeta - reusable pagination metadata.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// ListResponse - paginated list response.
type ListResponse struct {
	Data       []PublicationResponse `json:"data"`
	Pagination PaginationMeta        `json:"pagination"`
}
