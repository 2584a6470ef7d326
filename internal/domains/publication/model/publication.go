package model

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a publication.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusInReview  Status = "IN_REVIEW"
	StatusApproved  Status = "APPROVED"
	StatusPublished Status = "PUBLISHED"
	StatusRejected  Status = "REJECTED"
	StatusArchived  Status = "ARCHIVED"
)

// statusTransitions maps each state to its set of legal targets.
// ARCHIVED is terminal. There are no self-transitions.
var statusTransitions = map[Status]map[Status]bool{
	StatusDraft:     {StatusInReview: true, StatusRejected: true},
	StatusInReview:  {StatusApproved: true, StatusRejected: true, StatusDraft: true},
	StatusApproved:  {StatusPublished: true, StatusDraft: true},
	StatusPublished: {StatusArchived: true},
	StatusRejected:  {StatusDraft: true},
	StatusArchived:  {},
}

var statusDescriptions = map[Status]string{
	StatusDraft:     "Draft - Being prepared",
	StatusInReview:  "In Review - Under editorial review",
	StatusApproved:  "Approved - Ready to publish",
	StatusPublished: "Published - Available to readers",
	StatusRejected:  "Rejected - Not accepted",
	StatusArchived:  "Archived - No longer active",
}

// CanTransitionTo reports whether the transition from s to target is legal.
// Pure lookup; the caller applies the new status only after this passes.
func (s Status) CanTransitionTo(target Status) bool {
	return statusTransitions[s][target]
}

// IsValid reports whether s is one of the six known states.
func (s Status) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// Description returns the human-readable label for the state.
func (s Status) Description() string {
	return statusDescriptions[s]
}

// ParseStatus converts a string (path param, request body) into a Status.
func ParseStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: unknown publication status %q", ErrValidation, value)
	}
	return s, nil
}

// DefaultLanguage is applied when a create request carries no language.
const DefaultLanguage = "ES"

// Publication is the core entity: an authored piece of editorial content
// and its workflow state. The author itself lives in the authors service
// and is referenced by AuthorID only.
type Publication struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Description     *string    `json:"description,omitempty" db:"description"`
	Content         string     `json:"content" db:"content"`
	AuthorID        int64      `json:"authorId" db:"author_id"`
	Status          Status     `json:"status" db:"status"`
	Keywords        *string    `json:"keywords,omitempty" db:"keywords"`
	Category        *string    `json:"category,omitempty" db:"category"`
	Language        string     `json:"language" db:"language"`
	ViewsCount      int        `json:"viewsCount" db:"views_count"`
	ReviewerNotes   *string    `json:"reviewerNotes,omitempty" db:"reviewer_notes"`
	RejectionReason *string    `json:"rejectionReason,omitempty" db:"rejection_reason"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty" db:"published_at"`
	IsActive        bool       `json:"isActive" db:"is_active"`
}

// Summary is a one-line description used in list views and logs.
func (p *Publication) Summary() string {
	return fmt.Sprintf("%s (Status: %s, Author ID: %d)",
		p.Title, p.Status.Description(), p.AuthorID)
}
