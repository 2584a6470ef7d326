package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreatePublicationRequest {
	return CreatePublicationRequest{
		Title:    "A valid title",
		Content:  "Some content",
		AuthorID: 1,
	}
}

func TestCreatePublicationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreatePublicationRequest)
		wantErr bool
	}{
		{
			name:   "valid minimal request",
			mutate: func(r *CreatePublicationRequest) {},
		},
		{
			name: "valid with optional fields",
			mutate: func(r *CreatePublicationRequest) {
				desc := "a description"
				keywords := "go,testing"
				category := "engineering"
				r.Description = &desc
				r.Keywords = &keywords
				r.Category = &category
				r.Language = "EN"
			},
		},
		{
			name:    "missing title",
			mutate:  func(r *CreatePublicationRequest) { r.Title = "" },
			wantErr: true,
		},
		{
			name:    "whitespace-only title",
			mutate:  func(r *CreatePublicationRequest) { r.Title = "   " },
			wantErr: true,
		},
		{
			name:   "title at limit",
			mutate: func(r *CreatePublicationRequest) { r.Title = strings.Repeat("a", MaxTitleLength) },
		},
		{
			name:    "title over limit",
			mutate:  func(r *CreatePublicationRequest) { r.Title = strings.Repeat("a", MaxTitleLength+1) },
			wantErr: true,
		},
		{
			name:    "missing content",
			mutate:  func(r *CreatePublicationRequest) { r.Content = "" },
			wantErr: true,
		},
		{
			name:    "whitespace-only content",
			mutate:  func(r *CreatePublicationRequest) { r.Content = "\t\n " },
			wantErr: true,
		},
		{
			name:    "zero author id",
			mutate:  func(r *CreatePublicationRequest) { r.AuthorID = 0 },
			wantErr: true,
		},
		{
			name:    "negative author id",
			mutate:  func(r *CreatePublicationRequest) { r.AuthorID = -7 },
			wantErr: true,
		},
		{
			name: "description over limit",
			mutate: func(r *CreatePublicationRequest) {
				desc := strings.Repeat("d", MaxDescriptionLength+1)
				r.Description = &desc
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreatePublicationRequest_ToEntity(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req := validCreateRequest()
		p := req.ToEntity()

		require.NotNil(t, p)
		assert.Equal(t, StatusDraft, p.Status, "new publications always start in DRAFT")
		assert.Equal(t, DefaultLanguage, p.Language)
		assert.True(t, p.IsActive)
		assert.Zero(t, p.ViewsCount)
		assert.Nil(t, p.PublishedAt)
	})

	t.Run("explicit language kept", func(t *testing.T) {
		req := validCreateRequest()
		req.Language = "EN"

		assert.Equal(t, "EN", req.ToEntity().Language)
	})
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	assert.Error(t, UpdateStatusRequest{}.Validate())
	assert.NoError(t, UpdateStatusRequest{Status: "IN_REVIEW"}.Validate())
}

func TestFilter_Offset(t *testing.T) {
	tests := []struct {
		page, size, want int
	}{
		{0, 10, 0},
		{1, 10, 10},
		{3, 25, 75},
	}

	for _, tt := range tests {
		f := Filter{Page: tt.page, Size: tt.size}
		assert.Equal(t, tt.want, f.Offset())
	}
}

func TestPublication_ToResponse(t *testing.T) {
	desc := "desc"
	p := &Publication{
		ID:          9,
		Title:       "T",
		Description: &desc,
		Content:     "C",
		AuthorID:    4,
		Status:      StatusDraft,
		Language:    "ES",
		IsActive:    true,
	}

	resp := p.ToResponse()
	assert.Equal(t, p.ID, resp.ID)
	assert.Equal(t, p.Status, resp.Status)
	assert.Nil(t, resp.Author, "undecorated by default")
	assert.Equal(t, p.Summary(), resp.Summary)
}
