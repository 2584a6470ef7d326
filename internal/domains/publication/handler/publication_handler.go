package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"publications-backend/internal/domains/publication/model"
	"publications-backend/internal/domains/publication/service"
	"publications-backend/internal/shared/response"
)

type PublicationHandler struct {
	service service.Service
}

func NewPublicationHandler(svc service.Service) *PublicationHandler {
	return &PublicationHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/publications
// ════════════════════════════════════════════════════════════════

func (h *PublicationHandler) Create(c *gin.Context) {
	var req model.CreatePublicationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/publications/:id
// ════════════════════════════════════════════════════════════════

func (h *PublicationHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /v1/publications?page=0&size=10&sortBy=id
// ════════════════════════════════════════════════════════════════

func (h *PublicationHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), parseFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: ListByAuthor - GET /v1/publications/author/:authorId
// ════════════════════════════════════════════════════════════════

func (h *PublicationHandler) ListByAuthor(c *gin.Context) {
	authorID, ok := parseID(c, "authorId")
	if !ok {
		return
	}

	resp, err := h.service.ListByAuthor(c.Request.Context(), authorID, parseFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: ListByStatus - GET /v1/publications/status/:status
// ════════════════════════════════════════════════════════════════

func (h *PublicationHandler) ListByStatus(c *gin.Context) {
	status, err := model.ParseStatus(c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.service.ListByStatus(c.Request.Context(), status, parseFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: Search - GET /v1/publications/search?keyword=...
// ════════════════════════════════════════════════════════════════

func (h *PublicationHandler) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.BadRequest(c, "Missing search keyword")
		return
	}

	resp, err := h.service.Search(c.Request.Context(), keyword, parseFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PATCH /v1/publications/:id/status
// ════════════════════════════════════════════════════════════════

func (h *PublicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/publications/:id (soft delete)
// ════════════════════════════════════════════════════════════════

func (h *PublicationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.SoftDelete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ════════════════════════════════════════════════════════════════
// STATS: GET /v1/publications/stats/*
// ════════════════════════════════════════════════════════════════

func (h *PublicationHandler) StatsTotal(c *gin.Context) {
	total, err := h.service.CountTotal(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"total": total})
}

func (h *PublicationHandler) StatsByStatus(c *gin.Context) {
	status, err := model.ParseStatus(c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.service.CountByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": status, "total": total})
}

func (h *PublicationHandler) StatsByAuthor(c *gin.Context) {
	authorID, ok := parseID(c, "authorId")
	if !ok {
		return
	}

	total, err := h.service.CountByAuthor(c.Request.Context(), authorID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"authorId": authorID, "total": total})
}

// ════════════════════════════════════════════════════════════════
// HELPERS
// ════════════════════════════════════════════════════════════════

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid numeric id")
		return 0, false
	}
	return id, true
}

func parseFilter(c *gin.Context) model.Filter {
	page := 0
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p >= 0 {
			page = p
		}
	}

	size := 10
	if sizeStr := c.Query("size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 {
			if s > 100 {
				s = 100
			}
			size = s
		}
	}

	return model.Filter{
		Page:   page,
		Size:   size,
		SortBy: c.DefaultQuery("sortBy", "id"),
	}
}

// respondError maps domain errors to the API envelope. Unexpected errors
// surface as a generic internal error without leaking internals.
func respondError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
