package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmrate-backend/internal/domains/review"
	"filmrate-backend/internal/shared/response"
)

const defaultReviewCount = 10

type ReviewHandler struct {
	service review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

// Create handles POST /reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req review.CreateReviewRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	rev, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, review.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusCreated, rev)
}

// Update handles PUT /reviews
func (h *ReviewHandler) Update(c *gin.Context) {
	var req review.UpdateReviewRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	rev, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, review.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, rev)
}

// Delete handles DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, review.ToHTTPStatus(err), err)
		return
	}
	response.NoContent(c)
}

// GetByID handles GET /reviews/:id
func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rev, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, review.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, rev)
}

// GetByFilm handles GET /reviews?filmId=&count=
func (h *ReviewHandler) GetByFilm(c *gin.Context) {
	var filmID int64
	if raw := c.Query("filmId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid filmId")
			return
		}
		filmID = parsed
	}

	count := defaultReviewCount
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(c, "count must be a positive integer")
			return
		}
		count = parsed
	}

	reviews, err := h.service.GetByFilm(c.Request.Context(), filmID, count)
	if err != nil {
		response.HandleError(c, review.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, reviews)
}

// AddLike handles PUT /reviews/:id/like/:userId
func (h *ReviewHandler) AddLike(c *gin.Context) {
	h.vote(c, h.service.AddLike)
}

// AddDislike handles PUT /reviews/:id/dislike/:userId
func (h *ReviewHandler) AddDislike(c *gin.Context) {
	h.vote(c, h.service.AddDislike)
}

// RemoveLike handles DELETE /reviews/:id/like/:userId
func (h *ReviewHandler) RemoveLike(c *gin.Context) {
	h.vote(c, h.service.RemoveLike)
}

// RemoveDislike handles DELETE /reviews/:id/dislike/:userId
func (h *ReviewHandler) RemoveDislike(c *gin.Context) {
	h.vote(c, h.service.RemoveDislike)
}

func (h *ReviewHandler) vote(c *gin.Context, op func(ctx context.Context, reviewID, userID int64) error) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := op(c.Request.Context(), reviewID, userID); err != nil {
		response.HandleError(c, review.ToHTTPStatus(err), err)
		return
	}
	response.NoContent(c)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
