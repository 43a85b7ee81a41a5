package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmrate-backend/internal/domains/director"
	"filmrate-backend/internal/shared/response"
)

type DirectorHandler struct {
	service director.Service
}

func NewDirectorHandler(svc director.Service) *DirectorHandler {
	return &DirectorHandler{service: svc}
}

// GetAll handles GET /directors
func (h *DirectorHandler) GetAll(c *gin.Context) {
	directors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.HandleError(c, director.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, directors)
}

// GetByID handles GET /directors/:id
func (h *DirectorHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid director id")
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, director.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, d)
}

// Create handles POST /directors
func (h *DirectorHandler) Create(c *gin.Context) {
	var req director.CreateDirectorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	d, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, director.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusCreated, d)
}

// Update handles PUT /directors
func (h *DirectorHandler) Update(c *gin.Context) {
	var req director.UpdateDirectorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	d, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, director.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, d)
}

// Delete handles DELETE /directors/:id
func (h *DirectorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid director id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, director.ToHTTPStatus(err), err)
		return
	}
	response.NoContent(c)
}
