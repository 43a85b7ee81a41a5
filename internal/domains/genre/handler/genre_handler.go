package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmrate-backend/internal/domains/genre"
	"filmrate-backend/internal/shared/response"
)

type GenreHandler struct {
	service genre.Service
}

func NewGenreHandler(svc genre.Service) *GenreHandler {
	return &GenreHandler{service: svc}
}

// GetAll handles GET /genres
func (h *GenreHandler) GetAll(c *gin.Context) {
	genres, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, genre.ToHTTPStatus(err), err.Error())
		return
	}
	response.JSON(c, http.StatusOK, genres)
}

// GetByID handles GET /genres/:id
func (h *GenreHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	g, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, genre.ToHTTPStatus(err), err.Error())
		return
	}
	response.JSON(c, http.StatusOK, g)
}
