package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmrate-backend/internal/domains/mpa"
	"filmrate-backend/internal/shared/response"
)

type MpaHandler struct {
	service mpa.Service
}

func NewMpaHandler(svc mpa.Service) *MpaHandler {
	return &MpaHandler{service: svc}
}

// GetAll handles GET /mpa
func (h *MpaHandler) GetAll(c *gin.Context) {
	ratings, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, mpa.ToHTTPStatus(err), err.Error())
		return
	}
	response.JSON(c, http.StatusOK, ratings)
}

// GetByID handles GET /mpa/:id
func (h *MpaHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid mpa id")
		return
	}

	rating, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, mpa.ToHTTPStatus(err), err.Error())
		return
	}
	response.JSON(c, http.StatusOK, rating)
}
