package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"filmrate-backend/internal/domains/film"
	"filmrate-backend/internal/shared/response"
)

const defaultPopularCount = 10

type FilmHandler struct {
	service film.Service
}

func NewFilmHandler(svc film.Service) *FilmHandler {
	return &FilmHandler{service: svc}
}

// GetAll handles GET /films
func (h *FilmHandler) GetAll(c *gin.Context) {
	films, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, films)
}

// GetByID handles GET /films/:id
func (h *FilmHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, f)
}

// Create handles POST /films
func (h *FilmHandler) Create(c *gin.Context) {
	var req film.CreateFilmRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusCreated, f)
}

// Update handles PUT /films
func (h *FilmHandler) Update(c *gin.Context) {
	var req film.UpdateFilmRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	f, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, f)
}

// Delete handles DELETE /films/:id
func (h *FilmHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.NoContent(c)
}

// AddLike handles PUT /films/:id/like/:userId
func (h *FilmHandler) AddLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.service.AddLike(c.Request.Context(), filmID, userID); err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.NoContent(c)
}

// RemoveLike handles DELETE /films/:id/like/:userId
func (h *FilmHandler) RemoveLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.service.RemoveLike(c.Request.Context(), filmID, userID); err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.NoContent(c)
}

// GetPopular handles GET /films/popular?count=&genreId=&year=
func (h *FilmHandler) GetPopular(c *gin.Context) {
	count := defaultPopularCount
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(c, "count must be a positive integer")
			return
		}
		count = parsed
	}

	var filter film.PopularFilter
	if raw := c.Query("genreId"); raw != "" {
		genreID, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "invalid genreId")
			return
		}
		filter.GenreID = &genreID
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "invalid year")
			return
		}
		filter.Year = &year
	}

	films, err := h.service.GetPopular(c.Request.Context(), count, filter)
	if err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, films)
}

// GetCommon handles GET /films/common?userId=&friendId=
func (h *FilmHandler) GetCommon(c *gin.Context) {
	userID, ok := queryID(c, "userId")
	if !ok {
		return
	}
	friendID, ok := queryID(c, "friendId")
	if !ok {
		return
	}

	films, err := h.service.GetCommonFilms(c.Request.Context(), userID, friendID)
	if err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, films)
}

// GetByDirector handles GET /films/director/:directorId?sortBy=
func (h *FilmHandler) GetByDirector(c *gin.Context) {
	directorID, ok := pathID(c, "directorId")
	if !ok {
		return
	}
	sortBy := c.DefaultQuery("sortBy", film.SortByLikes)

	films, err := h.service.GetByDirector(c.Request.Context(), directorID, sortBy)
	if err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, films)
}

// Search handles GET /films/search?query=&by=title,director
func (h *FilmHandler) Search(c *gin.Context) {
	query := c.Query("query")
	by := strings.Split(c.DefaultQuery("by", "title"), ",")

	films, err := h.service.Search(c.Request.Context(), query, by)
	if err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, films)
}

// Recommendations handles GET /users/:id/recommendations
func (h *FilmHandler) Recommendations(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	films, err := h.service.Recommend(c.Request.Context(), userID)
	if err != nil {
		response.HandleError(c, film.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, films)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		response.BadRequest(c, name+" is required")
		return 0, false
	}
	return id, true
}
