package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmrate-backend/internal/domains/user"
	"filmrate-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// GetAll handles GET /users
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.HandleError(c, user.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// GetByID handles GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, user.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, u)
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, user.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusCreated, u)
}

// Update handles PUT /users
func (h *UserHandler) Update(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	u, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, user.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, u)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, user.ToHTTPStatus(err), err)
		return
	}
	response.NoContent(c)
}

// AddFriend handles PUT /users/:id/friends/:friendId
func (h *UserHandler) AddFriend(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}

	if err := h.service.AddFriend(c.Request.Context(), userID, friendID); err != nil {
		response.HandleError(c, user.ToHTTPStatus(err), err)
		return
	}
	response.NoContent(c)
}

// ConfirmFriend handles PUT /users/:id/friends/:friendId/confirm
func (h *UserHandler) ConfirmFriend(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}

	if err := h.service.ConfirmFriend(c.Request.Context(), userID, friendID); err != nil {
		response.HandleError(c, user.ToHTTPStatus(err), err)
		return
	}
	response.NoContent(c)
}

// RemoveFriend handles DELETE /users/:id/friends/:friendId
func (h *UserHandler) RemoveFriend(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}

	if err := h.service.RemoveFriend(c.Request.Context(), userID, friendID); err != nil {
		response.HandleError(c, user.ToHTTPStatus(err), err)
		return
	}
	response.NoContent(c)
}

// GetFriends handles GET /users/:id/friends
func (h *UserHandler) GetFriends(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	friends, err := h.service.GetFriends(c.Request.Context(), userID)
	if err != nil {
		response.HandleError(c, user.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, friends)
}

// GetCommonFriends handles GET /users/:id/friends/common/:otherId
func (h *UserHandler) GetCommonFriends(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := pathID(c, "otherId")
	if !ok {
		return
	}

	friends, err := h.service.GetCommonFriends(c.Request.Context(), userID, otherID)
	if err != nil {
		response.HandleError(c, user.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, friends)
}

// GetFeed handles GET /users/:id/feed
func (h *UserHandler) GetFeed(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	events, err := h.service.GetFeed(c.Request.Context(), userID)
	if err != nil {
		response.HandleError(c, user.ToHTTPStatus(err), err)
		return
	}
	response.JSON(c, http.StatusOK, events)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
