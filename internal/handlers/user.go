package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"olivier/internal/apperror"
	"olivier/internal/dto"
	"olivier/internal/models"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	MaxUser(ctx context.Context) (*models.User, error)
	UpsertUser(ctx context.Context, id int64, name string, about *string) (*models.User, bool, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(s UserStore) *UserHandler {
	return &UserHandler{store: s}
}

// Get - 用户信息 /user/:id
//
//	@Summary	Get a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/v0/user/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RenderError(c, err)
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		RenderError(c, notFound(err, apperror.UserNotFound(id)))
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

// Create - 注册用户
//
//	@Summary	Create a user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		dto.PostUserRequest	true	"User to create"
//	@Success	201		{object}	dto.UserResponse
//	@Failure	422		{object}	dto.ErrorResponse
//	@Router		/api/v0/user [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.PostUserRequest
	if err := bindJSON(c, &req); err != nil {
		RenderError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		RenderError(c, err)
		return
	}

	user := req.User()
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		RenderError(c, apperror.FromDatabase(err))
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Put - 更新用户，不存在时以该 ID 创建
//
//	@Summary	Update or create a user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"User ID"
//	@Param		user	body		dto.PostUserRequest	true	"New name and about"
//	@Success	200		{object}	dto.UserResponse	"updated"
//	@Success	201		{object}	dto.UserResponse	"created"
//	@Failure	422		{object}	dto.ErrorResponse
//	@Router		/api/v0/user/{id} [put]
func (h *UserHandler) Put(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RenderError(c, err)
		return
	}

	var req dto.PostUserRequest
	if err := bindJSON(c, &req); err != nil {
		RenderError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		RenderError(c, err)
		return
	}

	user, created, err := h.store.UpsertUser(c.Request.Context(), id, req.Name, req.About)
	if err != nil {
		RenderError(c, apperror.FromDatabase(err))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.NewUserResponse(*user))
}

// Delete - 删除用户；删除了记录返回 200，否则 204
//
//	@Summary	Delete a user
//	@Tags		Users
//	@Param		id	path	int	true	"User ID"
//	@Success	200	"deleted"
//	@Success	204	"nothing to delete"
//	@Router		/api/v0/user/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RenderError(c, err)
		return
	}

	n, err := h.store.DeleteUser(c.Request.Context(), id)
	if err != nil {
		RenderError(c, apperror.FromDatabase(err))
		return
	}
	if n == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.Status(http.StatusOK)
}

// Max - ID 最大的用户
//
//	@Summary	Get the user with the largest id
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	dto.UserResponse
//	@Success	204
//	@Router		/api/v0/maxuser [get]
func (h *UserHandler) Max(c *gin.Context) {
	user, err := h.store.MaxUser(c.Request.Context())
	if err != nil {
		RenderError(c, notFound(err, apperror.UserEmpty()))
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}
