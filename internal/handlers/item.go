package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"olivier/internal/apperror"
	"olivier/internal/dto"
	"olivier/internal/models"
	"olivier/internal/store"
	"olivier/internal/utils"
)

type ItemStore interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	MaxItem(ctx context.Context) (*models.Item, error)
	ListItemIDs(ctx context.Context, category models.Category, order store.ListOrder, limit int) ([]int64, error)
}

type ItemHandler struct {
	store          ItemStore
	renderMarkdown bool
}

func NewItemHandler(s ItemStore, renderMarkdown bool) *ItemHandler {
	return &ItemHandler{store: s, renderMarkdown: renderMarkdown}
}

// Get 按 ID 获取条目
//
//	@Summary	Get an item
//	@Tags		Items
//	@Produce	json
//	@Param		id	path		int	true	"Item ID"
//	@Success	200	{object}	dto.StoryResponse	"story, ask or comment shape depending on category"
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/v0/item/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RenderError(c, err)
		return
	}

	item, err := h.store.GetItem(c.Request.Context(), id)
	if err != nil {
		RenderError(c, notFound(err, apperror.ItemNotFound(id)))
		return
	}
	c.JSON(http.StatusOK, h.response(*item))
}

// Create 发布 story / ask / comment
//
//	@Summary	Create an item
//	@Tags		Items
//	@Accept		json
//	@Produce	json
//	@Param		item	body		dto.PostItemRequest	true	"Item to create"
//	@Success	201		{object}	dto.StoryResponse	"story, ask or comment shape depending on category"
//	@Failure	415		{object}	dto.ErrorResponse
//	@Failure	422		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/api/v0/item [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req dto.PostItemRequest
	if err := bindJSON(c, &req); err != nil {
		RenderError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		RenderError(c, err)
		return
	}

	item, err := req.Item()
	if err != nil {
		RenderError(c, err)
		return
	}

	if err := h.store.CreateItem(c.Request.Context(), &item); err != nil {
		if errors.Is(err, store.ErrParentNotFound) {
			RenderError(c, apperror.Validation(fmt.Sprintf("comment's parent %d does not exist", item.Parent)))
			return
		}
		RenderError(c, apperror.FromDatabase(err))
		return
	}

	c.JSON(http.StatusCreated, h.response(item))
}

// Max 返回 ID 最大的条目，库为空时返回 204
//
//	@Summary	Get the item with the largest id
//	@Tags		Items
//	@Produce	json
//	@Success	200	{object}	dto.StoryResponse
//	@Success	204
//	@Router		/api/v0/maxitem [get]
func (h *ItemHandler) Max(c *gin.Context) {
	item, err := h.store.MaxItem(c.Request.Context())
	if err != nil {
		RenderError(c, notFound(err, apperror.ItemEmpty()))
		return
	}
	c.JSON(http.StatusOK, h.response(*item))
}

// response projects item, adding text_html when markdown rendering is on.
// The stored text is never rewritten.
func (h *ItemHandler) response(item models.Item) dto.ItemResponse {
	resp := dto.NewItemResponse(item)
	if h.renderMarkdown {
		resp = dto.WithTextHTML(resp, utils.RenderText)
	}
	return resp
}

type listQuery struct {
	Limit int `form:"limit"`
}

// List returns a handler listing ids of one category in the given order.
//
//	@Summary	List item ids
//	@Tags		Items
//	@Produce	json
//	@Param		limit	query	int	false	"Maximum number of ids"	default(500)	maximum(500)
//	@Success	200		{array}	int
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/api/v0/topstories [get]
//	@Router		/api/v0/newstories [get]
//	@Router		/api/v0/topasks [get]
//	@Router		/api/v0/newasks [get]
func (h *ItemHandler) List(category models.Category, order store.ListOrder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q listQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			RenderError(c, apperror.BadQuery(err))
			return
		}

		ids, err := h.store.ListItemIDs(c.Request.Context(), category, order, q.Limit)
		if err != nil {
			RenderError(c, apperror.FromDatabase(err))
			return
		}
		c.JSON(http.StatusOK, ids)
	}
}
