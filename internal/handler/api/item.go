package api

import (
	"errors"
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/handler/validation"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoSharer = errors.New("sharer identity not resolved")

type ItemHandler struct {
	comments    commands.CommentCommands
	q           queries.ItemQueries
	errs        *httperr.Mapper
	defaultSize int
}

func NewItemHandler(comments commands.CommentCommands, q queries.ItemQueries, errs *httperr.Mapper, cfg config.Config) *ItemHandler {
	return &ItemHandler{comments: comments, q: q, errs: errs, defaultSize: cfg.Paging.DefaultSize}
}

// @Summary Get item
// @Description Get an item with its comments. The owner also sees the last and next booking.
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param id path int true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Sharer identity is required", nil)
		return
	}
	itemID, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetItem(c.Request.Context(), userID, itemID)
	if err != nil {
		h.errs.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List owned items
// @Description List the acting user's items with last and next booking.
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param from query int false "Index of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListOwnerItems(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Sharer identity is required", nil)
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameters from and size must be integers", nil)
		return
	}
	page, err := q.ToPage(h.defaultSize)
	if err != nil {
		h.errs.Abort(c, err)
		return
	}
	views, err := h.q.ListOwnerItems(c.Request.Context(), userID, page)
	if err != nil {
		h.errs.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Add comment
// @Description Comment on an item after a finished booking of it.
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param id path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Sharer identity is required", nil)
		return
	}
	itemID, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, validation.Message(err), nil)
		return
	}
	result, err := h.comments.AddComment(c.Request.Context(), userID, itemID, req.Text)
	if err != nil {
		h.errs.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAddCommentResult(result))
}
