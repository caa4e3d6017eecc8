package api

import (
	"context"
	"net/http"
	"strconv"

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

type BookingHandler struct {
	cmds        commands.BookingCommands
	q           queries.BookingQueries
	errs        *httperr.Mapper
	defaultSize int
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, errs *httperr.Mapper, cfg config.Config) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, errs: errs, defaultSize: cfg.Paging.DefaultSize}
}

// @Summary Create booking
// @Description Request a booking of an item. The booking starts WAITING.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Sharer identity is required", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, validation.Message(err), nil)
		return
	}
	snap, err := h.cmds.Create(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		h.errs.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snap))
}

// @Summary Decide booking
// @Description Approve or reject a waiting booking. Only the item owner may decide.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param id path int true "Booking ID"
// @Param approved query bool true "Approve (true) or reject (false)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Patch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Sharer identity is required", nil)
		return
	}
	bookingID, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.DecisionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter approved must be true or false", nil)
		return
	}
	snap, err := h.cmds.Patch(c.Request.Context(), userID, bookingID, *q.Approved)
	if err != nil {
		h.errs.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snap))
}

// @Summary Get booking
// @Description Get a booking by ID. Visible to its booker and the item owner.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Sharer identity is required", nil)
		return
	}
	bookingID, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, bookingID)
	if err != nil {
		h.errs.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List bookings made by the acting user, filtered by state.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param state query string false "ALL, PAST, CURRENT, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Index of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	h.list(c, h.q.ListByBooker)
}

// @Summary List bookings of owned items
// @Description List bookings of items owned by the acting user, filtered by state.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param state query string false "ALL, PAST, CURRENT, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Index of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	h.list(c, h.q.ListByOwner)
}

type listBookings func(ctx context.Context, userID int64, state string, page queries.Page) ([]*queries.BookingView, error)

func (h *BookingHandler) list(c *gin.Context, fetch listBookings) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoSharer, "Sharer identity is required", nil)
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameters from and size must be integers", nil)
		return
	}
	page, err := q.ToPage(h.defaultSize)
	if err != nil {
		h.errs.Abort(c, err)
		return
	}
	views, err := fetch(c.Request.Context(), userID, q.State, page)
	if err != nil {
		h.errs.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
