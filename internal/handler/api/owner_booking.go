package api

import (
	"context"
	"net/http"

	"machine-rental/internal/domain/booking"
	reqdto "machine-rental/internal/handler/dto/request"
	resdto "machine-rental/internal/handler/dto/response"
	"machine-rental/internal/handler/middleware"
	"machine-rental/internal/usecase/commands"
	"machine-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OwnerBookingHandler serves the approval workflow on incoming booking
// requests.
type OwnerBookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewOwnerBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *OwnerBookingHandler {
	return &OwnerBookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary List incoming bookings
// @Tags owner-bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.BookingListResponse
// @Router /owner/bookings [get]
func (h *OwnerBookingHandler) List(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	status, err := parseStatusFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status filter",
		})
		return
	}

	items, err := h.bookingQueries.ListForOwner(c.Request.Context(), ownerID, status, parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := make([]resdto.BookingListResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *resdto.FromBookingListItem(&items[i], booking.ActorOwner))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Booking detail
// @Tags owner-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /owner/bookings/{id} [get]
func (h *OwnerBookingHandler) Get(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	view, err := h.bookingQueries.GetForOwner(c.Request.Context(), ownerID, bookingID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view, booking.ActorOwner))
}

// @Summary Approve a booking
// @Tags owner-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ApproveBookingRequest true "Approval with instance assignment"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /owner/bookings/{id}/approve [post]
func (h *OwnerBookingHandler) Approve(c *gin.Context) {
	ownerID, bookingID, ok := h.ownerAndBooking(c)
	if !ok {
		return
	}

	var req reqdto.ApproveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.Approve(c.Request.Context(), commands.ApproveBookingParams{
		OwnerID:    ownerID,
		BookingID:  bookingID,
		InstanceID: req.InstanceID,
		Message:    req.Message,
	}); err != nil {
		respondBookingError(c, err)
		return
	}

	h.respondWithBooking(c, ownerID, bookingID)
}

// @Summary Reject a booking
// @Tags owner-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.DeclineBookingRequest true "Rejection reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /owner/bookings/{id}/reject [post]
func (h *OwnerBookingHandler) Reject(c *gin.Context) {
	h.decline(c, h.bookingCommands.Reject)
}

// @Summary Send a booking back for changes
// @Tags owner-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.DeclineBookingRequest true "Send-back reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /owner/bookings/{id}/send-back [post]
func (h *OwnerBookingHandler) SendBack(c *gin.Context) {
	h.decline(c, h.bookingCommands.SendBack)
}

// @Summary Send a message on a booking
// @Tags owner-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.MessageResponse
// @Failure 404 {object} map[string]string
// @Router /owner/bookings/{id}/messages [post]
func (h *OwnerBookingHandler) SendMessage(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	sendBookingMessage(c, h.bookingCommands, ownerID)
}

func (h *OwnerBookingHandler) decline(c *gin.Context, apply func(ctx context.Context, params commands.DeclineBookingParams) error) {
	ownerID, bookingID, ok := h.ownerAndBooking(c)
	if !ok {
		return
	}

	var req reqdto.DeclineBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := apply(c.Request.Context(), commands.DeclineBookingParams{
		OwnerID:   ownerID,
		BookingID: bookingID,
		Reason:    req.Reason,
	}); err != nil {
		respondBookingError(c, err)
		return
	}

	h.respondWithBooking(c, ownerID, bookingID)
}

func (h *OwnerBookingHandler) ownerAndBooking(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, uuid.Nil, false
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return uuid.Nil, uuid.Nil, false
	}
	return ownerID, bookingID, true
}

func (h *OwnerBookingHandler) respondWithBooking(c *gin.Context, ownerID, bookingID uuid.UUID) {
	view, err := h.bookingQueries.GetForOwner(c.Request.Context(), ownerID, bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view, booking.ActorOwner))
}
