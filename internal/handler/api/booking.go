package api

import (
	"errors"
	"net/http"

	"machine-rental/internal/domain/booking"
	reqdto "machine-rental/internal/handler/dto/request"
	resdto "machine-rental/internal/handler/dto/response"
	"machine-rental/internal/handler/middleware"
	"machine-rental/internal/infra"
	"machine-rental/internal/usecase/commands"
	"machine-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientBookingHandler serves the client side of the booking exchange.
type ClientBookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewClientBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *ClientBookingHandler {
	return &ClientBookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Request a booking
// @Tags client-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /client/bookings [post]
func (h *ClientBookingHandler) Create(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), clientID, idempotencyKey, commands.CreateBookingParams{
		MachineID:      req.MachineID,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		RequestedCount: req.RequestedCount,
		Message:        req.Message,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	view, err := h.bookingQueries.GetForClient(c.Request.Context(), clientID, result.BookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	status := http.StatusCreated
	if result.AlreadyProcessed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(view, booking.ActorClient))
}

// @Summary List my bookings
// @Tags client-bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.BookingListResponse
// @Router /client/bookings [get]
func (h *ClientBookingHandler) List(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
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

	items, err := h.bookingQueries.ListForClient(c.Request.Context(), clientID, status, parsePage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := make([]resdto.BookingListResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *resdto.FromBookingListItem(&items[i], booking.ActorClient))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Booking detail
// @Tags client-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /client/bookings/{id} [get]
func (h *ClientBookingHandler) Get(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
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

	view, err := h.bookingQueries.GetForClient(c.Request.Context(), clientID, bookingID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view, booking.ActorClient))
}

// @Summary Cancel a booking
// @Tags client-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /client/bookings/{id}/cancel [post]
func (h *ClientBookingHandler) Cancel(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
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

	if err := h.bookingCommands.Cancel(c.Request.Context(), commands.CancelBookingParams{
		ClientID:  clientID,
		BookingID: bookingID,
	}); err != nil {
		respondBookingError(c, err)
		return
	}

	view, err := h.bookingQueries.GetForClient(c.Request.Context(), clientID, bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view, booking.ActorClient))
}

// @Summary Send a message on a booking
// @Tags client-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.MessageResponse
// @Failure 404 {object} map[string]string
// @Router /client/bookings/{id}/messages [post]
func (h *ClientBookingHandler) SendMessage(c *gin.Context) {
	clientID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	sendBookingMessage(c, h.bookingCommands, clientID)
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return uuid.Nil, errors.New("Idempotency-Key header is required")
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("Idempotency-Key must be a valid UUID")
	}
	return key, nil
}

func parseStatusFilter(c *gin.Context) (*booking.Status, error) {
	raw := c.Query("status")
	if raw == "" {
		return nil, nil
	}
	status := booking.Status(raw)
	if !status.IsValid() {
		return nil, booking.ErrInvalidStatus
	}
	return &status, nil
}

func sendBookingMessage(c *gin.Context, cmds commands.BookingCommands, actorID uuid.UUID) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	msg, err := cmds.SendMessage(c.Request.Context(), commands.SendMessageParams{
		ActorID:   actorID,
		BookingID: bookingID,
		Body:      req.Body,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMessage(msg))
}

// respondBookingError maps the booking error taxonomy onto status codes.
// Access violations deliberately read as 404 so one side cannot enumerate the
// other side's bookings.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound),
		errors.Is(err, commands.ErrMachineNotFound),
		errors.Is(err, commands.ErrNotMachineOwner),
		errors.Is(err, commands.ErrNotBookingClient),
		errors.Is(err, commands.ErrNotBookingParticipant),
		errors.Is(err, queries.ErrBookingForbidden),
		errors.Is(err, queries.ErrBookingNotFound),
		infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrInstanceNotAvailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Instance cannot serve this booking",
		})
	case errors.Is(err, commands.ErrMachineNotRentable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Machine is not accepting bookings",
		})
	case errors.Is(err, commands.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Not enough instances available for the requested period",
		})
	case errors.Is(err, commands.ErrIdempotencyKeyReused):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Idempotency key was used with a different request",
		})
	case errors.Is(err, commands.ErrIdempotencyInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Request is currently being processed",
		})
	case errors.Is(err, commands.ErrInvalidPeriod),
		errors.Is(err, booking.ErrInvalidRequestedCount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrActorNotAllowed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking status does not allow this action",
		})
	case errors.Is(err, booking.ErrReasonRequired),
		errors.Is(err, booking.ErrEmptyMessage),
		errors.Is(err, booking.ErrInstanceRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
