package api

import (
	"errors"
	"net/http"

	"relove/internal/domain/rental"
	reqdto "relove/internal/handler/dto/request"
	resdto "relove/internal/handler/dto/response"
	"relove/internal/handler/middleware"
	"relove/internal/pkg/errs"
	"relove/internal/usecase/commands"
	"relove/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalCommands commands.RentalCommands
	rentalQueries  queries.RentalQueries
}

func NewRentalHandler(rentalCommands commands.RentalCommands, rentalQueries queries.RentalQueries) *RentalHandler {
	return &RentalHandler{
		rentalCommands: rentalCommands,
		rentalQueries:  rentalQueries,
	}
}

// @Summary Create rental item
// @Description List an item for rental within an availability window
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalItemRequest true "Rental item request"
// @Success 201 {object} resdto.RentalItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) CreateRentalItem(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRentalItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	from, till, err := req.ParseWindow()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.rentalCommands.CreateRentalItem(c.Request.Context(), commands.CreateRentalItemParams{
		OwnerID:           ownerID,
		Title:             req.Title,
		DailyPriceCents:   req.DailyPriceCents,
		AvailableFrom:     from,
		AvailableTill:     till,
		MinimumRentalDays: req.MinimumRentalDays,
		MaximumRentalDays: req.MaximumRentalDays,
	})
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRentalItemView(view))
}

// @Summary List rental items
// @Description List all rental items, newest first
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RentalItemResponse
// @Failure 401 {object} map[string]string
// @Router /rentals [get]
func (h *RentalHandler) ListRentalItems(c *gin.Context) {
	views, err := h.rentalQueries.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.RentalItemResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromRentalItemView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get rental item
// @Description Get rental item by ID
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental item ID"
// @Success 200 {object} resdto.RentalItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetRentalItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental item ID format",
		})
		return
	}

	view, err := h.rentalQueries.GetItemByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRentalItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalItemView(view))
}

// @Summary Delete rental item
// @Description Delete a rental item with no confirmed or active bookings
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental item ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id} [delete]
func (h *RentalHandler) DeleteRentalItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental item ID format",
		})
		return
	}

	err = h.rentalCommands.DeleteRentalItem(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRentalItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental item not found",
			})
		case errors.Is(err, errs.ErrActiveBookingsExist):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Rental item has active bookings",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Check availability
// @Description Check whether a date range is bookable; the result is advisory, booking re-checks under a lock
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental item ID"
// @Param request body reqdto.CheckAvailabilityRequest true "Date range"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id}/check-availability [post]
func (h *RentalHandler) CheckAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental item ID format",
		})
		return
	}

	var req reqdto.CheckAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	start, end, err := req.ParseDates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	result, err := h.rentalQueries.CheckAvailability(c.Request.Context(), id, start, end)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRentalItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental item not found",
			})
		case errors.Is(err, errs.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "End date must not precede start date",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result))
}

// @Summary Create booking
// @Description Book a rental item for a date range with an idempotency key
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param id path string true "Rental item ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse "Replayed result for a completed key"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/book [post]
func (h *RentalHandler) CreateBooking(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental item ID format",
		})
		return
	}

	renterID, ok := middleware.GetUserID(c)
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
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	start, end, err := req.ParseDates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	result, err := h.rentalCommands.CreateBooking(c.Request.Context(), commands.CreateBookingParams{
		RentalItemID: itemID,
		RenterID:     renterID,
		StartDate:    start,
		EndDate:      end,
		Status:       req.Status,
	}, idempotencyKey)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(result.Booking))
}

func (h *RentalHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrRentalItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Rental item not found",
		})
	case errors.Is(err, errs.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "End date must not precede start date",
		})
	case errors.Is(err, errs.ErrOutsideAvailabilityWindow):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Requested dates are outside the availability window",
		})
	case errors.Is(err, errs.ErrBelowMinimumDays):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Requested range is below the minimum rental days",
		})
	case errors.Is(err, errs.ErrExceedsMaximumDays):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Requested range exceeds the maximum rental days",
		})
	case errors.Is(err, errs.ErrDatesUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Requested dates are already booked",
		})
	case errors.Is(err, errs.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Duplicate booking request with different parameters",
		})
	case errors.Is(err, errs.ErrRequestInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking request is currently being processed",
		})
	case errors.Is(err, errs.ErrInvalidBookingStatus):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid booking status",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/bookings/{id} [get]
func (h *RentalHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.rentalQueries.GetBookingByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Transition a booking; terminal transitions release the availability block
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/bookings/{id}/status [put]
func (h *RentalHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.rentalCommands.UpdateBookingStatus(c.Request.Context(), id, rental.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrInvalidBookingStatus):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid booking status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
