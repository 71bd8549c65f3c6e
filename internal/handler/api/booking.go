package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "rentora/internal/handler/dto/request"
	"rentora/internal/handler/middleware"
	"rentora/internal/pkg/errs"
	"rentora/internal/usecase/commands"
	"rentora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a booking; the price is recomputed server-side
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
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

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToDomain(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		case errors.Is(err, errs.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Vehicle is already booked for the requested dates",
			})
		case errors.Is(err, errs.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Return date must be after pickup date",
			})
		case errors.Is(err, errs.ErrMissingRate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Vehicle has no rate for the requested rental type",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid rental parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Get booking
// @Description Get one of the current user's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		// Other users' bookings look like missing bookings.
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List bookings
// @Description List the current user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of bookings to return"
// @Success 200 {array} queries.BookingListItem
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}
