package api

import (
	"errors"
	"net/http"

	reqdto "rentora/internal/handler/dto/request"
	resdto "rentora/internal/handler/dto/response"
	"rentora/internal/handler/middleware"
	"rentora/internal/pkg/errs"
	"rentora/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExtensionHandler struct {
	extensionCommands commands.ExtensionCommands
}

func NewExtensionHandler(extensionCommands commands.ExtensionCommands) *ExtensionHandler {
	return &ExtensionHandler{
		extensionCommands: extensionCommands,
	}
}

// @Summary Get extension options
// @Description Check eligibility and the selectable return-date window
// @Tags extensions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ExtensionOptionsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/extension [get]
func (h *ExtensionHandler) GetExtensionOptions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	options, err := h.extensionCommands.GetExtensionOptions(c.Request.Context(), userID, bookingID)
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

	c.JSON(http.StatusOK, resdto.FromExtensionOptions(options))
}

// @Summary Request extension
// @Description Request an extension to a new return date
// @Tags extensions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ExtensionRequest true "Extension request"
// @Success 201 {object} resdto.ExtensionDecisionResponse
// @Success 200 {object} resdto.ExtensionDecisionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings/{id}/extension [post]
func (h *ExtensionHandler) RequestExtension(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.ExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	decision, err := h.extensionCommands.RequestExtension(c.Request.Context(), userID, bookingID, req.NewReturnDate)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrExtensionOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "New return date is outside the allowed extension window",
			})
		case errors.Is(err, errs.ErrAvailabilityCheckFault):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Availability could not be verified, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusOK
	if decision.CanExtend {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromExtensionDecision(decision))
}
