package api

import (
	"errors"
	"net/http"

	reqdto "rentora/internal/handler/dto/request"
	resdto "rentora/internal/handler/dto/response"
	"rentora/internal/pkg/errs"
	"rentora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteQueries queries.QuoteQueries
}

func NewQuoteHandler(quoteQueries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteQueries: quoteQueries,
	}
}

// @Summary Generate quote
// @Description Price a rental request without creating a booking
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.quoteQueries.GetQuote(c.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
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

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
