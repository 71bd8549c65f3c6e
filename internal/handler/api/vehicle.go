package api

import (
	"net/http"
	"strconv"

	"rentora/internal/infra"
	"rentora/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	vehicleQueries queries.VehicleQueries
}

func NewVehicleHandler(vehicleQueries queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{
		vehicleQueries: vehicleQueries,
	}
}

// @Summary List available vehicles
// @Description List vehicles currently open for booking
// @Tags vehicles
// @Produce json
// @Param limit query int false "Maximum number of vehicles to return"
// @Success 200 {array} queries.VehicleView
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	vehicles, err := h.vehicleQueries.ListAvailable(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// @Summary Get vehicle
// @Description Get a vehicle by ID
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} queries.VehicleView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	vehicle, err := h.vehicleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}
