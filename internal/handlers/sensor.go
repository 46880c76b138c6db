package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Latest temperature
// @Tags         sensor
// @Produce      json
// @Success      200  {object}  models.TemperatureReading
// @Failure      503  {object}  map[string]string
// @Router       /api/temperature [get]
func (h *Handler) getTemperature(c *gin.Context) {
	r, ok := h.services.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no reading yet"})
		return
	}
	c.JSON(http.StatusOK, r)
}
