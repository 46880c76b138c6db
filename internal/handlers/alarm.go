package handlers

import (
	"net/http"

	"smart_panel/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errSetAlarm    = "failed to set alarm"
	errAdjustAlarm = "failed to adjust alarm"
)

// SetAlarmRequest commits an alarm time. An omitted part commits the staged value.
type SetAlarmRequest struct {
	Hour   *int `json:"hour,omitempty" example:"7"`
	Minute *int `json:"minute,omitempty" example:"30"`
}

// AdjustAlarmRequest moves the staged hour or minute by Delta with wraparound.
type AdjustAlarmRequest struct {
	// Allowed: hour, minute
	Field string `json:"field" binding:"required" example:"hour"`
	Delta *int   `json:"delta" binding:"required" example:"-1"`
}

// @Summary      Set alarm
// @Description  Commits hour and minute and records the HH:MM alarm time. An omitted part keeps the staged value; out-of-range values are rejected.
// @Tags         alarm
// @Accept       json
// @Produce      json
// @Param        body  body      SetAlarmRequest  true  "Alarm time"
// @Success      200   {object}  map[string]string  "alarm_time"
// @Failure      400   {object}  validationResponse
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/alarm/set [post]
// @Security     BearerAuth
func (h *Handler) setAlarm(c *gin.Context) {
	var req SetAlarmRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	at, err := h.services.CommitAlarm(c.Request.Context(), req.Hour, req.Minute)
	if err != nil {
		h.respondServiceError(c, errSetAlarm, "alarm_set_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alarm_time": at})
}

// @Summary      Adjust staged alarm
// @Description  Hour wraps modulo 24, minute modulo 60. The committed alarm time is not changed.
// @Tags         alarm
// @Accept       json
// @Produce      json
// @Param        body  body      AdjustAlarmRequest  true  "Field and delta"
// @Success      200   {object}  models.PanelState
// @Failure      400   {object}  validationResponse
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/alarm/adjust [post]
// @Security     BearerAuth
func (h *Handler) adjustAlarm(c *gin.Context) {
	var req AdjustAlarmRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	st, err := h.services.AdjustAlarm(c.Request.Context(), service.AlarmField(req.Field), *req.Delta)
	if err != nil {
		h.respondServiceError(c, errAdjustAlarm, "alarm_adjust_failed", err, "field", req.Field)
		return
	}
	c.JSON(http.StatusOK, st)
}
