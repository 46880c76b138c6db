package handlers

import (
	"net/http"

	"smart_panel/internal/broadcast"
	"smart_panel/internal/models"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errReadState       = "failed to load state"
	errWriteState      = "failed to update state"
	errToggleRecording = "failed to toggle recording"
	errValidation      = "validation failed"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps validation failures to 400 with the offending
// fields and everything else to a logged 500.
func (h *Handler) respondServiceError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	if ve, ok := models.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, validationResponse{Error: errValidation, Fields: ve.Fields})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err, kv...)
}

// validationResponse is the 400 body for rejected fields.
type validationResponse struct {
	Error  string              `json:"error" example:"validation failed"`
	Fields []models.FieldError `json:"fields"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	resp := gin.H{"status": statusOK}
	// push counters, when the sensor exposes them
	if s, ok := h.services.Sensor.(interface{ Stats() broadcast.Stats }); ok {
		resp["push"] = s.Stats()
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Get panel state
// @Tags         panel
// @Produce      json
// @Success      200  {object}  models.PanelState
// @Failure      500  {object}  map[string]string
// @Router       /api/state [get]
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.ReadState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errReadState, "panel_read_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Update panel state
// @Description  Partial update. Unknown keys are ignored; out-of-range or mistyped values reject the whole request.
// @Tags         panel
// @Accept       json
// @Produce      json
// @Param        body  body      models.PanelState  true  "Any subset of the state fields"
// @Success      200   {object}  models.PanelState
// @Failure      400   {object}  validationResponse
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/state [post]
// @Security     BearerAuth
func (h *Handler) postState(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	patch, err := models.DecodeStatePatch(body)
	if err != nil {
		if ve, ok := models.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, validationResponse{Error: errValidation, Fields: ve.Fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	st, err := h.services.WriteState(c.Request.Context(), patch)
	if err != nil {
		h.respondServiceError(c, errWriteState, "panel_write_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Toggle recording
// @Tags         panel
// @Produce      json
// @Success      200  {object}  map[string]bool  "is_recording"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/recording/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggleRecording(c *gin.Context) {
	on, err := h.services.ToggleRecording(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errToggleRecording, "recording_toggle_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_recording": on})
}
