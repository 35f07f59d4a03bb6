package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusStarted = "started"
	statusStopped = "stopped"

	errStartSimulation = "failed to start simulation"
	errStopSimulation  = "failed to stop simulation"
	errGetState        = "failed to load state"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with a status and include current state if available (best-effort).
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string) {
	resp := gin.H{"status": status}
	if st, err := h.services.Simulation.State(c.Request.Context()); err == nil {
		resp["state"] = st
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Start simulation
// @Description  Idempotent; starting a running simulation is a no-op.
// @Tags         simulation
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      429  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/simulation/start [post]
func (h *Handler) startSimulation(c *gin.Context) {
	if err := h.services.Simulation.Start(c.Request.Context()); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errStartSimulation, "simulation_start_failed", err)
		return
	}
	if h.log != nil {
		h.log.Infow("simulation_started", "client_ip", c.ClientIP())
	}
	h.respondWithStatusAndState(c, statusStarted)
}

// @Summary      Stop simulation
// @Description  Takes effect within one tick. Idempotent.
// @Tags         simulation
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      429  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/simulation/stop [post]
func (h *Handler) stopSimulation(c *gin.Context) {
	if err := h.services.Simulation.Stop(c.Request.Context()); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errStopSimulation, "simulation_stop_failed", err)
		return
	}
	if h.log != nil {
		h.log.Infow("simulation_stopped", "client_ip", c.ClientIP())
	}
	h.respondWithStatusAndState(c, statusStopped)
}

// @Summary      Get simulation state
// @Tags         simulation
// @Produce      json
// @Success      200  {object}  models.SimulationState
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/simulation/state [get]
func (h *Handler) getSimulationState(c *gin.Context) {
	st, err := h.services.Simulation.State(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "simulation_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
