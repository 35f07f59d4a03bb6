package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errLoadSnapshot = "failed to load dashboard"
	errRenderPage   = "failed to render dashboard"
)

type snapshotQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// @Summary      Dashboard page
// @Tags         dashboard
// @Produce      html
// @Success      200
// @Failure      500  {object}  map[string]string
// @Router       / [get]
func (h *Handler) dashboardPage(c *gin.Context) {
	snap, err := h.services.Monitoring.Snapshot(c.Request.Context(), h.opts.DisplayLimit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadSnapshot, "dashboard_snapshot_failed", err)
		return
	}
	var buf bytes.Buffer
	if err := h.view.RenderPage(&buf, snap); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRenderPage, "dashboard_render_failed", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// @Summary      Dashboard snapshot
// @Description  Newest records (up to limit), every active alert and per-severity counts.
// @Tags         dashboard
// @Produce      json
// @Param        limit  query  int  false  "Rows to return, 1..display limit"
// @Success      200  {object}  models.DashboardSnapshot
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	var q snapshotQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query: " + err.Error()})
		return
	}
	limit := h.opts.DisplayLimit
	if q.Limit > 0 {
		if q.Limit > h.opts.DisplayLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("limit must be <= %d", h.opts.DisplayLimit)})
			return
		}
		limit = q.Limit
	}

	snap, err := h.services.Monitoring.Snapshot(c.Request.Context(), limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadSnapshot, "dashboard_snapshot_failed", err, "limit", limit)
		return
	}
	c.JSON(http.StatusOK, snap)
}
