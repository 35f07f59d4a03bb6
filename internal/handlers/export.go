package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const errExportLogs = "failed to export logs"

// @Summary      Download simulation logs
// @Description  Whole in-memory collection as CSV, newest first, with a Severity column.
// @Tags         logs
// @Produce      text/csv
// @Success      200
// @Failure      429  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/logs/export [get]
func (h *Handler) exportLogs(c *gin.Context) {
	var buf bytes.Buffer
	n, err := h.services.Export.WriteCSV(c.Request.Context(), &buf)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errExportLogs, "logs_export_failed", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+h.opts.DownloadName+`"`)
	c.Header("X-Record-Count", strconv.Itoa(n))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
