package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"process_control_sim/internal/metrics"
	"process_control_sim/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000 // 10s in ms

	msgTypeSnapshot = "snapshot"
	msgTypeError    = "error"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// streamFrame is one dashboard refresh: counters, the newest record and
// the pre-rendered table and alerts fragments.
type streamFrame struct {
	Running    bool                    `json:"running"`
	Total      int                     `json:"total"`
	AlertCount int                     `json:"alert_count"`
	Latest     *models.TelemetryRecord `json:"latest,omitempty"`
	TableHTML  string                  `json:"table_html"`
	AlertsHTML string                  `json:"alerts_html"`
}

// Upgrader for HTTP -> WebSocket. The page is served from the same origin.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	metrics.ActiveStreams.Inc()
	defer metrics.ActiveStreams.Dec()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	// Send the first frame immediately.
	if err := h.sendSnapshot(c.Request.Context(), conn); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendSnapshot(c.Request.Context(), conn); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds,
// falling back to the configured stream interval.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return h.opts.StreamInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Debugw("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// sendSnapshot builds one frame and writes it with a write deadline. On
// failure an error envelope is sent before the error is returned.
func (h *Handler) sendSnapshot(ctx context.Context, conn *websocket.Conn) error {
	frame, err := h.buildFrame(ctx)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_snapshot_failed", "err", err)
		}
		_ = conn.WriteJSON(wsEnvelope{Type: msgTypeError, Error: errLoadSnapshot})
		return err
	}
	return conn.WriteJSON(wsEnvelope{Type: msgTypeSnapshot, Data: frame})
}

func (h *Handler) buildFrame(ctx context.Context) (streamFrame, error) {
	snap, err := h.services.Monitoring.Snapshot(ctx, h.opts.DisplayLimit)
	if err != nil {
		return streamFrame{}, err
	}
	table, alerts, err := h.view.Fragments(snap)
	if err != nil {
		return streamFrame{}, err
	}
	return streamFrame{
		Running:    snap.Running,
		Total:      snap.Total,
		AlertCount: len(snap.Alerts),
		Latest:     snap.Latest,
		TableHTML:  table,
		AlertsHTML: alerts,
	}, nil
}
