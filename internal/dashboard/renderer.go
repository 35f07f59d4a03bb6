// Package dashboard renders the telemetry dashboard page and the live table
// and alerts fragments pushed over the WebSocket stream.
package dashboard

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"process_control_sim/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Title is the page heading.
const Title = "🚜 John Deere Process Control Simulation"

// Links holds the URLs the page script talks to.
type Links struct {
	StartURL     string
	StopURL      string
	StreamPath   string
	DownloadURL  string
	DownloadName string
}

// Renderer draws dashboard HTML. Tables never exceed the display limit.
type Renderer struct {
	tmpl  *template.Template
	limit int
	links Links
}

type pageData struct {
	Links
	Title    string
	Snapshot models.DashboardSnapshot
	Records  []models.TelemetryRecord
}

func NewRenderer(limit int, links Links) (*Renderer, error) {
	if limit < 1 {
		return nil, fmt.Errorf("display limit must be >= 1, got %d", limit)
	}
	funcs := template.FuncMap{
		"statusBadge":   StatusBadge,
		"severityBadge": SeverityBadge,
		"reading":       formatReading,
	}
	tmpl, err := template.New("dashboard").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, limit: limit, links: links}, nil
}

// Limit is the maximum number of rows in the live table.
func (r *Renderer) Limit() int { return r.limit }

// RenderPage writes the full dashboard document for snap.
func (r *Renderer) RenderPage(w io.Writer, snap models.DashboardSnapshot) error {
	return r.tmpl.ExecuteTemplate(w, "page", pageData{
		Links:    r.links,
		Title:    Title,
		Snapshot: snap,
		Records:  r.truncate(snap.Records),
	})
}

// RenderTable writes the live table with at most Limit rows, newest first.
func (r *Renderer) RenderTable(w io.Writer, records []models.TelemetryRecord) error {
	return r.tmpl.ExecuteTemplate(w, "table", r.truncate(records))
}

// RenderAlerts writes the alerts panel. Every alert is listed.
func (r *Renderer) RenderAlerts(w io.Writer, alerts []models.TelemetryRecord) error {
	return r.tmpl.ExecuteTemplate(w, "alerts", alerts)
}

// Fragments renders the table and alerts panel for one stream frame.
func (r *Renderer) Fragments(snap models.DashboardSnapshot) (table, alerts string, err error) {
	var buf bytes.Buffer
	if err := r.RenderTable(&buf, snap.Records); err != nil {
		return "", "", fmt.Errorf("render table: %w", err)
	}
	table = buf.String()

	buf.Reset()
	if err := r.RenderAlerts(&buf, snap.Alerts); err != nil {
		return "", "", fmt.Errorf("render alerts: %w", err)
	}
	return table, buf.String(), nil
}

func (r *Renderer) truncate(records []models.TelemetryRecord) []models.TelemetryRecord {
	if len(records) > r.limit {
		return records[:r.limit]
	}
	return records
}
