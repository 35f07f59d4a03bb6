package dashboard

import (
	"html/template"
	"strconv"

	"process_control_sim/internal/models"
)

// Badge markup. The class names are styled in page.html.
const (
	statusOKBadge      = `<span class='status-ok'>🟢 OK</span>`
	statusAlertBadge   = `<span class='status-alert'>🔴 ALERT</span>`
	severityWarnBadge  = `<span class='sev-warning'>⚠️ WARNING</span>`
	severityCritBadge  = `<span class='sev-critical'>🔥 CRITICAL</span>`
	severityEmergBadge = `<span class='sev-emergency'>🚨 EMERGENCY</span>`
	severityOKBadge    = `<span class='status-ok'>✅ OK</span>`
)

// StatusBadge renders the binary status. Anything other than OK is an alert.
func StatusBadge(status string) template.HTML {
	if status == models.StatusOK {
		return template.HTML(statusOKBadge)
	}
	return template.HTML(statusAlertBadge)
}

// SeverityBadge renders a severity tier. Unknown values render as OK.
func SeverityBadge(sev models.Severity) template.HTML {
	switch sev {
	case models.SeverityWarning:
		return template.HTML(severityWarnBadge)
	case models.SeverityCritical:
		return template.HTML(severityCritBadge)
	case models.SeverityEmergency:
		return template.HTML(severityEmergBadge)
	default:
		return template.HTML(severityOKBadge)
	}
}

func formatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
