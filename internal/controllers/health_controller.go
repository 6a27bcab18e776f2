package controllers

import (
	"fmt"
	"net/http"
	"pitwall/internal/services"
	"time"
)

type HealthController struct {
	sessions  services.SessionServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status           string  `json:"status"`
	Uptime           string  `json:"uptime"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
	ActiveSessions   int     `json:"active_sessions"`
	ActiveDashboards int     `json:"active_dashboards"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:           "ok",
		Uptime:           formatDuration(uptime),
		UptimeSeconds:    uptime.Seconds(),
		ActiveSessions:   hc.sessions.ActiveSessions(),
		ActiveDashboards: hc.sessions.ActiveDashboards(),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(sessions services.SessionServiceInterface) *HealthController {
	return &HealthController{
		sessions:  sessions,
		startTime: time.Now(),
	}
}
