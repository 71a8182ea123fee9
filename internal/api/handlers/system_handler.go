package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemHandler serves the root banner and the health endpoint.
type SystemHandler struct {
	startedAt time.Time
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{startedAt: time.Now()}
}

// Root responds with a plain-text liveness banner.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("AlcanciApp API is running"))
}

// Health reports service identity, uptime and host resource usage.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	payload := envelope{
		"name":   "alcanciapp-api",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	}

	// Host stats are best effort; the endpoint stays healthy without them.
	if vm, err := mem.VirtualMemory(); err == nil {
		payload["mem_used_percent"] = vm.UsedPercent
	} else {
		log.Warn().Err(err).Msg("Failed to read memory stats")
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		payload["cpu_percent"] = percents[0]
	} else if err != nil {
		log.Warn().Err(err).Msg("Failed to read CPU stats")
	}

	writeJSON(w, http.StatusOK, payload)
}
