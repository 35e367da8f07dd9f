package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
	"github.com/neal92/ServiceBooking-sub000/internal/httpresp"
	"github.com/neal92/ServiceBooking-sub000/internal/monitor"
)

type MonitorHandler struct {
	mon *monitor.Monitor
}

func NewMonitorHandler(mon *monitor.Monitor) *MonitorHandler {
	return &MonitorHandler{mon: mon}
}

type MonitorRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *MonitorHandler) Get(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"enabled":         h.mon.Enabled(),
		"intervalSeconds": int(h.mon.Interval().Seconds()),
	})
}

// Update starts or stops the progression monitor at runtime. The change
// does not survive a restart; MONITOR_ENABLED decides the boot state.
func (h *MonitorHandler) Update(c *gin.Context) {
	var req MonitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Field 'enabled' is required.")
		return
	}

	if *req.Enabled {
		h.mon.Start()
	} else {
		h.mon.Stop()
	}

	h.Get(c)
}
