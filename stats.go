package main

import (
	"github.com/rs/zerolog/log"

	"statusdesk/api"
)

// StatsResponse summarises the monitors of one profile
type StatsResponse struct {
	Total           int
	Active          int
	ServicesUp      int
	ServicesDown    int
	Pending         int
	Unauthorized    int
	Unknown         int
	Failing         int // monitors with a non-zero failure count
	OverallUptime   float64
	AvgResponseTime int
}

// summarizeMonitors calculates the summary line shown above the monitor table
func summarizeMonitors(monitors []api.Monitor) StatsResponse {
	var s StatsResponse
	var totalResponseTime int64
	var responseCount int64

	for _, m := range monitors {
		s.Total++
		if m.IsActive {
			s.Active++
		}
		if m.FailureCount > 0 {
			s.Failing++
		}

		switch m.State() {
		case api.StatusUp:
			s.ServicesUp++
			// Only healthy checks count towards the average
			if m.ResponseTime > 0 {
				totalResponseTime += m.ResponseTime
				responseCount++
			}
		case api.StatusDown:
			s.ServicesDown++
		case api.StatusPending:
			s.Pending++
		case api.StatusUnauthorized:
			s.Unauthorized++
		default:
			s.Unknown++
		}
	}

	if responseCount > 0 {
		s.AvgResponseTime = int(totalResponseTime / responseCount)
	}

	// Uptime here is the share of checked monitors currently up
	if checked := s.ServicesUp + s.ServicesDown + s.Unauthorized; checked > 0 {
		s.OverallUptime = float64(s.ServicesUp) / float64(checked) * 100
	}

	log.Debug().Int("total", s.Total).Int("up", s.ServicesUp).Int("down", s.ServicesDown).
		Int("avg_ms", s.AvgResponseTime).Msg("[Stats] Summarized monitors")
	return s
}
