package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog/log"

	"statusdesk/api"
	"statusdesk/dashboard"
)

// Palette
var (
	colorUp           = lipgloss.Color("#28A745")
	colorDown         = lipgloss.Color("#DC3545")
	colorPending      = lipgloss.Color("#FFC107")
	colorUnauthorized = lipgloss.Color("#FF8C00")
	colorAccent       = lipgloss.Color("#C5A572")
	colorMuted        = lipgloss.Color("#6C757D")
	colorInfo         = lipgloss.Color("#007BFF")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	badgeStyle  = lipgloss.NewStyle().Bold(true)
)

var methodColors = map[string]lipgloss.Color{
	"GET":    colorUp,
	"POST":   colorUnauthorized,
	"PUT":    lipgloss.Color("#6F42C1"),
	"DELETE": colorDown,
	"PATCH":  lipgloss.Color("#17A2B8"),
}

var severityStyles = map[dashboard.Severity]lipgloss.Style{
	dashboard.SeverityInfo:    lipgloss.NewStyle().Foreground(colorInfo),
	dashboard.SeveritySuccess: lipgloss.NewStyle().Foreground(colorUp),
	dashboard.SeverityWarning: lipgloss.NewStyle().Foreground(colorPending),
	dashboard.SeverityError:   lipgloss.NewStyle().Foreground(colorDown),
}

var severityIcons = map[dashboard.Severity]string{
	dashboard.SeverityInfo:    "ℹ",
	dashboard.SeveritySuccess: "✓",
	dashboard.SeverityWarning: "⚠",
	dashboard.SeverityError:   "✗",
}

// statusBadge renders the monitor status the way the dashboard labels it
func statusBadge(status api.MonitorStatus) string {
	switch status {
	case api.StatusUp:
		return badgeStyle.Foreground(colorUp).Render("✓ ONLINE")
	case api.StatusDown:
		return badgeStyle.Foreground(colorDown).Render("✗ OFFLINE")
	case api.StatusPending:
		return badgeStyle.Foreground(colorPending).Render("◷ PENDING")
	case api.StatusUnauthorized:
		return badgeStyle.Foreground(colorUnauthorized).Render("🔒 UNAUTHORIZED")
	default:
		return badgeStyle.Foreground(colorPending).Render("? UNKNOWN")
	}
}

func methodBadge(method string) string {
	color, ok := methodColors[strings.ToUpper(method)]
	if !ok {
		color = colorInfo
	}
	return badgeStyle.Foreground(color).Render(strings.ToUpper(method))
}

func responseCodeCell(code int) string {
	if code == 0 {
		return mutedStyle.Render("N/A")
	}
	color := colorPending
	switch {
	case code >= 200 && code < 300:
		color = colorUp
	case code >= 400:
		color = colorDown
	}
	return lipgloss.NewStyle().Foreground(color).Render(strconv.Itoa(code))
}

func credentialIcon(t api.CredentialType) string {
	switch t {
	case api.CredentialBearer:
		return "🔑"
	case api.CredentialBasic:
		return "👤"
	case api.CredentialOAuth2:
		return "🛡"
	case api.CredentialAPI:
		return "⚙"
	default:
		return "•"
	}
}

func methodIcon(t api.MethodType) string {
	switch t {
	case api.MethodEmail:
		return "✉"
	case api.MethodSlack:
		return "#"
	case api.MethodTeams:
		return "▣"
	case api.MethodWebhook:
		return "↗"
	default:
		return "•"
	}
}

// terminalSink draws resolved records as tables. The selection control is
// the --profile flag: it starts with the flag value and follows SelectProfile.
type terminalSink struct {
	out io.Writer

	mu       sync.Mutex
	selected string
	profiles []api.Profile
}

func newTerminalSink(out io.Writer, selected string) *terminalSink {
	return &terminalSink{out: out, selected: selected}
}

func (s *terminalSink) SelectedProfile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *terminalSink) SelectProfile(id string) {
	s.mu.Lock()
	s.selected = id
	var name string
	for _, p := range s.profiles {
		if p.ID == id {
			name = p.Name
		}
	}
	s.mu.Unlock()
	fmt.Fprintf(s.out, "%s %s %s\n", titleStyle.Render("Active profile:"), name, mutedStyle.Render("("+id+")"))
}

func (s *terminalSink) RenderProfiles(profiles []api.Profile) {
	s.mu.Lock()
	s.profiles = profiles
	s.mu.Unlock()

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		marker := ""
		if p.IsActive {
			marker = lipgloss.NewStyle().Foreground(colorUp).Render("● active")
		}
		rows = append(rows, []string{p.ID, p.Name, p.Description, marker})
	}
	s.section("Profiles", len(profiles), []string{"ID", "Name", "Description", ""}, rows, "No profiles found")
}

func (s *terminalSink) RenderMonitors(monitors []api.Monitor) {
	rows := make([][]string, 0, len(monitors))
	for _, m := range monitors {
		threshold := m.FailureThreshold
		if threshold <= 0 {
			threshold = 1
		}
		interval := m.CheckInterval
		if interval <= 0 {
			interval = 60
		}
		failures := fmt.Sprintf("%d/%d", m.FailureCount, threshold)
		if m.FailureCount > 0 {
			failures = lipgloss.NewStyle().Foreground(colorDown).Render(failures)
		}
		responseTime := mutedStyle.Render("N/A")
		if m.ResponseTime > 0 {
			responseTime = fmt.Sprintf("%d ms", m.ResponseTime)
		}
		lastChecked := "Never"
		if !m.LastChecked.IsZero() {
			lastChecked = m.LastChecked.Local().Format("2006-01-02 15:04:05")
		}
		requestType := m.RequestType
		if requestType == "" {
			requestType = "HTTP"
		}
		rows = append(rows, []string{
			m.ID,
			m.Name,
			methodBadge(m.Method) + " " + strings.ToUpper(requestType),
			m.URL,
			statusBadge(m.State()),
			responseTime,
			responseCodeCell(m.ResponseCode),
			lastChecked,
			fmt.Sprintf("%ds", interval),
			failures,
		})
	}
	s.section("Monitors", len(monitors),
		[]string{"ID", "Name", "Method", "URL", "Status", "Response", "Code", "Last checked", "Check", "Failures"},
		rows, "No monitors found")
	if len(monitors) > 0 {
		fmt.Fprintln(s.out, formatSummary(summarizeMonitors(monitors)))
	}
}

func (s *terminalSink) RenderCredentials(credentials []api.Credential) {
	rows := make([][]string, 0, len(credentials))
	for _, c := range credentials {
		kind := c.Kind()
		rows = append(rows, []string{c.ID, credentialIcon(kind) + " " + c.Name, strings.ToUpper(string(kind))})
	}
	s.section("Credentials", len(credentials), []string{"ID", "Name", "Type"}, rows, "No credentials found")
}

func (s *terminalSink) RenderMethods(methods []api.NotificationMethod) {
	rows := make([][]string, 0, len(methods))
	for _, m := range methods {
		status := lipgloss.NewStyle().Foreground(colorUp).Render("ACTIVE")
		if m.Unauthorized() {
			status = lipgloss.NewStyle().Foreground(colorUnauthorized).Bold(true).Render("🔒 UNAUTHORIZED")
		}
		rows = append(rows, []string{
			m.ID,
			methodIcon(m.Kind()) + " " + m.DisplayName(),
			strings.ToUpper(m.Type),
			m.Details(),
			status,
		})
	}
	s.section("Notification methods", len(methods), []string{"ID", "Name", "Type", "Details", "Status"}, rows,
		"No notification methods found")
}

func (s *terminalSink) ClearMonitors() {
	fmt.Fprintln(s.out, titleStyle.Render("Monitors")+" "+mutedStyle.Render("Loading monitors..."))
}

func (s *terminalSink) ClearCredentials() {
	fmt.Fprintln(s.out, titleStyle.Render("Credentials")+" "+mutedStyle.Render("Loading credentials..."))
}

// ResetMonitorForm has nothing to clear: flags are consumed once per command.
func (s *terminalSink) ResetMonitorForm() {
	log.Debug().Msg("[Render] Monitor form reset")
}

func (s *terminalSink) section(title string, count int, headers []string, rows [][]string, empty string) {
	fmt.Fprintln(s.out, titleStyle.Render(title)+" "+mutedStyle.Render(fmt.Sprintf("(%d)", count)))
	if len(rows) == 0 {
		fmt.Fprintln(s.out, mutedStyle.Render("  "+empty))
		return
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(s.out, t.Render())
}

func formatSummary(s StatsResponse) string {
	parts := []string{
		fmt.Sprintf("%d total", s.Total),
		lipgloss.NewStyle().Foreground(colorUp).Render(fmt.Sprintf("%d up", s.ServicesUp)),
		lipgloss.NewStyle().Foreground(colorDown).Render(fmt.Sprintf("%d down", s.ServicesDown)),
		lipgloss.NewStyle().Foreground(colorPending).Render(fmt.Sprintf("%d pending", s.Pending)),
	}
	if s.Unauthorized > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorUnauthorized).Render(fmt.Sprintf("%d unauthorized", s.Unauthorized)))
	}
	if s.AvgResponseTime > 0 {
		parts = append(parts, fmt.Sprintf("avg %d ms", s.AvgResponseTime))
	}
	if s.Failing > 0 {
		parts = append(parts, fmt.Sprintf("%d failing", s.Failing))
	}
	return mutedStyle.Render("  ") + strings.Join(parts, mutedStyle.Render(" · "))
}

// renderNotification formats one notification line for stderr
func renderNotification(n dashboard.Notification) string {
	style, ok := severityStyles[n.Severity]
	if !ok {
		style = severityStyles[dashboard.SeverityInfo]
	}
	return style.Render(severityIcons[n.Severity] + " " + n.Message)
}
