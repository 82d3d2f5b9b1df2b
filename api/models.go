package api

//go:generate easyjson -all models.go

import (
	"strings"
	"time"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
)

// Profile is a tenant/workspace scope. The backend asserts at most one
// active profile at a time.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileList is the payload of GET /api/profiles.
type ProfileList []Profile

// Active returns the first profile flagged active.
func (l ProfileList) Active() (Profile, bool) {
	for _, p := range l {
		if p.IsActive {
			return p, true
		}
	}
	return Profile{}, false
}

// MonitorStatus is the health state reported by the monitoring engine.
type MonitorStatus string

const (
	StatusUp           MonitorStatus = "up"
	StatusDown         MonitorStatus = "down"
	StatusPending      MonitorStatus = "pending"
	StatusUnauthorized MonitorStatus = "unauthorized"
	StatusUnknown      MonitorStatus = "unknown"
)

// ParseMonitorStatus maps a backend status string onto the known set.
// Matching is case-insensitive and anything unrecognised is unknown.
func ParseMonitorStatus(s string) MonitorStatus {
	switch MonitorStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusUp:
		return StatusUp
	case StatusDown:
		return StatusDown
	case StatusPending:
		return StatusPending
	case StatusUnauthorized:
		return StatusUnauthorized
	default:
		return StatusUnknown
	}
}

// Monitor is a periodic health-check target owned by one profile.
// Status and telemetry fields are written by the backend only.
type Monitor struct {
	ID               string    `json:"id"`
	ProfileID        string    `json:"profile_id"`
	Name             string    `json:"name"`
	URL              string    `json:"url"`
	Type             string    `json:"type"`
	Method           string    `json:"method"`
	RequestType      string    `json:"request_type"`
	CheckInterval    int       `json:"check_interval"`    // seconds
	FailureThreshold int       `json:"failure_threshold"` // consecutive failures before down
	FailureCount     int       `json:"failure_count"`
	Timeout          int       `json:"timeout"` // seconds
	IsActive         bool      `json:"is_active"`
	CredentialID     string    `json:"credential_id,omitempty"`
	Status           string    `json:"status"`
	LastChecked      time.Time `json:"last_checked"`
	ResponseTime     int64     `json:"response_time"` // milliseconds
	ResponseCode     int       `json:"response_code"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// State returns the normalised status.
func (m Monitor) State() MonitorStatus {
	return ParseMonitorStatus(m.Status)
}

// MonitorList is the payload of GET /api/monitors.
type MonitorList []Monitor

// CredentialType classifies a credential for display.
type CredentialType string

const (
	CredentialBearer CredentialType = "bearer"
	CredentialBasic  CredentialType = "basic"
	CredentialOAuth2 CredentialType = "oauth2"
	CredentialAPI    CredentialType = "api"
	CredentialOther  CredentialType = "other"
)

// Credential is a reusable authentication configuration. Monitors hold a
// weak reference to it through CredentialID.
type Credential struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}

// Kind classifies the free-form backend type.
func (c Credential) Kind() CredentialType {
	switch strings.ToLower(c.Type) {
	case "bearer":
		return CredentialBearer
	case "basic":
		return CredentialBasic
	case "oauth2":
		return CredentialOAuth2
	case "api", "api_key":
		return CredentialAPI
	default:
		return CredentialOther
	}
}

// CredentialList is the payload of GET /api/credentials.
type CredentialList []Credential

// MethodType is the channel a notification method delivers to.
type MethodType string

const (
	MethodEmail   MethodType = "email"
	MethodSlack   MethodType = "slack"
	MethodTeams   MethodType = "teams"
	MethodWebhook MethodType = "webhook"
	MethodOther   MethodType = "other"
)

const (
	MethodStatusActive       = "active"
	MethodStatusUnauthorized = "unauthorized"
)

// NotificationMethod is an outbound alert channel. Config is the raw
// type-specific configuration, either a JSON object or a JSON string that
// itself contains an object.
type NotificationMethod struct {
	ID        string              `json:"id"`
	ProfileID string              `json:"profile_id"`
	Name      string              `json:"name"`
	Type      string              `json:"type"`
	Enabled   bool                `json:"enabled"`
	Status    string              `json:"status"`
	Config    easyjson.RawMessage `json:"config,omitempty"`
}

// Kind classifies the backend type.
func (m NotificationMethod) Kind() MethodType {
	switch MethodType(strings.ToLower(m.Type)) {
	case MethodEmail:
		return MethodEmail
	case MethodSlack:
		return MethodSlack
	case MethodTeams:
		return MethodTeams
	case MethodWebhook:
		return MethodWebhook
	default:
		return MethodOther
	}
}

// EffectiveStatus treats a missing status as active.
func (m NotificationMethod) EffectiveStatus() string {
	if m.Status == "" {
		return MethodStatusActive
	}
	return strings.ToLower(m.Status)
}

// Unauthorized reports whether the backend flagged the method's target as
// rejecting our credentials.
func (m NotificationMethod) Unauthorized() bool {
	return m.EffectiveStatus() == MethodStatusUnauthorized
}

// DisplayName falls back to the type when the method has no name.
func (m NotificationMethod) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Type
}

// Settings decodes Config into a flat map. A string-encoded object is
// unwrapped first.
func (m NotificationMethod) Settings() (map[string]interface{}, error) {
	if len(m.Config) == 0 {
		return map[string]interface{}{}, nil
	}
	in := jlexer.Lexer{Data: m.Config}
	v := in.Interface()
	if err := in.Error(); err != nil {
		return nil, err
	}
	if s, ok := v.(string); ok {
		inner := jlexer.Lexer{Data: []byte(s)}
		v = inner.Interface()
		if err := inner.Error(); err != nil {
			return nil, err
		}
	}
	settings, ok := v.(map[string]interface{})
	if !ok {
		return nil, errConfigNotObject
	}
	return settings, nil
}

// Setting returns a single string-valued entry of the configuration.
func (m NotificationMethod) Setting(key string) string {
	settings, err := m.Settings()
	if err != nil {
		return ""
	}
	if s, ok := settings[key].(string); ok {
		return s
	}
	return ""
}

// Details is the one-line summary shown next to a method.
func (m NotificationMethod) Details() string {
	settings, err := m.Settings()
	if err != nil {
		return "Configuration error"
	}
	str := func(k string) string {
		s, _ := settings[k].(string)
		return s
	}
	switch m.Kind() {
	case MethodEmail:
		return str("smtp_email") + " → " + str("recipient_email")
	case MethodSlack:
		return str("channel")
	case MethodTeams:
		return "Teams Webhook"
	default:
		return ""
	}
}

// NotificationMethodList is the payload of GET /api/notifications/methods.
type NotificationMethodList []NotificationMethod

// CreateMonitorRequest is the body of POST /api/monitors. A nil
// CredentialID is sent as JSON null.
type CreateMonitorRequest struct {
	Name             string  `json:"name"`
	URL              string  `json:"url"`
	Method           string  `json:"method"`
	CheckInterval    int     `json:"check_interval"`
	FailureThreshold int     `json:"failure_threshold"`
	Timeout          int     `json:"timeout"`
	IsActive         bool    `json:"is_active"`
	CredentialID     *string `json:"credential_id"`
}
