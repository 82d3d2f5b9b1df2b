// Package apitest provides an in-memory monitoring backend for tests. It
// implements the REST surface the api client consumes and records every
// request it receives.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/mailru/easyjson"
	"github.com/rs/zerolog/log"

	"statusdesk/api"
)

// Request is one call observed by the server.
type Request struct {
	Method      string
	Path        string
	QueryID     string // profileId query parameter
	HeaderID    string // X-Profile-ID header
	ContentType string
}

// ProfileID returns the scope the request carried, header first.
func (r Request) ProfileID() string {
	if r.HeaderID != "" {
		return r.HeaderID
	}
	return r.QueryID
}

type failure struct {
	status    int
	body      string
	remaining int // 0 means until Recover
}

// Server is a fake backend. Routes are keyed "METHOD /path/pattern" the same
// way they are registered on the mux, e.g. "GET /api/monitors".
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	profiles    []api.Profile
	monitors    map[string][]api.Monitor
	credentials map[string][]api.Credential
	methods     map[string][]api.NotificationMethod
	failures    map[string]failure
	requests    []Request
	nextID      int
}

// NewServer starts a fake backend that is closed with the test.
func NewServer(t testing.TB) *Server {
	s := &Server{
		monitors:    make(map[string][]api.Monitor),
		credentials: make(map[string][]api.Credential),
		methods:     make(map[string][]api.NotificationMethod),
		failures:    make(map[string]failure),
	}

	mux := http.NewServeMux()
	s.route(mux, "GET /api/profiles", s.apiProfiles)
	s.route(mux, "POST /api/profiles/{id}/activate", s.apiActivateProfile)
	s.route(mux, "GET /api/monitors", s.apiMonitors)
	s.route(mux, "POST /api/monitors", s.apiCreateMonitor)
	s.route(mux, "DELETE /api/monitors/{id}", s.apiDeleteMonitor)
	s.route(mux, "POST /api/monitors/{id}/reset-failures", s.apiResetFailures)
	s.route(mux, "GET /api/credentials", s.apiCredentials)
	s.route(mux, "GET /api/notifications/methods", s.apiMethods)
	s.route(mux, "DELETE /api/notifications/methods/{id}", s.apiDeleteMethod)

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			Path:        r.URL.Path,
			QueryID:     r.URL.Query().Get("profileId"),
			HeaderID:    r.Header.Get(api.ProfileHeader),
			ContentType: r.Header.Get("Content-Type"),
		})
		f, failing := s.failures[pattern]
		if failing && f.remaining > 0 {
			f.remaining--
			if f.remaining == 0 {
				delete(s.failures, pattern)
			} else {
				s.failures[pattern] = f
			}
		}
		s.mu.Unlock()

		log.Debug().Str("route", pattern).Str("path", r.URL.Path).Msg("[API] Fake backend request")
		if failing {
			http.Error(w, f.body, f.status)
			return
		}
		h(w, r)
	})
}

// Fail makes every call to route answer with status and body until Recover.
func (s *Server) Fail(route string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = failure{status: status, body: body}
}

// FailTimes makes the next n calls to route fail.
func (s *Server) FailTimes(route string, n int, status int, body string) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = failure{status: status, body: body, remaining: n}
}

// Recover clears a failure installed with Fail.
func (s *Server) Recover(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, route)
}

// AddProfile registers a profile.
func (s *Server) AddProfile(p api.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	s.profiles = append(s.profiles, p)
}

// AddMonitor stores a monitor under profileID.
func (s *Server) AddMonitor(profileID string, m api.Monitor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ProfileID = profileID
	s.monitors[profileID] = append(s.monitors[profileID], m)
}

// AddCredential stores a credential under profileID.
func (s *Server) AddCredential(profileID string, c api.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ProfileID = profileID
	s.credentials[profileID] = append(s.credentials[profileID], c)
}

// AddMethod stores a notification method under profileID.
func (s *Server) AddMethod(profileID string, m api.NotificationMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ProfileID = profileID
	s.methods[profileID] = append(s.methods[profileID], m)
}

// Monitors returns the monitors currently stored for profileID.
func (s *Server) Monitors(profileID string) []api.Monitor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]api.Monitor(nil), s.monitors[profileID]...)
}

// Methods returns the notification methods currently stored for profileID.
func (s *Server) Methods(profileID string) []api.NotificationMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]api.NotificationMethod(nil), s.methods[profileID]...)
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many requests matched method and path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Reset forgets recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func writeJSON(w http.ResponseWriter, status int, v easyjson.Marshaler) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, _, err := easyjson.MarshalToHTTPResponseWriter(v, w); err != nil {
		log.Error().Err(err).Msg("[API] Failed to encode fake response")
	}
}

// profileScope mirrors the backend: query parameter first, header second.
func profileScope(r *http.Request) string {
	if id := r.URL.Query().Get("profileId"); id != "" {
		return id
	}
	return r.Header.Get(api.ProfileHeader)
}

func (s *Server) knownProfile(id string) bool {
	for _, p := range s.profiles {
		if p.ID == id {
			return true
		}
	}
	return false
}

// scoped validates the profile scope and reports whether handling should go on.
func (s *Server) scoped(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := profileScope(r)
	if id == "" {
		http.Error(w, "Profile ID is required", http.StatusBadRequest)
		return "", false
	}
	s.mu.Lock()
	known := s.knownProfile(id)
	s.mu.Unlock()
	if !known {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return "", false
	}
	return id, true
}

func (s *Server) apiProfiles(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := append(api.ProfileList{}, s.profiles...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) apiActivateProfile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.knownProfile(id) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	for i := range s.profiles {
		s.profiles[i].IsActive = s.profiles[i].ID == id
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) apiMonitors(w http.ResponseWriter, r *http.Request) {
	id, ok := s.scoped(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	list := append(api.MonitorList{}, s.monitors[id]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) apiCreateMonitor(w http.ResponseWriter, r *http.Request) {
	id, ok := s.scoped(w, r)
	if !ok {
		return
	}

	var req api.CreateMonitorRequest
	if err := easyjson.UnmarshalFromReader(r.Body, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.URL == "" {
		http.Error(w, "Name and URL are required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.nextID++
	now := time.Now().UTC()
	m := api.Monitor{
		ID:               "m-" + strconv.Itoa(s.nextID),
		ProfileID:        id,
		Name:             req.Name,
		URL:              req.URL,
		Method:           req.Method,
		CheckInterval:    req.CheckInterval,
		FailureThreshold: req.FailureThreshold,
		Timeout:          req.Timeout,
		IsActive:         true,
		Status:           string(api.StatusPending),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if req.CredentialID != nil {
		m.CredentialID = *req.CredentialID
	}
	s.monitors[id] = append(s.monitors[id], m)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) apiDeleteMonitor(w http.ResponseWriter, r *http.Request) {
	id, ok := s.scoped(w, r)
	if !ok {
		return
	}
	monitorID := r.PathValue("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.monitors[id]
	for i := range list {
		if list[i].ID == monitorID {
			s.monitors[id] = append(list[:i:i], list[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "Monitor not found", http.StatusNotFound)
}

func (s *Server) apiResetFailures(w http.ResponseWriter, r *http.Request) {
	id, ok := s.scoped(w, r)
	if !ok {
		return
	}
	monitorID := r.PathValue("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.monitors[id] {
		if s.monitors[id][i].ID == monitorID {
			s.monitors[id][i].FailureCount = 0
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	http.Error(w, fmt.Sprintf("Monitor %s not found", monitorID), http.StatusNotFound)
}

func (s *Server) apiCredentials(w http.ResponseWriter, r *http.Request) {
	id, ok := s.scoped(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	list := append(api.CredentialList{}, s.credentials[id]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) apiMethods(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(api.ProfileHeader)
	if id == "" {
		http.Error(w, "Profile ID is required", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	list := append(api.NotificationMethodList{}, s.methods[id]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) apiDeleteMethod(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(api.ProfileHeader)
	if id == "" {
		http.Error(w, "Profile ID is required", http.StatusBadRequest)
		return
	}
	methodID := r.PathValue("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.methods[id]
	for i := range list {
		if list[i].ID == methodID {
			s.methods[id] = append(list[:i:i], list[i+1:]...)
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	http.Error(w, "Notification method not found", http.StatusNotFound)
}
