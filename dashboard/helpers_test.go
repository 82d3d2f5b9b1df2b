package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"statusdesk/api"
	"statusdesk/apitest"
)

type recordingSink struct {
	mu sync.Mutex

	selected string
	profiles []api.Profile

	monitors       []api.Monitor
	monitorRenders int
	monitorClears  int

	credentials       []api.Credential
	credentialRenders int
	credentialClears  int

	methods       []api.NotificationMethod
	methodRenders int

	formResets int
}

func (s *recordingSink) SelectedProfile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *recordingSink) RenderProfiles(profiles []api.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = profiles
}

func (s *recordingSink) SelectProfile(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
}

func (s *recordingSink) RenderMonitors(monitors []api.Monitor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monitors = monitors
	s.monitorRenders++
}

func (s *recordingSink) RenderCredentials(credentials []api.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials = credentials
	s.credentialRenders++
}

func (s *recordingSink) RenderMethods(methods []api.NotificationMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods = methods
	s.methodRenders++
}

func (s *recordingSink) ClearMonitors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monitors = nil
	s.monitorClears++
}

func (s *recordingSink) ClearCredentials() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials = nil
	s.credentialClears++
}

func (s *recordingSink) ResetMonitorForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formResets++
}

type recordingNotifier struct {
	mu    sync.Mutex
	notes []Notification
}

func (r *recordingNotifier) Notify(message string, severity Severity) Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := Notification{Message: message, Severity: severity}
	r.notes = append(r.notes, n)
	return n
}

func (r *recordingNotifier) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notes...)
}

func (r *recordingNotifier) count(severity Severity) int {
	n := 0
	for _, note := range r.all() {
		if note.Severity == severity {
			n++
		}
	}
	return n
}

func (r *recordingNotifier) messages() []string {
	var out []string
	for _, note := range r.all() {
		out = append(out, note.Message)
	}
	return out
}

type fixture struct {
	srv   *apitest.Server
	cache SessionCache
	sink  *recordingSink
	notes *recordingNotifier
	coord *Coordinator
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	return newFixtureWithCache(t, NewMemoryCache(), opts...)
}

func newFixtureWithCache(t *testing.T, cache SessionCache, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		srv:   apitest.NewServer(t),
		cache: cache,
		sink:  &recordingSink{},
		notes: &recordingNotifier{},
	}
	f.coord = New(api.New(f.srv.URL), NewSession(f.cache), f.sink, f.notes, opts...)
	return f
}

// seed registers profiles p1 (active) and p2 with one monitor, credential
// and method each.
func (f *fixture) seed() {
	f.srv.AddProfile(api.Profile{ID: "p1", Name: "Production", IsActive: true})
	f.srv.AddProfile(api.Profile{ID: "p2", Name: "Staging"})
	f.srv.AddMonitor("p1", api.Monitor{ID: "m1", Name: "Ping API", URL: "https://x.test", Status: "up"})
	f.srv.AddMonitor("p2", api.Monitor{ID: "m2", Name: "Staging API", URL: "https://staging.test", Status: "down"})
	f.srv.AddCredential("p1", api.Credential{ID: "c1", Name: "API token", Type: "bearer"})
	f.srv.AddMethod("p1", api.NotificationMethod{ID: "n1", Name: "Ops mail", Type: "email"})
}

func (f *fixture) cached(t *testing.T) string {
	t.Helper()
	v, _ := f.cache.Get(ProfileKey)
	return v
}

func declineAll() Confirmer {
	return ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })
}

var errCacheUnavailable = errors.New("cache unavailable")

// brokenCache fails every read and write.
type brokenCache struct{}

func (brokenCache) Get(string) (string, error) { return "", errCacheUnavailable }
func (brokenCache) Set(string, string) error   { return errCacheUnavailable }
