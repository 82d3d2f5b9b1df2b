package dashboard

import (
	"context"

	"statusdesk/api"
)

// Backend is the slice of the REST API the coordinator depends on.
// *api.Client satisfies it.
type Backend interface {
	ListProfiles(ctx context.Context) ([]api.Profile, error)
	ActivateProfile(ctx context.Context, id string) error
	ListMonitors(ctx context.Context, profileID string) ([]api.Monitor, error)
	CreateMonitor(ctx context.Context, profileID string, m api.CreateMonitorRequest) (*api.Monitor, error)
	DeleteMonitor(ctx context.Context, profileID, id string) error
	ResetMonitorFailures(ctx context.Context, profileID, id string) error
	ListCredentials(ctx context.Context, profileID string) ([]api.Credential, error)
	ListNotificationMethods(ctx context.Context, profileID string) ([]api.NotificationMethod, error)
	DeleteNotificationMethod(ctx context.Context, profileID, id string) error
}

// Sink consumes resolved records. It owns the profile selection control,
// the monitor, credential and method views, and the monitor form.
type Sink interface {
	// SelectedProfile is the value currently selected in the profile
	// control, empty when nothing is selected.
	SelectedProfile() string
	// RenderProfiles fills the selection control.
	RenderProfiles(profiles []api.Profile)
	// SelectProfile marks the option for id as selected.
	SelectProfile(id string)

	RenderMonitors(monitors []api.Monitor)
	RenderCredentials(credentials []api.Credential)
	RenderMethods(methods []api.NotificationMethod)

	// ClearMonitors and ClearCredentials put the views back into their
	// loading placeholder state.
	ClearMonitors()
	ClearCredentials()

	ResetMonitorForm()
}

// Confirmer guards irreversible actions.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// AlwaysConfirm approves every prompt.
var AlwaysConfirm = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })
