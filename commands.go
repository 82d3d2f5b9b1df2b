package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"statusdesk/api"
	"statusdesk/dashboard"
)

var (
	flagConfig   string
	flagAPIURL   string
	flagCache    string
	flagProfile  string
	flagLogLevel string
	flagYes      bool

	monitorForm   dashboard.MonitorForm
	applyFile     string
	watchInterval time.Duration

	current *app
)

var (
	rootCmd = &cobra.Command{
		Use:   "statusdesk",
		Short: "Terminal dashboard for a multi-profile endpoint monitoring backend",
		Long: `statusdesk resolves the active monitoring profile, keeps it cached
between runs and shows the monitors, credentials and notification methods
that belong to it.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupApp,
	}
	syncCmd = &cobra.Command{
		Use:   "sync",
		Short: "Load profiles and everything the active profile owns",
		Args:  cobra.NoArgs,
		RunE:  runSync,
	}
	monitorsCmd = &cobra.Command{
		Use:   "monitors",
		Short: "List the monitors of the active profile",
		Args:  cobra.NoArgs,
		RunE:  runRefresh(func(c *dashboard.Coordinator) func(context.Context) error { return c.RefreshMonitors }),
	}
	credentialsCmd = &cobra.Command{
		Use:   "credentials",
		Short: "List the credentials of the active profile",
		Args:  cobra.NoArgs,
		RunE:  runRefresh(func(c *dashboard.Coordinator) func(context.Context) error { return c.RefreshCredentials }),
	}
	methodsCmd = &cobra.Command{
		Use:   "methods",
		Short: "List the notification methods of the active profile",
		Args:  cobra.NoArgs,
		RunE:  runRefresh(func(c *dashboard.Coordinator) func(context.Context) error { return c.RefreshMethods }),
	}

	monitorCmd = &cobra.Command{
		Use:   "monitor",
		Short: "Create, delete or reset monitors",
	}
	monitorCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a monitor in the active profile",
		Args:  cobra.NoArgs,
		RunE:  runMonitorCreate,
	}
	monitorDeleteCmd = &cobra.Command{
		Use:   "delete [monitor_id]",
		Short: "Delete a monitor",
		Args:  cobra.ExactArgs(1),
		RunE:  runMonitorDelete,
	}
	monitorResetCmd = &cobra.Command{
		Use:   "reset [monitor_id]",
		Short: "Reset the consecutive failure count of a monitor",
		Args:  cobra.ExactArgs(1),
		RunE:  runMonitorReset,
	}

	methodCmd = &cobra.Command{
		Use:   "method",
		Short: "Manage notification methods",
	}
	methodDeleteCmd = &cobra.Command{
		Use:   "delete [method_id]",
		Short: "Delete a notification method",
		Args:  cobra.ExactArgs(1),
		RunE:  runMethodDelete,
	}

	profileCmd = &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles",
	}
	profileUseCmd = &cobra.Command{
		Use:   "use [profile_id]",
		Short: "Activate a profile and reload its resources",
		Args:  cobra.ExactArgs(1),
		RunE:  runProfileUse,
	}

	applyCmd = &cobra.Command{
		Use:   "apply",
		Short: "Create monitors from a YAML definitions file",
		Long: `Creates every monitor listed in the file that does not already exist
in the active profile. Monitors are matched on name and URL.`,
		Args: cobra.NoArgs,
		RunE: runApply,
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-sync periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default statusdesk.yaml)")
	pf.StringVar(&flagAPIURL, "api-url", "", "backend base URL")
	pf.StringVar(&flagCache, "cache", "", "session cache file")
	pf.StringVar(&flagProfile, "profile", "", "selected profile, used when nothing is cached")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")

	monitorCreateCmd.Flags().StringVar(&monitorForm.Name, "name", "", "monitor name")
	monitorCreateCmd.Flags().StringVar(&monitorForm.URL, "url", "", "URL to check")
	monitorCreateCmd.Flags().StringVar(&monitorForm.Method, "method", "GET", "HTTP method")
	monitorCreateCmd.Flags().IntVar(&monitorForm.CheckInterval, "interval", 60, "check interval in seconds")
	monitorCreateCmd.Flags().IntVar(&monitorForm.FailureThreshold, "threshold", 1, "consecutive failures before down")
	monitorCreateCmd.Flags().IntVar(&monitorForm.Timeout, "timeout", 30, "request timeout in seconds")
	monitorCreateCmd.Flags().StringVar(&monitorForm.CredentialID, "credential", "", "credential id")

	monitorDeleteCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "skip confirmation")
	methodDeleteCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "skip confirmation")

	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "monitor definitions file")
	_ = applyCmd.MarkFlagRequired("file")

	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "sync interval (default from config)")

	monitorCmd.AddCommand(monitorCreateCmd, monitorDeleteCmd, monitorResetCmd)
	methodCmd.AddCommand(methodDeleteCmd)
	profileCmd.AddCommand(profileUseCmd)
	rootCmd.AddCommand(syncCmd, monitorsCmd, credentialsCmd, methodsCmd,
		monitorCmd, methodCmd, profileCmd, applyCmd, watchCmd)
}

// app is everything one command invocation needs
type app struct {
	cfg     Config
	client  *api.Client
	cache   *sqliteCache
	emitter *dashboard.Emitter
	sink    *terminalSink
	coord   *dashboard.Coordinator
	printed chan struct{}
}

func newApp(cfg Config, out, errOut io.Writer, selected string, confirm dashboard.Confirmer) (*app, error) {
	cache, err := openSessionCache(cfg.CachePath)
	if err != nil {
		return nil, err
	}

	var opts []api.Option
	if cfg.RequestTimeout > 0 {
		opts = append(opts, api.WithTimeout(cfg.RequestTimeout))
	}
	client := api.New(cfg.APIURL, opts...)

	a := &app{
		cfg:     cfg,
		client:  client,
		cache:   cache,
		emitter: dashboard.NewEmitter(),
		sink:    newTerminalSink(out, selected),
		printed: make(chan struct{}),
	}
	a.coord = dashboard.New(client, dashboard.NewSession(cache), a.sink, a.emitter,
		dashboard.WithConfirmer(confirm),
		dashboard.WithCascadeMode(cfg.cascadeMode()),
		dashboard.WithRetry(cfg.retryPolicy()),
		dashboard.WithUnauthorizedAlert(unauthorizedAlert(errOut)),
	)

	// Notifications are printed once, when shown
	events := a.emitter.Subscribe("cli", 64)
	go func() {
		defer close(a.printed)
		for ev := range events {
			if ev.Type == dashboard.EventShown {
				fmt.Fprintln(errOut, renderNotification(ev.Notification))
			}
		}
	}()
	return a, nil
}

// Close stops the emitter, flushes pending notifications and closes the cache
func (a *app) Close() error {
	a.emitter.Close()
	<-a.printed
	return a.cache.Close()
}

var alertStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorUnauthorized).
	Foreground(colorUnauthorized).
	Padding(0, 1)

func unauthorizedAlert(w io.Writer) func(api.NotificationMethod) {
	return func(m api.NotificationMethod) {
		log.Warn().Str("method_id", m.ID).Str("name", m.DisplayName()).Str("webhook_url", m.Setting("webhook_url")).
			Msg("[Loader] Unauthorized notification method")
		msg := fmt.Sprintf("Notification method %q is unauthorized.\nCheck its credentials or webhook URL.", m.DisplayName())
		if url := m.Setting("webhook_url"); url != "" {
			msg += "\nWebhook: " + url
		}
		fmt.Fprintln(w, alertStyle.Render(msg))
	}
}

// builtinCommand reports whether cmd is one of cobra's help or shell
// completion commands, which never touch the backend or the cache.
func builtinCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		name := c.Name()
		if name == "help" || name == "completion" || strings.HasPrefix(name, cobra.ShellCompRequestCmd) {
			return true
		}
	}
	return false
}

func setupApp(cmd *cobra.Command, _ []string) error {
	if builtinCommand(cmd) {
		return nil
	}
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = flagAPIURL
	}
	if flags.Changed("cache") {
		cfg.CachePath = flagCache
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	log.Debug().Str("api_url", cfg.APIURL).Str("cache", cfg.CachePath).Str("cascade", cfg.Cascade).
		Msg("[Config] Configuration resolved")

	current, err = newApp(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), flagProfile, huhConfirmer{assumeYes: flagYes})
	if err == nil {
		cobra.OnFinalize(closeApp)
	}
	return err
}

func closeApp() {
	if current == nil {
		return
	}
	if err := current.Close(); err != nil {
		log.Warn().Err(err).Msg("[Cache] Failed to close session cache")
	}
	current = nil
}

// syncAll is the page load: profiles, the cascade, then notification methods
func syncAll(ctx context.Context, coord *dashboard.Coordinator) dashboard.Outcome {
	outcome := coord.LoadProfiles(ctx)
	if outcome == dashboard.OutcomeLoaded || outcome == dashboard.OutcomeCascadeFailed {
		_ = coord.RefreshMethods(ctx)
	}
	log.Info().Stringer("outcome", outcome).Msg("[Sync] Sync finished")
	return outcome
}

func runSync(cmd *cobra.Command, _ []string) error {
	if outcome := syncAll(cmd.Context(), current.coord); outcome != dashboard.OutcomeLoaded {
		return fmt.Errorf("sync incomplete: %s", outcome)
	}
	return nil
}

func runRefresh(pick func(*dashboard.Coordinator) func(context.Context) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return pick(current.coord)(cmd.Context())
	}
}

func runMonitorCreate(cmd *cobra.Command, _ []string) error {
	_, err := current.coord.CreateMonitor(cmd.Context(), monitorForm)
	return err
}

func declinedIsFine(w io.Writer, err error) error {
	if errors.Is(err, dashboard.ErrDeclined) {
		fmt.Fprintln(w, mutedStyle.Render("Cancelled."))
		return nil
	}
	return err
}

func runMonitorDelete(cmd *cobra.Command, args []string) error {
	return declinedIsFine(cmd.OutOrStdout(), current.coord.DeleteMonitor(cmd.Context(), args[0]))
}

func runMonitorReset(cmd *cobra.Command, args []string) error {
	return current.coord.ResetFailures(cmd.Context(), args[0])
}

func runMethodDelete(cmd *cobra.Command, args []string) error {
	return declinedIsFine(cmd.OutOrStdout(), current.coord.DeleteMethod(cmd.Context(), args[0]))
}

func runProfileUse(cmd *cobra.Command, args []string) error {
	outcome, err := current.coord.ActivateProfile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if outcome != dashboard.OutcomeLoaded {
		return fmt.Errorf("profile activated, reload incomplete: %s", outcome)
	}
	return nil
}

// applyResult counts what apply did with each definition
type applyResult struct {
	Created int
	Skipped int
	Failed  int
}

func monitorKey(name, url string) string {
	return strings.TrimSpace(name) + "\x00" + strings.TrimSpace(url)
}

// applyMonitors creates the definitions that do not exist yet in the active
// profile. Definitions are matched on name and URL, including against the
// ones created earlier in the same run.
func applyMonitors(ctx context.Context, coord *dashboard.Coordinator, backend dashboard.Backend,
	forms []dashboard.MonitorForm, hashes []string) (applyResult, error) {
	var res applyResult

	profileID, err := coord.ResolveProfile()
	if err != nil {
		return res, err
	}
	existing, err := backend.ListMonitors(ctx, profileID)
	if err != nil {
		return res, fmt.Errorf("failed to load monitors: %w", err)
	}

	seen := make(map[string]bool, len(existing)+len(forms))
	for _, m := range existing {
		seen[monitorKey(m.Name, m.URL)] = true
	}

	for i, form := range forms {
		hash := hashes[i]
		key := monitorKey(form.Name, form.URL)
		if seen[key] {
			log.Info().Str("name", form.Name).Str("url", form.URL).Str("hash", hash[:8]).
				Msg("[Config] Skipping monitor - already exists")
			res.Skipped++
			continue
		}
		if _, err := coord.CreateMonitor(ctx, form); err != nil {
			res.Failed++
			continue
		}
		log.Info().Str("name", form.Name).Str("url", form.URL).Str("hash", hash[:8]).Msg("[Config] Created monitor")
		seen[key] = true
		res.Created++
	}
	return res, nil
}

func runApply(cmd *cobra.Command, _ []string) error {
	forms, hashes, err := loadMonitorsFromYAML(applyFile)
	if err != nil {
		return err
	}
	res, err := applyMonitors(cmd.Context(), current.coord, current.client, forms, hashes)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d created, %d skipped, %d failed\n",
		titleStyle.Render("Apply:"), res.Created, res.Skipped, res.Failed)
	if res.Failed > 0 {
		return fmt.Errorf("%d monitor(s) could not be created", res.Failed)
	}
	return nil
}

func runWatch(cmd *cobra.Command, _ []string) error {
	interval := current.cfg.WatchInterval
	if watchInterval > 0 {
		interval = watchInterval
	}

	ctx := cmd.Context()
	s, err := startWatchScheduler(interval, clockwork.NewRealClock(), func() {
		syncAll(ctx, current.coord)
	})
	if err != nil {
		return err
	}

	<-ctx.Done()
	log.Info().Msg("[Watch] Shutting down")
	return s.Shutdown()
}
