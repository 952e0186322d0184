// Package main provides the CLI entrypoint for picktally.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/picktally/internal/config"
	"github.com/verte-zerg/picktally/internal/model"
	"github.com/verte-zerg/picktally/internal/session"
	"github.com/verte-zerg/picktally/internal/stats"
	"github.com/verte-zerg/picktally/internal/statsui"
	"github.com/verte-zerg/picktally/internal/store"
	"github.com/verte-zerg/picktally/internal/tui"
)

const (
	defaultTask        = "picking"
	defaultCurveWindow = 10
)

var (
	countTask   string
	countNoSave bool

	statsTask        string
	statsSince       string
	statsLast        int
	statsCurveWindow int
	statsSummary     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "picktally",
		Short:         "TUI success/fail tally counter",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runCountCmd,
	}

	rootCmd.Flags().StringVar(&countTask, "task", defaultTask, "task label for the session")
	rootCmd.Flags().BoolVar(&countNoSave, "no-save", false, "do not save finished sessions")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runCountCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "task", &countTask, fileCfg.Session.Task)
	autoSave := true
	if fileCfg.Session.AutoSave != nil {
		autoSave = *fileCfg.Session.AutoSave
	}
	if cmd.Flags().Changed("no-save") && countNoSave {
		autoSave = false
	}

	cfg := model.Config{
		Task:     strings.TrimSpace(countTask),
		AutoSave: autoSave,
	}
	if cfg.Task == "" {
		return fmt.Errorf("--task must not be empty")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	m := tui.NewModel(cfg, st, session.New())
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show session history",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsTask, "task", "", "task filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().BoolVar(&statsSummary, "summary", false, "print a plain-text summary instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "curve-window", &statsCurveWindow, fileCfg.Stats.CurveWindow)
	if statsCurveWindow < 1 {
		return fmt.Errorf("--curve-window must be >= 1")
	}

	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Task:        statsTask,
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if statsSummary {
		return printSummary(cmd, st, cfg)
	}

	m := statsui.NewModel(st, cfg)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func printSummary(cmd *cobra.Command, st *store.Store, cfg model.StatsConfig) error {
	report, err := stats.BuildReport(cmd.Context(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, report.Sessions); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if err := stats.RenderSessionTable(out, report.Sessions); err != nil {
		return fmt.Errorf("failed to render session table: %w", err)
	}
	if len(report.Sessions) > 1 {
		if _, err := fmt.Fprintln(out, ""); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := stats.RenderCurves(out, report.Sessions, cfg.CurveWindow); err != nil {
			return fmt.Errorf("failed to render curves: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# picktally configuration
# Uncomment a value to enable it. CLI flags override config values.

[session]
# task = %q           # Task label for new sessions
# autosave = true     # Save finished sessions to the history db

[stats]
# curve-window = %d   # Moving average window for curves
`,
		defaultTask,
		defaultCurveWindow,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
