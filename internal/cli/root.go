package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Erik-Martinez/jsapy/internal/config"
	"github.com/Erik-Martinez/jsapy/internal/logging"
	"github.com/Erik-Martinez/jsapy/pkg/report"
)

// app carries state shared by every subcommand. The root command's
// PersistentPreRunE populates it before any RunE runs.
type app struct {
	cfg      *config.Config
	jsonOut  bool
	closeLog func() error
}

// NewRootCmd wires the cobra command tree.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		jsonOut    bool
		verbose    bool
	)
	a := &app{}

	root := &cobra.Command{
		Use:   "jsapy",
		Short: "Occupational safety indicators",
		Long: "jsapy calculates accident rate statistics and assesses physical\n" +
			"exposures (hand-arm vibration, whole-body vibration, noise) against\n" +
			"regulatory thresholds.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}
			closeLog, err := logging.Setup(cfg.Logging)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.jsonOut = jsonOut || cfg.Output.Format == "json"
			a.closeLog = closeLog
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeLog == nil {
				return nil
			}
			return a.closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (YAML)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "Render results as JSON")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newAssessCommand(a),
		newVibrationCommand(a),
		newNoiseCommand(a),
		newRatesCommand(a),
		newVersionCommand(),
	)
	return root
}

// loadConfig resolves the active configuration. An explicitly given path
// must exist; without the flag the built-in defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// render writes one result to w in the active output mode.
func (a *app) render(w io.Writer, v any) error {
	if a.jsonOut {
		return report.WriteJSON(w, v)
	}
	return report.Fprint(w, v)
}
