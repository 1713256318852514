package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/finkit/foundation/core/config"
	mdwerror "github.com/msto63/finkit/foundation/core/error"
	mdwerrors "github.com/msto63/finkit/foundation/core/errors"
	"github.com/msto63/finkit/foundation/core/log"
	"github.com/msto63/finkit/pkg/financial"
)

// Configuration keys read by the command line in addition to the engine
// settings
const (
	keyRepresentation = "numeric.representation"
	keyPlaces         = "output.places"
	keyLogLevel       = "log.level"
	keyLogFormat      = "log.format"
	keyJSON           = "output.json"
)

// EnvPrefix prefixes environment overrides, e.g. FINKIT_SOLVER_GUESS
const EnvPrefix = "FINKIT"

var configRules = config.ValidationRules{
	financial.KeyMaxIterations: {Type: "int", Min: 1, Max: 10000},
	financial.KeyStep:          {Type: "float", Min: 1e-15, Max: 1.0},
	financial.KeyEpsilon:       {Type: "float", Min: 1e-30, Max: 1.0},
	financial.KeyGuess:         {Type: "float", Min: -0.999999},
	financial.KeyDecimalPlaces: {Type: "int", Min: 2, Max: 64},
	keyRepresentation:          {Type: "string", Pattern: "^(float|decimal)$"},
	keyPlaces:                  {Type: "int", Min: 0, Max: 32},
	keyLogLevel:                {Type: "string"},
	keyLogFormat:               {Type: "string"},
	keyJSON:                    {Type: "bool"},
}

// RootOptions holds the global flags and the state derived from them
type RootOptions struct {
	ConfigFile string
	Decimal    bool
	Places     int32
	LogLevel   string
	LogFormat  string
	// JSON selects JSON output where a command offers it
	JSON bool

	settings financial.Settings
	logger   *log.Logger
}

// NewRootCommand creates the finkit command tree
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "finkit",
		Short: "finkit - legacy financial functions",
		Long: `finkit evaluates the functions of the legacy Financial API over
binary floating point or arbitrary-precision decimals.

Amounts follow the cash-flow sign convention: money paid out is negative,
money received is positive. Negative positional arguments must follow "--".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: ./finkit.toml or the user config dir)")
	cmd.PersistentFlags().BoolVar(&opts.Decimal, "decimal", false, "compute with arbitrary-precision decimals")
	cmd.PersistentFlags().Int32Var(&opts.Places, "places", 2, "fractional digits of printed results")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "log format (json|text|console|logfmt)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleCLI, c.Name(), "flags", err.Error(), err.Error())
	})

	cmd.AddCommand(
		newPmtCommand(opts),
		newIPmtCommand(opts),
		newPPmtCommand(opts),
		newPVCommand(opts),
		newFVCommand(opts),
		newNPerCommand(opts),
		newRateCommand(opts),
		newNPVCommand(opts),
		newIRRCommand(opts),
		newMIRRCommand(opts),
		newSLNCommand(opts),
		newSYDCommand(opts),
		newDDBCommand(opts),
		newScheduleCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// Execute runs the command line and reports a failure on stderr
func Execute() error {
	root := NewRootCommand()
	if err := execute(root); err != nil {
		printError(root, err)
		return err
	}
	return nil
}

// execute runs root. Errors raised by cobra itself, such as a missing
// required flag or an unknown command, become invalid arguments.
func execute(root *cobra.Command) error {
	c, err := root.ExecuteC()
	if err == nil {
		return nil
	}
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return err
	}
	return mdwerrors.InvalidArgument(mdwerrors.ModuleCLI, c.Name(), "args", c.Flags().Args(), err.Error())
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules).Err(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("log-level") && cfg.Has(keyLogLevel) {
		o.LogLevel = cfg.GetString(keyLogLevel)
	}
	if !flags.Changed("log-format") && cfg.Has(keyLogFormat) {
		o.LogFormat = cfg.GetString(keyLogFormat)
	}
	if !flags.Changed("decimal") && cfg.Has(keyRepresentation) {
		o.Decimal = cfg.GetString(keyRepresentation) == "decimal"
	}
	if !flags.Changed("places") && cfg.Has(keyPlaces) {
		o.Places = int32(cfg.GetInt(keyPlaces))
	}
	o.JSON = cfg.GetBool(keyJSON)
	if o.Places < 0 {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleCLI, cmd.Name(), "places", o.Places, "places must not be negative")
	}

	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return err
	}
	format, err := log.ParseFormat(o.LogFormat)
	if err != nil {
		return err
	}
	o.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "finkit",
	}).WithCorrelationID(uuid.NewString())

	o.settings, err = financial.SettingsFrom(cfg)
	if err != nil {
		return err
	}

	o.logger.Debug("configuration loaded", log.Fields{
		"source":         cfg.FilePath(),
		"representation": o.representation(),
		"places":         o.Places,
	})
	return nil
}

func (o *RootOptions) loadConfig() (*config.Config, error) {
	if o.ConfigFile != "" {
		return config.LoadWithOptions(o.ConfigFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: EnvPrefix,
		})
	}
	options := config.DefaultDiscoveryOptions()
	options.EnvPrefix = EnvPrefix
	return config.Discover(options)
}

func (o *RootOptions) representation() string {
	if o.Decimal {
		return "decimal"
	}
	return "float"
}

func (o *RootOptions) calculatorOptions() []financial.Option {
	return []financial.Option{
		financial.WithSettings(o.settings),
		financial.WithLogger(o.logger),
	}
}

// timed runs fn inside a timer named after the command
func (o *RootOptions) timed(cmd *cobra.Command, fn func() error) error {
	timer := o.logger.StartTimer(cmd.Name()).WithField("representation", o.representation())
	err := fn()
	timer.WithField("success", err == nil).Stop()
	return err
}
