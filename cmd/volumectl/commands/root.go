package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pion/volumectl"
	"github.com/pion/volumectl/internal/config"
	ilogging "github.com/pion/volumectl/internal/logging"
	"github.com/pion/volumectl/pkg/channel"
	"github.com/pion/volumectl/pkg/driver"

	// Audio services selectable with --driver.
	_ "github.com/pion/volumectl/pkg/driver/audiotest"
	_ "github.com/pion/volumectl/pkg/driver/coreaudio"
)

type options struct {
	cfgFile     string
	driver      string
	logLevel    string
	maxFailures int
	maxChannels int
	policy      string
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "volumectl",
		Short: "Control the volume of the default audio output device",
		Long: `volumectl - read and change the volume and mute state of the system's
default audio output device.

Examples:
  # Print the volume in percent
  volumectl get

  # Set the volume to 40%
  volumectl set 40

  # Mute, then check
  volumectl mute && volumectl muted

  # Use the synthetic device instead of the real one
  volumectl --driver audiotest info
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ~/.volumectl/config.yaml)")
	flags.StringVarP(&opts.driver, "driver", "d", "", "audio service to use (default: highest priority registered)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level of the session and the drivers: disabled, error, warn, info, debug, trace")
	flags.IntVar(&opts.maxFailures, "max-failures", 0, "failure budget of the channel probe")
	flags.IntVar(&opts.maxChannels, "max-channels", 0, "number of elements the channel probe tests at most")
	flags.StringVar(&opts.policy, "probe-policy", "", "channel probe failure counting: "+strings.Join(policyNames, " or "))

	rootCmd.AddCommand(
		newGetCmd(opts),
		newSetCmd(opts),
		newMuteCmd(opts, true),
		newMuteCmd(opts, false),
		newMutedCmd(opts),
		newChannelsCmd(opts),
		newInfoCmd(opts),
		newDriversCmd(),
	)
	return rootCmd
}

// resolve merges the config file with the flags that were set explicitly.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("driver") {
		cfg.Driver = o.driver
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("max-failures") {
		cfg.MaxProbeFailures = o.maxFailures
	}
	if flags.Changed("max-channels") {
		cfg.MaxChannels = o.maxChannels
	}
	if flags.Changed("probe-policy") {
		cfg.ProbePolicy = o.policy
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession returns an initialized session. The caller owns it and has to
// Deinit it.
func (o *options) openSession(cmd *cobra.Command) (*volumectl.Session, error) {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return nil, err
	}

	sessionOpts, err := cfg.SessionOptions()
	if err != nil {
		return nil, err
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" {
		ilogging.Configure(level, cmd.ErrOrStderr())
	}
	sessionOpts = append(sessionOpts, volumectl.WithLoggerFactory(ilogging.NewFactory(level, cmd.ErrOrStderr())))

	if cfg.Driver != "" {
		svc, ok := driver.GetManager().Lookup(cfg.Driver)
		if !ok {
			return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
		}
		sessionOpts = append(sessionOpts, volumectl.WithService(svc))
	}

	s := volumectl.NewSession(sessionOpts...)
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return s, nil
}

func newDriversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "List the audio services built into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDrivers(cmd.OutOrStdout())
		},
	}
}

func printDrivers(w io.Writer) error {
	for _, e := range driver.GetManager().Query(func(driver.Entry) bool { return true }) {
		if _, err := fmt.Fprintf(w, "%s\tpriority %.1f\n", e.Info.Label, e.Info.Priority); err != nil {
			return err
		}
	}
	return nil
}

// policyNames is used in help texts.
var policyNames = []string{channel.Cumulative.String(), channel.Consecutive.String()}
