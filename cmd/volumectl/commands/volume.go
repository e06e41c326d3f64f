package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the volume in percent",
		Long: `Print the volume of the default output device in percent.

The value is the mean over all controllable channels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Deinit()

			v, err := s.Volume()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set <percent>",
		Short: "Set the volume in percent",
		Long: `Set the volume of every controllable channel of the default output device.

Examples:
  volumectl set 40
  volumectl set 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			percent, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid percent %q: %w", args[0], err)
			}
			if percent < 0 || percent > 100 {
				return fmt.Errorf("percent must be within 0-100, got %d", percent)
			}

			s, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Deinit()

			return s.SetVolume(percent)
		},
	}
}
