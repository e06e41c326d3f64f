package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMuteCmd(opts *options, state bool) *cobra.Command {
	use, short := "mute", "Mute the default output device"
	if !state {
		use, short = "unmute", "Unmute the default output device"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Deinit()

			return s.SetMute(state)
		},
	}
}

func newMutedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "muted",
		Short: "Print 1 if the default output device is muted, 0 if not",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Deinit()

			muted, err := s.Muted()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), boolToInt(muted))
			return nil
		},
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
