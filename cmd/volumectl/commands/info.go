package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pion/volumectl"
	"github.com/pion/volumectl/pkg/channel"
	"github.com/pion/volumectl/pkg/driver/miniaudio"
)

func newChannelsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "Print the controllable channel elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Deinit()

			fmt.Fprintln(cmd.OutOrStdout(), formatChannels(s.Channels()))
			return nil
		},
	}
}

func newInfoCmd(opts *options) *cobra.Command {
	var skipName bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print device, channels, volume and mute state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Deinit()

			name := ""
			if !skipName {
				name = playbackName()
			}
			return printInfo(cmd.OutOrStdout(), s, name)
		},
	}
	cmd.Flags().BoolVar(&skipName, "no-name", false, "do not look up the device name")
	return cmd
}

// playbackName returns an empty string when no name can be found.
func playbackName() string {
	d, err := miniaudio.DefaultPlayback()
	if err != nil {
		return ""
	}
	return d.String()
}

func printInfo(w io.Writer, s *volumectl.Session, name string) error {
	fmt.Fprintf(w, "Device:   %d\n", s.Device())
	if name != "" {
		fmt.Fprintf(w, "Name:     %s\n", name)
	}
	fmt.Fprintf(w, "Channels: %s\n", formatChannels(s.Channels()))

	v, err := s.Volume()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Volume:   %d%%\n", v)

	muted, err := s.Muted()
	if err != nil {
		fmt.Fprintf(w, "Muted:    unavailable (%v)\n", err)
		return nil
	}
	fmt.Fprintf(w, "Muted:    %t\n", muted)
	return nil
}

func formatChannels(set channel.Set) string {
	parts := make([]string, len(set))
	for i, e := range set {
		parts[i] = fmt.Sprint(uint32(e))
	}
	return strings.Join(parts, ",")
}
