package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/convo-coach/internal/infrastructure/audio/device"
)

func newDevicesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List audio output devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := device.List()
			if err != nil {
				return err
			}
			for _, d := range devices {
				marker := " "
				switch {
				case d.Index == a.cfg.Audio.Device:
					marker = ">"
				case a.cfg.Audio.Device < 0 && d.Default:
					marker = "*"
				}
				fmt.Fprintf(os.Stdout, "%s %2d  %-40s %-16s %dch %.0fHz\n",
					marker, d.Index, d.Name, d.HostAPI, d.MaxOutputChannels, d.DefaultSampleRate)
			}
			return nil
		},
	}
}
