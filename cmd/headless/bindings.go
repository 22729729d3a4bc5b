package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/milk9111/fireteam/config"
	"github.com/milk9111/fireteam/input"
	"github.com/milk9111/fireteam/prefabs"
)

var bindingsConfigDir string

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "List the control bindings the simulation resolves",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(config.New(), bindingsConfigDir)
		if err != nil {
			return err
		}
		controls, err := prefabs.LoadSpecFrom[prefabs.ControlSpec](prefabs.Dir(settings.AssetDir), "controls.yaml")
		if err != nil {
			return err
		}
		b := input.Rebuild(controls, input.RebuildOptions{KeyFallback: true})

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, action := range b.Actions() {
			fmt.Fprintf(tw, "%s\t%s\n", action, b.Describe(action))
		}
		fmt.Fprintf(tw, "look speed\t%.2f\n", controls.Look())
		return tw.Flush()
	},
}

func init() {
	bindingsCmd.Flags().StringVar(&bindingsConfigDir, "config", ".", "directory holding fireteam.yaml")
}
