package main

import (
	"log/slog"

	"github.com/smasonuk/cvboot"
	"github.com/spf13/cobra"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults FILE",
	Short: "Write the resolved parameters to a .toml, .yaml or .json file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveParams(cmd)
		if err != nil {
			return err
		}
		if err := cvboot.SaveParams(args[0], p); err != nil {
			return err
		}
		slog.Info("wrote parameters", "path", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}
