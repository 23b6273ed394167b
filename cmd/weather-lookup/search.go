package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Look up cities by name.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, _, components, err := setup(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = components.Close() }()

		results, err := components.Cities.Search(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return renderCities(cmd.OutOrStdout(), results)
	},
}
