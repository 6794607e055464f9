package main

import (
	"github.com/spf13/cobra"

	"github.com/olusolaa/azmgmt/internal/app"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/resources/website"
)

func newWebsiteCmd() *cobra.Command {
	site := &cobra.Command{
		Use:   "website",
		Short: "Inspect App Service web sites",
	}
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Web site deployment logs",
	}
	logCmd.AddCommand(newWebsiteLogGetCmd())
	site.AddCommand(logCmd)
	return site
}

func newWebsiteLogGetCmd() *cobra.Command {
	var params website.LogParams
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the log of the latest deployment of a web site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWith(cmd, func(a *app.Application) (ports.Command, error) {
				client, err := a.Registry.WebsiteClient()
				if err != nil {
					return nil, err
				}
				return website.NewLogCommand(params, client, a.Logger), nil
			})
		},
	}
	cmd.Flags().StringVar(&params.Name, "name", "", "Web site name")
	cmd.Flags().StringVar(&params.ResourceGroup, "resource-group", "", "Resource group of the site (default: looked up by name)")
	return cmd
}
